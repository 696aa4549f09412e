package notify

// Kind selects the message template.
type Kind string

const (
	KindReviewerAssigned Kind = "REVIEWER_ASSIGNED"
	KindRevisionRequested Kind = "REVISION_REQUESTED"
	KindRevisionReminder  Kind = "REVISION_REMINDER"
	KindReviewReminder    Kind = "REVIEW_REMINDER"
	KindDeadlineMissed    Kind = "DEADLINE_MISSED"
	KindFinalDecision     Kind = "FINAL_DECISION"
)

// Notifier delivers a message to a recipient. Implementations must be
// best-effort: they report success but never fail the operation that
// triggered the notification.
type Notifier interface {
	Notify(recipient string, kind Kind, ctx map[string]string) bool
}
