package notify

import "fmt"

type template struct {
	subject string
	body    string
}

// Plain-text templates. Placeholders are filled from the ctx map; missing
// keys render as empty strings.
var templates = map[Kind]template{
	KindReviewerAssigned: {
		subject: "New Review Assignment: %s",
		body: "Dear %s,\n\n" +
			"You have been assigned to review a grant proposal.\n\n" +
			"Proposal: %s\nCode: %s\nStage: %s\nDeadline: %s\n\n" +
			"Please log in to the system to complete your review.\n\n" +
			"Best regards,\nCTRG Grant Review System\n",
	},
	KindRevisionRequested: {
		subject: "Revision Requested: %s",
		body: "Dear %s,\n\n" +
			"Your proposal \"%s\" has been tentatively accepted pending revisions.\n\n" +
			"Proposal Code: %s\nRevision Deadline: %s\n\n" +
			"Please log in to the system to view reviewer comments and submit your revised proposal.\n\n" +
			"Best regards,\nCTRG Grant Review System\n",
	},
	KindRevisionReminder: {
		subject: "REMINDER: Revision Deadline Tomorrow - %s",
		body: "Dear %s,\n\n" +
			"This is a reminder that your revision for proposal \"%s\" is due soon.\n\n" +
			"Proposal Code: %s\nDeadline: %s\n\n" +
			"Please submit your revised proposal before the deadline.\n\n" +
			"Best regards,\nCTRG Grant Review System\n",
	},
	KindReviewReminder: {
		subject: "REMINDER: Review Due Soon - %s",
		body: "Dear %s,\n\n" +
			"This is a reminder that your review for proposal \"%s\" is due soon.\n\n" +
			"Proposal Code: %s\nDeadline: %s\n\n" +
			"Please log in to complete your review before the deadline.\n\n" +
			"Best regards,\nCTRG Grant Review System\n",
	},
	KindDeadlineMissed: {
		subject: "Revision Deadline Missed: %s",
		body: "Dear %s,\n\n" +
			"The revision deadline for your proposal \"%s\" has passed and the proposal\n" +
			"has been marked as deadline missed.\n\n" +
			"Proposal Code: %s\n\n" +
			"Best regards,\nCTRG Grant Review System\n",
	},
	KindFinalDecision: {
		subject: "Final Decision: %s - %s",
		body: "Dear %s,\n\n" +
			"The final decision for your proposal has been made.\n\n" +
			"Proposal: %s\nCode: %s\nDecision: %s\n\n" +
			"Please log in to the system for more details.\n\n" +
			"Best regards,\nCTRG Grant Review System\n",
	},
}

// Render produces subject and body for a message kind.
func Render(kind Kind, ctx map[string]string) (string, string) {
	get := func(key string) string { return ctx[key] }

	switch kind {
	case KindReviewerAssigned:
		t := templates[kind]
		return fmt.Sprintf(t.subject, get("code")),
			fmt.Sprintf(t.body, get("name"), get("title"), get("code"), get("stage"), get("deadline"))
	case KindRevisionRequested, KindRevisionReminder, KindReviewReminder:
		t := templates[kind]
		return fmt.Sprintf(t.subject, get("code")),
			fmt.Sprintf(t.body, get("name"), get("title"), get("code"), get("deadline"))
	case KindDeadlineMissed:
		t := templates[kind]
		return fmt.Sprintf(t.subject, get("code")),
			fmt.Sprintf(t.body, get("name"), get("title"), get("code"))
	case KindFinalDecision:
		t := templates[kind]
		return fmt.Sprintf(t.subject, get("code"), get("decision")),
			fmt.Sprintf(t.body, get("name"), get("title"), get("code"), get("decision"))
	default:
		return string(kind), ""
	}
}
