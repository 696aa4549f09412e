package application

import (
	"log"
	"time"

	"github.com/nsu-ctrg/grant-review/internal/notify"
)

const (
	// Reminder lead times before the respective deadlines.
	RevisionReminderWindow = 24 * time.Hour
	ReviewReminderWindow   = 48 * time.Hour
)

// SendRevisionReminders emails every PI whose revision deadline falls within
// the next 24 hours. Reminders are best-effort and may repeat across sweeps
// close to the deadline; the mail is idempotent from the PI's point of view.
func (s *LifecycleService) SendRevisionReminders() (int, error) {
	due, err := s.Repos.Proposal.ListRevisionsDueWithin(s.Clock(), RevisionReminderWindow)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range due {
		p := &due[i]
		if p.RevisionDeadline == nil {
			continue
		}
		ok := s.Notifier.Notify(p.PIEmail, notify.KindRevisionReminder, map[string]string{
			"name":     p.PIName,
			"title":    p.Title,
			"code":     p.ProposalCode,
			"deadline": p.RevisionDeadline.Format("2006-01-02 15:04"),
		})
		if ok {
			sent++
		}
	}
	return sent, nil
}

// SendReviewReminders emails every reviewer with a pending assignment due
// within the next 48 hours.
func (s *LifecycleService) SendReviewReminders() (int, error) {
	due, err := s.Repos.Assignment.ListPendingDueWithin(s.Clock(), ReviewReminderWindow)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range due {
		a := &due[i]
		if a.Reviewer == nil {
			log.Printf("review reminder: assignment %d has no preloaded reviewer", a.ID)
			continue
		}
		p, err := s.Repos.Proposal.GetProposalByID(a.PID)
		if err != nil {
			log.Printf("review reminder: proposal %d: %v", a.PID, err)
			continue
		}
		ok := s.Notifier.Notify(a.Reviewer.Email, notify.KindReviewReminder, map[string]string{
			"name":     a.Reviewer.DisplayName(),
			"title":    p.Title,
			"code":     p.ProposalCode,
			"stage":    a.Stage.String(),
			"deadline": a.Deadline.Format("2006-01-02 15:04"),
		})
		if ok {
			sent++
		}
	}
	return sent, nil
}

// ResendAssignmentNotifications retries the initial assignment mail for
// assignments whose first send failed.
func (s *WorkloadService) ResendAssignmentNotifications(ids []uint) (int, error) {
	pending, err := s.Repos.Assignment.ListUnnotified(ids)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range pending {
		a := &pending[i]
		if a.Reviewer == nil {
			continue
		}
		p, err := s.Repos.Proposal.GetProposalByID(a.PID)
		if err != nil {
			continue
		}
		ok := s.Notifier.Notify(a.Reviewer.Email, notify.KindReviewerAssigned, map[string]string{
			"name":     a.Reviewer.DisplayName(),
			"title":    p.Title,
			"code":     p.ProposalCode,
			"stage":    a.Stage.String(),
			"deadline": a.Deadline.Format("2006-01-02 15:04"),
		})
		if ok {
			a.NotificationSent = true
			if err := s.Repos.Assignment.UpdateAssignment(a); err != nil {
				log.Printf("mark assignment %d notified: %v", a.ID, err)
			}
			sent++
		}
	}
	return sent, nil
}
