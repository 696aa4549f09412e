package notify

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/nsu-ctrg/grant-review/internal/config"
)

// SMTPNotifier sends plain-text mail through the configured relay. There is
// deliberately no retry and no error propagation; a lost notification never
// rolls back a committed state transition.
type SMTPNotifier struct {
	host string
	port string
	from string
	auth smtp.Auth
}

func NewSMTPNotifier() *SMTPNotifier {
	n := &SMTPNotifier{
		host: config.SMTPHost,
		port: config.SMTPPort,
		from: config.SMTPFrom,
	}
	if config.SMTPUser != "" {
		n.auth = smtp.PlainAuth("", config.SMTPUser, config.SMTPPassword, config.SMTPHost)
	}
	return n
}

func (n *SMTPNotifier) Notify(recipient string, kind Kind, ctx map[string]string) bool {
	if n.host == "" {
		log.Printf("[notify] SMTP not configured, dropping %s to %s", kind, recipient)
		return false
	}

	subject, body := Render(kind, ctx)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.from, recipient, subject, body))

	addr := n.host + ":" + n.port
	if err := smtp.SendMail(addr, n.auth, n.from, []string{recipient}, msg); err != nil {
		log.Printf("[notify] send %s to %s failed: %v", kind, recipient, err)
		return false
	}
	return true
}

// LogNotifier writes notifications to the process log. Used in development
// and tests.
type LogNotifier struct{}

func (LogNotifier) Notify(recipient string, kind Kind, ctx map[string]string) bool {
	subject, _ := Render(kind, ctx)
	log.Printf("[notify] %s -> %s: %s", kind, recipient, subject)
	return true
}
