package mail

import (
	"context"

	"github.com/Ihsas01/SR-SHOPPING/config"
	"gopkg.in/gomail.v2"
)

// Notifier delivers a plain-text note to the store owner.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// CreateNotifier returns an SMTP notifier, or nil when SMTP or the recipient
// is not configured.
func CreateNotifier(config *config.Config) Notifier {
	smtp := config.SMTPConfig
	if smtp.Host == "" || smtp.NotifyEmail == "" {
		return nil
	}

	from := smtp.Username
	if from == "" {
		from = smtp.NotifyEmail
	}

	return &SMTPNotifier{
		dialer: gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password),
		from:   from,
		to:     smtp.NotifyEmail,
	}
}

func (n *SMTPNotifier) Notify(ctx context.Context, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return n.dialer.DialAndSend(m)
}
