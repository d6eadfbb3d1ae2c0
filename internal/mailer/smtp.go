package mailer

import (
	"food-donation-backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers mail through an SMTP relay
type SMTPMailer struct {
	cfg *config.Config
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers a single HTML email
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		m.cfg.SMTPHost,
		m.cfg.SMTPPort,
		m.cfg.SMTPUsername,
		m.cfg.SMTPPassword,
	)

	return d.DialAndSend(msg)
}
