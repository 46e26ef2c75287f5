package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the dialer settings.
type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider sends mail through a plain SMTP relay via gomail.
type SMTPProvider struct {
	cfg SMTPConfig
}

func NewSMTPProvider(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	if p.cfg.FromName != "" {
		m.SetHeader("From", m.FormatAddress(p.cfg.FromEmail, p.cfg.FromName))
	} else {
		m.SetHeader("From", p.cfg.FromEmail)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(p.cfg.Host, p.cfg.Port, p.cfg.User, p.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
