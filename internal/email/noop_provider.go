package email

import "jobboard_backend/internal/logger"

// NoopProvider is used when SMTP is not configured. Messages are logged and
// dropped.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(to, subject, body string) error {
	logger.Debug("email delivery disabled, dropping message", "to", to, "subject", subject)
	return nil
}
