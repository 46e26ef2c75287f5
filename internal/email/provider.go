package email

// Provider sends transactional mail. Delivery is always best effort: the
// request that triggered a message never fails because SMTP did.
type Provider interface {
	Send(to, subject, body string) error
}
