package mailer

import (
	"fmt"

	"food-donation-backend/internal/config"
	apperrors "food-donation-backend/internal/errors"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Mailer sends a single transactional email. Workflows only ever see this
// interface; the concrete transport is chosen once at startup.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// New selects the configured mail backend
func New(cfg *config.Config) (Mailer, error) {
	switch cfg.MailBackend {
	case config.MailBackendSMTP:
		return NewSMTPMailer(cfg), nil
	case config.MailBackendAPI:
		return NewAPIMailer(cfg), nil
	default:
		return nil, apperrors.ErrUnknownMailBackend
	}
}

// VerificationEmail composes the subject and HTML body for an account
// verification mail carrying the single-use token link.
func VerificationEmail(frontendURI, token string) (subject, htmlBody string) {
	link := fmt.Sprintf("%s/verify-account?token=%s", frontendURI, token)
	subject = "Verify your account"
	htmlBody = fmt.Sprintf(
		`<p>Welcome to the food donation platform!</p>
<p>Please confirm your email address by clicking the link below:</p>
<p><a href="%s">Verify my account</a></p>
<p>If you did not create an account, you can ignore this email.</p>`,
		link,
	)
	return subject, htmlBody
}
