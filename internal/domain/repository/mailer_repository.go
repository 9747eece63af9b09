package repository

import (
	"context"
)

// MailerRepository delivers an HTML report to a recipient.
type MailerRepository interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
