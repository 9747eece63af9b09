package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/repository"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer delivers HTML reports through the Gmail API on behalf of the
// authorized account.
type GmailMailer struct {
	gmailService *gmail.Service
	logger       logger.Logger
}

// Ensure GmailMailer implements MailerRepository
var _ repository.MailerRepository = (*GmailMailer)(nil)

// NewGmailMailer creates a new Gmail mailer
func NewGmailMailer(ctx context.Context, tokenSource oauth2.TokenSource, logger logger.Logger) (*GmailMailer, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailMailer{
		gmailService: service,
		logger:       logger,
	}, nil
}

// Send delivers one HTML message as the authorized user
func (m *GmailMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	headers := []string{
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	raw := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	message := &gmail.Message{
		Raw: base64.RawURLEncoding.EncodeToString([]byte(raw)),
	}

	if _, err := m.gmailService.Users.Messages.Send("me", message).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send gmail message: %w", err)
	}

	m.logger.Info("Report mail sent via Gmail", "to", to, "subject", subject)

	return nil
}
