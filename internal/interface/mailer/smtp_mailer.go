package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/repository"
	"github.com/Dominoman/BangkokCheapTravel/pkg/logger"
)

// SMTPMailer delivers HTML reports through a plain SMTP relay.
type SMTPMailer struct {
	server   string
	port     int
	username string
	password string
	from     string
	logger   logger.Logger
}

// Ensure SMTPMailer implements MailerRepository
var _ repository.MailerRepository = (*SMTPMailer)(nil)

// NewSMTPMailer creates a new SMTP mailer. Auth is skipped when username is
// empty, matching relays that accept local submission.
func NewSMTPMailer(server string, port int, username, password, from string, logger logger.Logger) *SMTPMailer {
	if from == "" {
		from = username
	}
	return &SMTPMailer{
		server:   server,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger,
	}
}

// Send delivers one HTML message
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	headers := []string{
		fmt.Sprintf("From: %s", m.from),
		fmt.Sprintf("Subject: %s", subject),
		fmt.Sprintf("To: %s", to),
		"MIME-Version: 1.0",
		"Content-Type: text/html",
	}
	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.server)
	}

	addr := fmt.Sprintf("%s:%d", m.server, m.port)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info("Report mail sent", "to", to, "subject", subject)

	return nil
}
