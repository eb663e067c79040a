// Package notify provides best-effort outbound email delivery via SMTP.
package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ticketdesk/backend/internal/config"
)

// Sender delivers a single outbound message. Implementations must treat
// delivery as best-effort; callers log failures and never retry.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EmailSender implements Sender over plain SMTP.
type EmailSender struct {
	cfg    config.SMTPConfig
	auth   smtp.Auth
	logger *zap.Logger
}

// NewEmailSender builds a sender from config. With Enabled false, Send logs
// and reports success so the rest of the system behaves identically in
// environments without an SMTP relay.
func NewEmailSender(cfg config.SMTPConfig, logger *zap.Logger) *EmailSender {
	var auth smtp.Auth
	if cfg.User != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return &EmailSender{cfg: cfg, auth: auth, logger: logger}
}

// Send delivers one message to one recipient.
func (s *EmailSender) Send(_ context.Context, to, subject, body string) error {
	if !s.cfg.Enabled {
		s.logger.Info("smtp disabled, skipping send",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient")
	}

	msg := buildMessage(s.cfg.From, to, subject, body)
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	return smtp.SendMail(addr, s.auth, s.cfg.From, []string{to}, msg)
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
