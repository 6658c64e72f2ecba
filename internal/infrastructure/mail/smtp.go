// Package mail delivers transactional mail over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// SMTPSender sends mail through a single SMTP relay. Authentication is
// optional: leave Username empty for an open relay (local dev).
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

var _ domain.MailSender = (*SMTPSender)(nil)

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a plain-text message to a single recipient.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	log.WithFields(log.Fields{"to": to, "subject": subject}).Info("mail sent")
	return nil
}

// LogSender writes mail to the log instead of sending it. Used when no SMTP
// relay is configured.
type LogSender struct{}

var _ domain.MailSender = (*LogSender)(nil)

func (LogSender) Send(_ context.Context, to, subject, body string) error {
	log.WithFields(log.Fields{
		"to":      to,
		"subject": subject,
		"body":    body,
	}).Info("mail sender disabled, logging message instead")
	return nil
}
