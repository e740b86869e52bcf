package email

import (
	"context"
	"io"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"rentora.backend/pkg/logger"
)

// Sender delivers notification emails to tenants and landlords.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	SendWithAttachment(ctx context.Context, to, subject, htmlBody, filename string, attachment []byte) error
}

// SMTPMailer sends email through an SMTP relay using gomail.
type SMTPMailer struct {
	host   string
	port   int
	user   string
	pass   string
	sender string
}

// NewSMTPMailer creates a mailer for the given SMTP relay
func NewSMTPMailer(host string, port int, user, pass, sender string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, sender: sender}
}

// Send delivers an HTML email
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	return m.deliver(ctx, to, subject, htmlBody, "", nil)
}

// SendWithAttachment delivers an HTML email with a single attachment
func (m *SMTPMailer) SendWithAttachment(ctx context.Context, to, subject, htmlBody, filename string, attachment []byte) error {
	return m.deliver(ctx, to, subject, htmlBody, filename, attachment)
}

func (m *SMTPMailer) deliver(ctx context.Context, to, subject, htmlBody, filename string, attachment []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if len(attachment) > 0 {
		msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		logger.Error(ctx, "Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	logger.Debug(ctx, "Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
