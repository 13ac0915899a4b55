// Package mailer is the real SMTP relay path. It is stateless: every send is
// independent, nothing is stored, and no retry is attempted.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type SMTPMailer struct {
	config *Config
}

func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{config: config}
}

// Send relays one message through the configured SMTP host. When htmlBody is
// non-empty the message goes out as multipart/alternative.
func (m *SMTPMailer) Send(to, subject, textBody, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	msg := m.buildMessage(to, subject, textBody, htmlBody)
	if err := smtp.SendMail(addr, auth, m.config.FromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (m *SMTPMailer) buildMessage(to, subject, textBody, htmlBody string) []byte {
	var b strings.Builder

	from := m.config.FromEmail
	if m.config.FromName != "" {
		from = fmt.Sprintf("%q <%s>", m.config.FromName, m.config.FromEmail)
	}

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")

	if htmlBody == "" {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(textBody + "\r\n")
		return []byte(b.String())
	}

	const boundary = "autoluxe-mail-boundary"
	b.WriteString("Content-Type: multipart/alternative; boundary=\"" + boundary + "\"\r\n\r\n")
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(textBody + "\r\n")
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(htmlBody + "\r\n")
	b.WriteString("--" + boundary + "--\r\n")
	return []byte(b.String())
}
