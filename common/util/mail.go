package util

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"
)

const (
	SelectedSubject    = "TEDx Registration"
	NotSelectedSubject = "TEDx Registration Update"
	CertificateSubject = "Your Certificate"
)

const selectedTemplate = `
<p>Hi $username,</p>
<p>You have been successfully registered for TEDx! We look forward to seeing you at the event.</p>
<p>Please keep this email, your entry QR code will be shared with you before the event.</p>
<p>Best regards,<br>The Organizing Team</p>
`

const notSelectedTemplate = `
<p>Hi $username,</p>
<p>Thank you for your interest in TEDx. Unfortunately we were not able to offer you a seat this time.</p>
<p>We hope to see you at a future event.</p>
<p>Best regards,<br>The Organizing Team</p>
`

const certificateTemplate = `
<p>Hi $username,</p>
<p>Your certificate of participation is ready: <a href="$link">$link</a></p>
<p>Best regards,<br>The Organizing Team</p>
`

// Mailer sends a single html email.
type Mailer interface {
	Send(to string, subject string, htmlBody string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(host string, port int, user string, pass string, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to string, subject string, htmlBody string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.from)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(mailer); err != nil {
		slog.Error("Error Sending Mail", "error", err, "recipient", to)
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	slog.Info("Email sent successfully", "recipient", to)
	return nil
}

// SelectedMail renders the registration confirmation body.
func SelectedMail(username string) string {
	return strings.ReplaceAll(selectedTemplate, "$username", html.EscapeString(username))
}

// NotSelectedMail renders the rejection body.
func NotSelectedMail(username string) string {
	return strings.ReplaceAll(notSelectedTemplate, "$username", html.EscapeString(username))
}

// CertificateMail renders the certificate link notification body.
func CertificateMail(username string, link string) string {
	return strings.NewReplacer("$username", html.EscapeString(username), "$link", html.EscapeString(link)).Replace(certificateTemplate)
}

// MockMailer records sent mails and returns SendFunc's result when set.
type MockMailer struct {
	SendFunc func(to string, subject string, htmlBody string) error
	Sent     []SentMail
}

type SentMail struct {
	To      string
	Subject string
	Body    string
}

var _ Mailer = (*MockMailer)(nil)

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(to string, subject string, htmlBody string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(to, subject, htmlBody); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}
