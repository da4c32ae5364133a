package facades

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sbilibin2017/matchrimoney/internal/logger"
	"gopkg.in/gomail.v2"
)

// MailConfig holds SMTP settings and the frontend base URL used in links.
type MailConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	FrontendURL string
}

// MailSender delivers prepared messages. *gomail.Dialer satisfies it.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends transactional emails over SMTP.
type Mailer struct {
	cfg    MailConfig
	sender MailSender
}

// NewMailer creates a mailer. Without an SMTP host the mailer only logs
// the messages it would have sent.
func NewMailer(cfg MailConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	if cfg.Host != "" {
		m.sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return m
}

// SendVerification mails the email verification link.
func (m *Mailer) SendVerification(ctx context.Context, to, token string) error {
	link := m.link("/verify-email", token)
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Welcome to Matchrimoney</h2>
  <p>Confirm your email address to start meeting couples near you:</p>
  <p><a href="%s">Verify my email</a></p>
  <p>The link is valid for 24 hours.</p>
</body>
</html>`, link)
	return m.send(ctx, to, "Verify your Matchrimoney account", body, link)
}

// SendPasswordReset mails the password reset link.
func (m *Mailer) SendPasswordReset(ctx context.Context, to, token string) error {
	link := m.link("/reset-password", token)
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Reset your password</h2>
  <p>Someone asked to reset the password of your Matchrimoney account.</p>
  <p><a href="%s">Choose a new password</a></p>
  <p>The link is valid for one hour. Ignore this email if it was not you.</p>
</body>
</html>`, link)
	return m.send(ctx, to, "Reset your Matchrimoney password", body, link)
}

func (m *Mailer) link(path, token string) string {
	return strings.TrimRight(m.cfg.FrontendURL, "/") + path + "?token=" + url.QueryEscape(token)
}

func (m *Mailer) send(ctx context.Context, to, subject, body, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.sender == nil {
		logger.Log.Warnw("SMTP not configured, email not sent", "to", to, "subject", subject, "link", link)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.sender.DialAndSend(msg); err != nil {
		logger.Log.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("send email: %w", err)
	}

	logger.Log.Infow("email sent", "to", to, "subject", subject)
	return nil
}
