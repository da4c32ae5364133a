package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func newTestMailer(sender MailSender) *Mailer {
	return &Mailer{
		cfg: MailConfig{
			From:        "noreply@matchrimoney.com",
			FrontendURL: "https://app.matchrimoney.com/",
		},
		sender: sender,
	}
}

func TestMailer_SendVerification(t *testing.T) {
	sender := &fakeSender{}
	m := newTestMailer(sender)

	require.NoError(t, m.SendVerification(context.Background(), "sam@example.com", "abc123"))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"sam@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"noreply@matchrimoney.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"Verify your Matchrimoney account"}, msg.GetHeader("Subject"))
}

func TestMailer_Link(t *testing.T) {
	m := newTestMailer(nil)
	assert.Equal(t, "https://app.matchrimoney.com/reset-password?token=a%2Bb", m.link("/reset-password", "a+b"))
}

func TestMailer_SendPasswordResetError(t *testing.T) {
	m := newTestMailer(&fakeSender{err: errors.New("smtp refused")})
	err := m.SendPasswordReset(context.Background(), "sam@example.com", "tok")
	assert.ErrorContains(t, err, "smtp refused")
}

func TestMailer_WithoutSMTP(t *testing.T) {
	m := NewMailer(MailConfig{FrontendURL: "http://localhost:3000"})
	assert.Nil(t, m.sender)
	assert.NoError(t, m.SendVerification(context.Background(), "sam@example.com", "tok"))
}

func TestMailer_CanceledContext(t *testing.T) {
	sender := &fakeSender{}
	m := newTestMailer(sender)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.SendVerification(ctx, "sam@example.com", "tok"), context.Canceled)
	assert.Empty(t, sender.sent)
}
