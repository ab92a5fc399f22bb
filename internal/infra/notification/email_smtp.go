package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPEmailSender delivers order emails over plain SMTP, guarded by a
// circuit breaker so a dead relay fails fast instead of stalling every
// checkout.
type SMTPEmailSender struct {
	cfg     SMTPConfig
	breaker *gobreaker.CircuitBreaker

	// send is swappable in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPEmailSender(cfg SMTPConfig) *SMTPEmailSender {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "smtp",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &SMTPEmailSender{cfg: cfg, breaker: breaker, send: smtp.SendMail}
}

func (s *SMTPEmailSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n",
		s.cfg.From, to, subject, htmlBody))

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	addr := s.cfg.Host + ":" + s.cfg.Port

	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.send(addr, auth, s.cfg.From, []string{to}, msg)
	})
	if err != nil {
		return fmt.Errorf("%w: email to %s: %v", entity.ErrNotification, to, err)
	}
	return nil
}
