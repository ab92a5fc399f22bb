package outbound

import "context"

// SMSSender delivers a short text message. The checkout workflow treats
// it as best effort: a failure is logged and swallowed.
type SMSSender interface {
	SendSMS(ctx context.Context, from, to, body string) error
}

// EmailSender delivers a formatted message. A failure here is the
// checkout workflow's failure.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}
