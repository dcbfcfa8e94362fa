package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// SMTPOptions configures an SMTPMailer.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer delivers messages through an SMTP relay.
type SMTPMailer struct {
	opts SMTPOptions
}

func NewSMTPMailer(opts SMTPOptions) *SMTPMailer {
	return &SMTPMailer{opts: opts}
}

// Send dials the relay and delivers msg. Rejections the server reports as
// permanent are wrapped with ErrPermanent.
func (s *SMTPMailer) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(s.opts.From); err != nil {
		return fmt.Errorf("%w: invalid sender %q: %w", ErrPermanent, s.opts.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("%w: invalid recipient %q: %w", ErrPermanent, msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	opts := []gomail.Option{
		gomail.WithPort(s.opts.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if s.opts.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.opts.Username),
			gomail.WithPassword(s.opts.Password),
		)
	}

	client, err := gomail.NewClient(s.opts.Host, opts...)
	if err != nil {
		return fmt.Errorf("could not create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		var sendErr *gomail.SendError
		if errors.As(err, &sendErr) && !sendErr.IsTemp() {
			return fmt.Errorf("%w: %w", ErrPermanent, err)
		}

		return fmt.Errorf("could not send mail: %w", err)
	}

	return nil
}
