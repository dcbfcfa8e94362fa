// Package mail composes and delivers the transactional emails of the registry:
// password reset links, email verification codes and request decisions.
package mail

import (
	"context"
	"errors"
)

// ErrPermanent marks a delivery failure that will not succeed on retry,
// such as a rejected recipient.
var ErrPermanent = errors.New("permanent delivery failure")

// Message is a plain-text email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

//go:generate mockgen -package mockmail -source=mail.go -destination=mock/mockmail.go *

// Mailer delivers a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
