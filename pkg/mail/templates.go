package mail

import (
	"fmt"
	"landregistry/pkg/domain"
	"net/url"
	"strings"
	"time"
)

const signature = "\n\nLand Management System"

// PasswordReset builds the message carrying a password reset link. The token is
// appended to resetURL as the "token" query parameter.
func PasswordReset(to, name, resetURL, token string, ttl time.Duration) Message {
	link := resetURL
	if u, err := url.Parse(resetURL); err == nil {
		q := u.Query()
		q.Set("token", token)
		u.RawQuery = q.Encode()
		link = u.String()
	}

	return Message{
		To:      to,
		Subject: "Password reset request",
		Body: fmt.Sprintf("Hello %s,\n\nUse the link below to choose a new password. "+
			"It expires in %s.\n\n%s\n\nIf you did not ask for a reset you can ignore this email.%s",
			name, ttl, link, signature),
	}
}

// VerificationCode builds the message carrying a one-time email verification code.
func VerificationCode(to, name, code string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: "Your verification code",
		Body: fmt.Sprintf("Hello %s,\n\nYour verification code is %s. It expires in %s.%s",
			name, code, ttl, signature),
	}
}

// RequestDecision informs the requester that their request was approved or rejected.
func RequestDecision(to, name string, r domain.Request) Message {
	verb := strings.ToLower(string(r.Status))
	body := fmt.Sprintf("Hello %s,\n\nYour %s request %s has been %s.",
		name, humanize(string(r.RequestType)), r.RequestNumber, verb)
	if r.Status == domain.RequestStatusRejected && r.RejectionReason != "" {
		body += "\n\nReason: " + r.RejectionReason
	}
	if r.OfficerNotes != "" {
		body += "\n\nNotes from the land officer: " + r.OfficerNotes
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Request %s %s", r.RequestNumber, verb),
		Body:    body + signature,
	}
}

func humanize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", " "))
}
