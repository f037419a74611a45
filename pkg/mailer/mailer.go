package mailer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender delivers a rendered confirmation message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single outbound transactional email.
type Message struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text,omitempty"`
	Tag      string `json:"tag,omitempty"` // Optional, for provider-side analytics
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the message carries everything a provider needs.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.BodyHTML) == "" && strings.TrimSpace(m.BodyText) == "" {
		return fmt.Errorf("%w: message body is required", ErrInvalidMessage)
	}
	return nil
}
