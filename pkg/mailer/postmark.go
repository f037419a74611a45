package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// Config holds the Postmark transport configuration. SenderEmail establishes
// the sender identity of every outbound confirmation; ReplyToEmail is where
// customer responses land.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL,required"`
}

type postmarkSender struct {
	client *postmark.Client
	config Config
}

// NewPostmarkSender creates a Postmark-backed message sender. All tokens and
// addresses are required so a misconfigured transport fails at startup rather
// than at dispatch time.
func NewPostmarkSender(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" || !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.ReplyToEmail == "" || !emailRegex.MatchString(cfg.ReplyToEmail) {
		return nil, fmt.Errorf("%w: ReplyToEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmarkSender creates a Postmark sender that panics on invalid config.
func MustNewPostmarkSender(cfg Config) Sender {
	s, err := NewPostmarkSender(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Send delivers the message through Postmark's transactional API. Open
// tracking is enabled; link tracking is limited to the HTML body so the
// plaintext part stays clean.
func (s *postmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.config.SenderEmail,
		ReplyTo:    s.config.ReplyToEmail,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.BodyHTML,
		TextBody:   msg.BodyText,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSend,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
