package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender for local development. It writes each message
// as an HTML file plus a JSON metadata file into a directory instead of
// sending it anywhere.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that writes messages to dir.
// The directory is created on first send if it does not exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devMetadata struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
	BodyText  string `json:"body_text,omitempty"`
}

// Send writes the message to disk. File names combine a timestamp, the tag
// (or subject), and a short random suffix so rapid sends never collide.
func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	now := time.Now()
	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	base := fmt.Sprintf("%s_%s_%s",
		now.Format("2006_01_02_150405"),
		sanitizeFilename(identifier),
		uuid.NewString()[:8],
	)

	htmlPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.BodyHTML), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSend, err)
	}

	meta, err := json.MarshalIndent(devMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
		BodyText:  msg.BodyText,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}

	jsonPath := filepath.Join(d.dir, base+".json")
	if err := os.WriteFile(jsonPath, meta, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSend, err)
	}

	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "message"
	}
	return strings.ToLower(s)
}
