// Package chat models the per-order conversation between the customer, the
// restaurant and the delivery person.
package chat

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
)

const (
	// PreviewLength is the number of characters kept in notification previews.
	PreviewLength = 30

	// MaxContentLength bounds a single message.
	MaxContentLength = 2000
)

// Message is one chat line. Messages are immutable once created.
type Message struct {
	orderID     kernel.UUID
	senderID    string
	senderName  string
	senderRole  user.Role
	recipientID string
	content     string
	timestamp   time.Time
}

// NewMessage validates and builds a message.
func NewMessage(
	orderID kernel.UUID,
	senderID string,
	senderName string,
	senderRole user.Role,
	recipientID string,
	content string,
	timestamp time.Time,
) (Message, error) {
	var problems []error

	if err := orderID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if senderID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("senderId"))
	}
	if err := senderRole.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(recipientID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("recipientId"))
	}
	if strings.TrimSpace(content) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("content"))
	} else if n := utf8.RuneCountInString(content); n > MaxContentLength {
		problems = append(problems, errs.NewValueIsOutOfRangeError("content length", n, 1, MaxContentLength))
	}

	if err := errors.Join(problems...); err != nil {
		return Message{}, err
	}

	return Message{
		orderID:     orderID,
		senderID:    senderID,
		senderName:  senderName,
		senderRole:  senderRole,
		recipientID: recipientID,
		content:     content,
		timestamp:   timestamp.UTC(),
	}, nil
}

func (m Message) OrderID() kernel.UUID  { return m.orderID }
func (m Message) SenderID() string      { return m.senderID }
func (m Message) SenderName() string    { return m.senderName }
func (m Message) SenderRole() user.Role { return m.senderRole }
func (m Message) RecipientID() string   { return m.recipientID }
func (m Message) Content() string       { return m.content }
func (m Message) Timestamp() time.Time  { return m.timestamp }

// Preview returns the first PreviewLength characters, with "..." appended when truncated.
func (m Message) Preview() string {
	return Preview(m.content)
}

func Preview(content string) string {
	if utf8.RuneCountInString(content) <= PreviewLength {
		return content
	}
	return string([]rune(content)[:PreviewLength]) + "..."
}
