package commands

import (
	"errors"
	"strings"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrSendChatMessageCommandIsNotConstructed = errors.New(
	"SendChatMessageCommand must be created via NewSendChatMessageCommand constructor",
)

// SendChatMessageCommand posts a message to an order's conversation.
type SendChatMessageCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	sender      user.Actor
	recipientID string
	content     string

	guard guard.ConstructorGuard
}

func NewSendChatMessageCommand(
	orderID kernel.UUID,
	sender user.Actor,
	recipientID string,
	content string,
) (SendChatMessageCommand, error) {
	var problems []error
	problems = append(problems, orderID.Validate(), sender.Validate())
	if strings.TrimSpace(recipientID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("recipientId"))
	}
	if strings.TrimSpace(content) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("content"))
	}
	if err := errors.Join(problems...); err != nil {
		return SendChatMessageCommand{}, err
	}

	return SendChatMessageCommand{
		orderID:     orderID,
		sender:      sender,
		recipientID: recipientID,
		content:     content,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SendChatMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendChatMessageCommandIsNotConstructed)
}

func (c SendChatMessageCommand) OrderID() kernel.UUID { return c.orderID }
func (c SendChatMessageCommand) Sender() user.Actor   { return c.sender }
func (c SendChatMessageCommand) RecipientID() string  { return c.recipientID }
func (c SendChatMessageCommand) Content() string      { return c.content }
