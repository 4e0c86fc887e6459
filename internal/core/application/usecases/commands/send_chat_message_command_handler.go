package commands

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/chat"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
)

// SendChatMessageCommandHandler appends a message to the chat log, publishes it to
// the order room and notifies the recipient with a short preview. Only participants
// of the order (its customer, its delivery person, the restaurant) may post.
type SendChatMessageCommandHandler struct {
	orders   ports.OrderRepository
	chatLog  ports.ChatLog
	locker   ports.OrderLocker
	notifier notifier
	policy   services.TransitionPolicy
	now      func() time.Time
}

func NewSendChatMessageCommandHandler(
	orders ports.OrderRepository,
	chatLog ports.ChatLog,
	locker ports.OrderLocker,
	publisher ports.EventPublisher,
) SendChatMessageCommandHandler {
	return SendChatMessageCommandHandler{
		orders:   orders,
		chatLog:  chatLog,
		locker:   locker,
		notifier: notifier{publisher: publisher},
		policy:   services.NewTransitionPolicy(),
		now:      time.Now,
	}
}

func (h SendChatMessageCommandHandler) Handle(ctx context.Context, cmd SendChatMessageCommand) (chat.Message, error) {
	if err := cmd.Validate(); err != nil {
		return chat.Message{}, err
	}

	// Chat shares the order lock so history order matches publish order.
	unlock := h.locker.Lock(cmd.OrderID().String())
	defer unlock()

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return chat.Message{}, err
	}

	sender := cmd.Sender()
	if !h.policy.IsParticipant(o, sender.Role, sender.UserID) {
		return chat.Message{}, errs.NewAccessDeniedError("chat on this order", sender.Role.String())
	}

	msg, err := chat.NewMessage(
		o.ID(),
		sender.UserID,
		sender.Name,
		sender.Role,
		cmd.RecipientID(),
		cmd.Content(),
		h.now(),
	)
	if err != nil {
		return chat.Message{}, err
	}

	if err = h.chatLog.Append(ctx, msg); err != nil {
		return chat.Message{}, err
	}

	h.notifier.chatPosted(ctx, msg)
	return msg, nil
}
