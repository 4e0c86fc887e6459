package queries

import (
	"context"

	"orderhub/internal/core/domain/model/chat"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
)

// GetChatHistoryQueryHandler returns the retained messages of an order, oldest
// first, to the participants of that order.
type GetChatHistoryQueryHandler struct {
	orders  ports.OrderRepository
	chatLog ports.ChatLog
	policy  services.TransitionPolicy
}

func NewGetChatHistoryQueryHandler(orders ports.OrderRepository, chatLog ports.ChatLog) GetChatHistoryQueryHandler {
	return GetChatHistoryQueryHandler{orders: orders, chatLog: chatLog, policy: services.NewTransitionPolicy()}
}

func (h GetChatHistoryQueryHandler) Handle(ctx context.Context, query GetChatHistoryQuery) ([]chat.Message, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.orderID)
	if err != nil {
		return nil, err
	}
	if !h.policy.IsParticipant(o, query.actor.Role, query.actor.UserID) {
		return nil, errs.NewAccessDeniedError("read this conversation", query.actor.Role.String())
	}

	return h.chatLog.History(ctx, o.ID())
}
