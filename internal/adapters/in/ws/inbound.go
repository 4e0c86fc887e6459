package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/events"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/realtime"
)

// Inbound event names.
const (
	EventOrderJoin         = "order:join"
	EventOrderLeave        = "order:leave"
	EventOrderUpdateStatus = "order:updateStatus"
	EventChatSendMessage   = "chat:sendMessage"
	EventChatGetHistory    = "chat:getHistory"
	EventLocationUpdate    = "location:update"
)

type orderRef struct {
	OrderID string `json:"orderId"`
}

type statusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type chatRequest struct {
	OrderID     string `json:"orderId"`
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}

type locationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

var errMalformedFrame = errs.NewValueIsInvalidError("frame")

// dispatch handles one inbound frame. Failures are answered with an error
// event to this session only; the connection stays open.
func (c *client) dispatch(ctx context.Context, data []byte) {
	var envelope realtime.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Event == "" {
		c.reply(ctx, errMalformedFrame)
		return
	}

	var err error
	switch envelope.Event {
	case EventOrderJoin:
		err = c.joinOrder(ctx, envelope.Data)
	case EventOrderLeave:
		err = c.leaveOrder(envelope.Data)
	case EventOrderUpdateStatus:
		err = c.updateStatus(ctx, envelope.Data)
	case EventChatSendMessage:
		err = c.sendChat(ctx, envelope.Data)
	case EventChatGetHistory:
		err = c.chatHistory(ctx, envelope.Data)
	case EventLocationUpdate:
		err = c.updateLocation(ctx, envelope.Data)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("unknown event %q", envelope.Event))
	}

	if err != nil {
		c.reply(ctx, err)
	}
}

func (c *client) actor() user.Actor {
	return c.principal
}

// joinOrder subscribes the session to the room of an order it takes part in.
func (c *client) joinOrder(ctx context.Context, raw json.RawMessage) error {
	var req orderRef
	if err := decode(raw, &req); err != nil {
		return err
	}
	id, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id, c.actor())
	if err != nil {
		return err
	}
	if _, err = c.handler.useCases.GetOrder.HandleParticipant(ctx, query); err != nil {
		return err
	}
	return c.handler.hub.Join(c.session, events.OrderRoom(id.String()))
}

func (c *client) leaveOrder(raw json.RawMessage) error {
	var req orderRef
	if err := decode(raw, &req); err != nil {
		return err
	}
	id, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return err
	}
	c.handler.hub.Leave(c.session, events.OrderRoom(id.String()))
	return nil
}

func (c *client) updateStatus(ctx context.Context, raw json.RawMessage) error {
	var req statusRequest
	if err := decode(raw, &req); err != nil {
		return err
	}
	id, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status, c.actor())
	if err != nil {
		return err
	}
	_, err = c.handler.useCases.ChangeStatus.Handle(ctx, cmd)
	return err
}

// sendChat posts a message. Once accepted, the sender is joined to the order
// room so it sees the rest of the conversation.
func (c *client) sendChat(ctx context.Context, raw json.RawMessage) error {
	var req chatRequest
	if err := decode(raw, &req); err != nil {
		return err
	}
	id, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSendChatMessageCommand(id, c.actor(), req.RecipientID, req.Content)
	if err != nil {
		return err
	}
	if _, err = c.handler.useCases.SendChat.Handle(ctx, cmd); err != nil {
		return err
	}
	return c.handler.hub.Join(c.session, events.OrderRoom(id.String()))
}

// chatHistory replies with chat:history and joins the order room.
func (c *client) chatHistory(ctx context.Context, raw json.RawMessage) error {
	var req orderRef
	if err := decode(raw, &req); err != nil {
		return err
	}
	id, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetChatHistoryQuery(id, c.actor())
	if err != nil {
		return err
	}
	messages, err := c.handler.useCases.ChatHistory.Handle(ctx, query)
	if err != nil {
		return err
	}

	if err = c.handler.hub.Join(c.session, events.OrderRoom(id.String())); err != nil {
		return err
	}
	c.handler.hub.Send(ctx, c.session, events.ChatHistory, events.NewChatHistoryPayload(id.String(), messages))
	return nil
}

func (c *client) updateLocation(ctx context.Context, raw json.RawMessage) error {
	var req locationRequest
	if err := decode(raw, &req); err != nil {
		return err
	}
	if req.Lat == nil || req.Lng == nil {
		return errs.NewValueIsRequiredError("lat and lng")
	}

	cmd, err := commands.NewUpdateLocationCommand(c.actor(), *req.Lat, *req.Lng)
	if err != nil {
		return err
	}
	_, err = c.handler.useCases.UpdateLocation.Handle(ctx, cmd)
	return err
}

func (c *client) reply(ctx context.Context, err error) {
	c.handler.hub.Send(ctx, c.session, events.Error, events.ErrorPayload{Message: clientMessage(err)})
}

// clientMessage hides internal failures from the client.
func clientMessage(err error) string {
	switch {
	case errs.IsValidation(err),
		errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrAccessDenied),
		errors.Is(err, errs.ErrAuthentication),
		errors.Is(err, services.ErrNoDeliveryAvailable):
		return err.Error()
	default:
		return "internal error"
	}
}

func decode(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return errs.NewValueIsRequiredError("data")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("data", err)
	}
	return nil
}
