package commands_test

import (
	"strings"
	"testing"

	"orderhub/internal/adapters/out/memory"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/events"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendChatMessageCommand(t *testing.T) {
	t.Run("should require recipient and content", func(t *testing.T) {
		_, err := commands.NewSendChatMessageCommand(kernel.NewUUID(), customer, " ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "recipientId")
		assert.Contains(t, err.Error(), "content")
	})
}

func TestSendChatMessageCommandHandler_Handle(t *testing.T) {
	send := func(t *testing.T, h commands.SendChatMessageCommandHandler, id kernel.UUID, from user.Actor, to string, text string) error {
		t.Helper()
		cmd, err := commands.NewSendChatMessageCommand(id, from, to, text)
		require.NoError(t, err)
		_, err = h.Handle(t.Context(), cmd)
		return err
	}

	t.Run("should store the message and notify the recipient", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		orders := memory.NewOrderStore()
		orders.Seed([]*order.Order{o})
		chatLog := memory.NewChatLog(0)
		publisher := new(recordingPublisher)
		handler := commands.NewSendChatMessageCommandHandler(orders, chatLog, keylock.New(), publisher)
		text := "I am outside the building next to the blue door"

		require.NoError(t, send(t, handler, o.ID(), courier, "c1", text))

		history, err := chatLog.History(t.Context(), o.ID())
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "d1", history[0].SenderID())
		assert.Equal(t, user.RoleDelivery, history[0].SenderRole())
		assert.Equal(t, text, history[0].Content())

		sent := publisher.all()
		require.Len(t, sent, 2)
		assert.Equal(t, events.OrderRoom(o.ID().String()), sent[0].Room)
		assert.Equal(t, events.ChatMessage, sent[0].Event)
		assert.Equal(t, events.UserRoom("c1"), sent[1].Room)
		note := sent[1].Payload.(events.Notification)
		assert.Equal(t, events.NotificationChatMessage, note.Type)
		assert.Equal(t, "New message from Dana", note.Message)
		assert.Equal(t, "d1", note.SenderID)
		assert.Equal(t, "I am outside the building next...", note.Preview)
	})

	t.Run("should keep messages in the order they were sent", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		orders := memory.NewOrderStore()
		orders.Seed([]*order.Order{o})
		chatLog := memory.NewChatLog(0)
		handler := commands.NewSendChatMessageCommandHandler(orders, chatLog, keylock.New(), new(recordingPublisher))

		require.NoError(t, send(t, handler, o.ID(), customer, "d1", "hi"))
		require.NoError(t, send(t, handler, o.ID(), courier, "c1", "on my way"))
		require.NoError(t, send(t, handler, o.ID(), restaurant, "c1", "packed"))

		history, err := chatLog.History(t.Context(), o.ID())
		require.NoError(t, err)
		var texts []string
		for _, m := range history {
			texts = append(texts, m.Content())
		}
		assert.Equal(t, []string{"hi", "on my way", "packed"}, texts)
	})

	t.Run("should refuse outsiders", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		orders := memory.NewOrderStore()
		orders.Seed([]*order.Order{o})
		chatLog := memory.NewChatLog(0)
		publisher := new(recordingPublisher)
		handler := commands.NewSendChatMessageCommandHandler(orders, chatLog, keylock.New(), publisher)
		otherCustomer := user.Actor{UserID: "c2", Name: "Cleo", Role: user.RoleCustomer}

		require.ErrorIs(t, send(t, handler, o.ID(), stranger, "c1", "hello"), errs.ErrAccessDenied)
		require.ErrorIs(t, send(t, handler, o.ID(), otherCustomer, "c1", "hello"), errs.ErrAccessDenied)

		history, err := chatLog.History(t.Context(), o.ID())
		require.NoError(t, err)
		assert.Empty(t, history)
		assert.Empty(t, publisher.all())
	})

	t.Run("should reject oversized messages", func(t *testing.T) {
		o := newAssignedOrder(t, "c1", "d1")
		orders := memory.NewOrderStore()
		orders.Seed([]*order.Order{o})
		handler := commands.NewSendChatMessageCommandHandler(orders, memory.NewChatLog(0), keylock.New(), new(recordingPublisher))

		err := send(t, handler, o.ID(), customer, "d1", strings.Repeat("a", 2001))

		require.Error(t, err)
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		handler := commands.NewSendChatMessageCommandHandler(
			memory.NewOrderStore(), memory.NewChatLog(0), keylock.New(), new(recordingPublisher),
		)

		require.ErrorIs(t, send(t, handler, kernel.NewUUID(), customer, "d1", "hi"), errs.ErrObjectNotFound)
	})
}
