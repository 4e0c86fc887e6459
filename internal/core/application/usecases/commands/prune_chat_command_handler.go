package commands

import (
	"context"
	"time"

	"orderhub/internal/core/ports"
)

// PruneChatCommandHandler enforces the chat retention period.
type PruneChatCommandHandler struct {
	chatLog ports.ChatLog
	now     func() time.Time
}

func NewPruneChatCommandHandler(chatLog ports.ChatLog) PruneChatCommandHandler {
	return PruneChatCommandHandler{chatLog: chatLog, now: time.Now}
}

// Handle returns the number of removed messages.
func (h PruneChatCommandHandler) Handle(ctx context.Context, cmd PruneChatCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.chatLog.PruneBefore(ctx, h.now().Add(-cmd.Retention()))
}
