package commands

import (
	"errors"
	"time"

	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrPruneChatCommandIsNotConstructed = errors.New(
	"PruneChatCommand must be created via NewPruneChatCommand constructor",
)

// PruneChatCommand removes chat messages older than a retention period.
type PruneChatCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPruneChatCommand(retention time.Duration) (PruneChatCommand, error) {
	if retention <= 0 {
		return PruneChatCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, time.Second, "unbounded")
	}
	return PruneChatCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

func (c PruneChatCommand) Validate() error {
	return c.guard.Validate(ErrPruneChatCommandIsNotConstructed)
}

func (c PruneChatCommand) Retention() time.Duration {
	return c.retention
}
