// Package archive writes the in-memory order table to durable storage in the
// background. The in-memory table stays authoritative: a failed save is logged
// as a persistence warning and never undoes a committed change.
package archive

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
)

const defaultSaveTimeout = 10 * time.Second

// Source provides the table to save.
type Source interface {
	Snapshot() []*order.Order
}

// Writer coalesces change signals into SaveOrders calls. Any number of MarkDirty
// calls made while a save is running result in exactly one follow-up save.
type Writer struct {
	source      Source
	archive     ports.OrderArchive
	logger      *slog.Logger
	saveTimeout time.Duration

	dirty chan struct{}
	mu    sync.Mutex
}

func NewWriter(source Source, archive ports.OrderArchive, logger *slog.Logger) *Writer {
	return &Writer{
		source:      source,
		archive:     archive,
		logger:      logger.With("component", "archive_writer"),
		saveTimeout: defaultSaveTimeout,
		dirty:       make(chan struct{}, 1),
	}
}

// MarkDirty schedules a save without blocking.
func (w *Writer) MarkDirty() {
	select {
	case w.dirty <- struct{}{}:
	default:
	}
}

// Run saves after every change signal until ctx is done, then performs a final save.
func (w *Writer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.saveTimeout)
			_ = w.Flush(final)
			cancel()
			return
		case <-w.dirty:
			saveCtx, cancel := context.WithTimeout(ctx, w.saveTimeout)
			_ = w.Flush(saveCtx)
			cancel()
		}
	}
}

// Flush saves the current snapshot synchronously. Errors are logged and returned.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	orders := w.source.Snapshot()
	if err := w.archive.SaveOrders(ctx, orders); err != nil {
		w.logger.WarnContext(ctx, "persistence warning", "error", err, "orders", len(orders))
		return err
	}

	w.logger.DebugContext(ctx, "orders archived", "orders", len(orders))
	return nil
}

// Restore loads archived orders. A failure is logged and yields an empty result.
func Restore(ctx context.Context, archive ports.OrderArchive, logger *slog.Logger) []*order.Order {
	orders, err := archive.LoadOrders(ctx)
	if err != nil {
		logger.WarnContext(ctx, "persistence warning", "error", err, "component", "archive_restore")
		return nil
	}
	return orders
}
