package confirmation

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/storekit/pkg/order"
)

// SendGuard is the idempotency check/set around confirmation dispatch. The
// flag is read immediately before a send attempt and written immediately
// after a confirmed successful dispatch; there is no cross-process lock, so
// the guard minimizes rather than eliminates the duplicate-send race.
type SendGuard struct {
	store  order.Store
	key    string
	logger *slog.Logger
}

// NewSendGuard creates a send guard persisting under KeyConfirmationSent.
func NewSendGuard(store order.Store, logger *slog.Logger) *SendGuard {
	if store == nil {
		panic("confirmation: order store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SendGuard{store: store, key: KeyConfirmationSent, logger: logger}
}

// ShouldSend reports whether the order has not yet received a confirmation.
func (g *SendGuard) ShouldSend(o *order.Order) bool {
	return !o.BoolAnnotation(g.key)
}

// MarkSent sets the flag and persists the order. The flag is never reset.
// Persistence goes through a fresh snapshot when one can be read, so that
// annotations written by other processes since the caller's read survive the
// upsert.
func (g *SendGuard) MarkSent(ctx context.Context, o *order.Order) error {
	o.SetAnnotation(g.key, "1")
	rec := o
	if fresh, err := g.store.Get(ctx, o.ID); err == nil {
		fresh.SetAnnotation(g.key, "1")
		rec = fresh
	}
	if err := g.store.Save(ctx, rec); err != nil {
		g.logger.Error("failed to persist send-guard flag", "order_id", o.ID, "error", err)
		return err
	}
	return nil
}
