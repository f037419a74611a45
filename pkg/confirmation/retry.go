package confirmation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/storekit/pkg/order"
)

const (
	// DefaultMaxAttempts bounds the collection poll loop.
	DefaultMaxAttempts = 5
	// DefaultRetryDelay is the pause between poll attempts.
	DefaultRetryDelay = 2 * time.Second
)

// RetryCoordinator wraps collection in a bounded poll loop. Address
// orchestration is asynchronous relative to order creation, so the first
// collection may run before the authoritative writer has finished; polling
// trades a little latency for not needing a cross-process notification
// channel.
type RetryCoordinator struct {
	store       order.Store
	collector   *Collector
	maxAttempts int
	delay       time.Duration
	logger      *slog.Logger
}

// NewRetryCoordinator creates a retry coordinator. Non-positive maxAttempts
// or delay select the defaults.
func NewRetryCoordinator(store order.Store, collector *Collector, maxAttempts int, delay time.Duration, logger *slog.Logger) *RetryCoordinator {
	if store == nil {
		panic("confirmation: order store is required")
	}
	if collector == nil {
		panic("confirmation: collector is required")
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryCoordinator{
		store:       store,
		collector:   collector,
		maxAttempts: maxAttempts,
		delay:       delay,
		logger:      logger,
	}
}

// CollectWithRetry collects until both address lines are populated or the
// attempt budget is exhausted. Between attempts it re-reads the
// addresses-ready marker; while the marker is still false it sleeps before
// refetching a fresh order snapshot, because another process may still be
// writing. Context cancellation aborts the loop promptly. The last collected
// data is returned either way so the caller can fall back to partial content.
func (r *RetryCoordinator) CollectWithRetry(ctx context.Context, o *order.Order) (EmailData, bool) {
	var data EmailData

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		data = r.collector.Collect(ctx, o)
		if addressesComplete(data) {
			return data, true
		}
		if attempt == r.maxAttempts {
			break
		}

		r.logger.Debug("confirmation data incomplete, retrying",
			"order_id", o.ID, "attempt", attempt, "max_attempts", r.maxAttempts)

		if !o.BoolAnnotation(KeyAddressesReady) {
			select {
			case <-ctx.Done():
				r.logger.Info("collection aborted by context", "order_id", o.ID, "error", ctx.Err())
				return data, false
			case <-time.After(r.delay):
			}
		}

		fresh, err := r.store.Get(ctx, o.ID)
		if err != nil {
			r.logger.Warn("failed to refetch order snapshot", "order_id", o.ID, "error", err)
			continue
		}
		o = fresh
	}

	r.logger.Warn("confirmation data still incomplete after retries",
		"order_id", o.ID, "attempts", r.maxAttempts)
	return data, false
}

func addressesComplete(data EmailData) bool {
	return strings.TrimSpace(data.Shipping.Address1) != "" &&
		strings.TrimSpace(data.Billing.Address1) != ""
}
