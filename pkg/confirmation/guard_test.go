package confirmation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/confirmation"
	"github.com/dmitrymomot/storekit/pkg/order"
)

func TestSendGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unsent order should send", func(t *testing.T) {
		t.Parallel()
		g := confirmation.NewSendGuard(order.NewMemoryStore(), discardLogger())
		assert.True(t, g.ShouldSend(&order.Order{ID: "ord_1"}))
	})

	t.Run("mark sent then should send is false", func(t *testing.T) {
		t.Parallel()
		store := order.NewMemoryStore()
		o := &order.Order{ID: "ord_1"}
		require.NoError(t, store.Save(ctx, o))

		g := confirmation.NewSendGuard(store, discardLogger())
		require.NoError(t, g.MarkSent(ctx, o))
		assert.False(t, g.ShouldSend(o))

		// The flag must also be visible on a fresh snapshot.
		fresh, err := store.Get(ctx, "ord_1")
		require.NoError(t, err)
		assert.False(t, g.ShouldSend(fresh))
		assert.True(t, fresh.BoolAnnotation(confirmation.KeyConfirmationSent))
	})

	t.Run("persistence failure is reported", func(t *testing.T) {
		t.Parallel()
		g := confirmation.NewSendGuard(order.NewMemoryStore(), discardLogger())
		o := &order.Order{} // no ID, memory store rejects it
		assert.Error(t, g.MarkSent(ctx, o))
	})
}
