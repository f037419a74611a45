package confirmation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/storekit/pkg/confirmation"
	"github.com/dmitrymomot/storekit/pkg/gateway"
	"github.com/dmitrymomot/storekit/pkg/order"
)

func TestPaymentMethodResolver(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newResolver := func(client gateway.Client) *confirmation.PaymentMethodResolver {
		return confirmation.NewPaymentMethodResolver(client, nil, "", discardLogger())
	}

	t.Run("non-gateway orders keep stored title verbatim", func(t *testing.T) {
		t.Parallel()
		client := new(MockGatewayClient)
		r := newResolver(client)

		o := &order.Order{PaymentMethodID: "bank_transfer", PaymentMethodTitle: "Vorkasse"}
		assert.Equal(t, "Vorkasse", r.Resolve(ctx, o))
		client.AssertNotCalled(t, "FetchPaymentMethod", mock.Anything, mock.Anything)
	})

	t.Run("stored token resolves card details", func(t *testing.T) {
		t.Parallel()
		client := new(MockGatewayClient)
		client.On("FetchPaymentMethod", mock.Anything, "pm_stored123").Return(&gateway.PaymentMethod{
			Token: "pm_stored123",
			Type:  gateway.MethodCard,
			Card:  &gateway.Card{Brand: "visa", Last4: "4242"},
		}, nil)

		r := newResolver(client)
		o := &order.Order{PaymentMethodID: "stripe"}
		o.SetAnnotation(confirmation.KeyGatewayPaymentMethod, "pm_stored123")

		assert.Equal(t, "Visa ****4242", r.Resolve(ctx, o))
		client.AssertNotCalled(t, "FetchIntent", mock.Anything, mock.Anything)
	})

	t.Run("transaction id already a method token", func(t *testing.T) {
		t.Parallel()
		client := new(MockGatewayClient)
		client.On("FetchPaymentMethod", mock.Anything, "pm_fromtx").Return(&gateway.PaymentMethod{
			Token: "pm_fromtx",
			Type:  gateway.MethodSEPADebit,
			SEPA:  &gateway.SEPADebit{Last4: "3000"},
		}, nil)

		r := newResolver(client)
		o := &order.Order{PaymentMethodID: "stripe_sepa", TransactionID: "pm_fromtx"}

		assert.Equal(t, "SEPA-Lastschrift ****3000", r.Resolve(ctx, o))
		client.AssertNotCalled(t, "FetchIntent", mock.Anything, mock.Anything)
	})

	t.Run("intent shaped transaction id goes through intent fetch", func(t *testing.T) {
		t.Parallel()
		client := new(MockGatewayClient)
		client.On("FetchIntent", mock.Anything, "pi_abc123").Return(&gateway.Intent{
			ID:                 "pi_abc123",
			Status:             "succeeded",
			PaymentMethodToken: "pm_viaintent",
		}, nil)
		client.On("FetchPaymentMethod", mock.Anything, "pm_viaintent").Return(&gateway.PaymentMethod{
			Token: "pm_viaintent",
			Type:  gateway.MethodCard,
			Card:  &gateway.Card{Brand: "mastercard", Last4: "4444"},
		}, nil)

		r := newResolver(client)
		o := &order.Order{PaymentMethodID: "stripe", TransactionID: "pi_abc123"}

		assert.Equal(t, "Mastercard ****4444", r.Resolve(ctx, o))
		client.AssertExpectations(t)
	})

	t.Run("intent fetch error degrades to fallback label", func(t *testing.T) {
		t.Parallel()
		client := new(MockGatewayClient)
		client.On("FetchIntent", mock.Anything, "pi_down").Return(nil, errors.New("gateway unavailable"))

		r := newResolver(client)
		o := &order.Order{PaymentMethodID: "stripe", TransactionID: "pi_down"}

		assert.Equal(t, confirmation.DefaultPaymentFallbackLabel, r.Resolve(ctx, o))
	})

	t.Run("method fetch error degrades to fallback label", func(t *testing.T) {
		t.Parallel()
		client := new(MockGatewayClient)
		client.On("FetchPaymentMethod", mock.Anything, "pm_down").Return(nil, errors.New("gateway unavailable"))

		r := newResolver(client)
		o := &order.Order{PaymentMethodID: "stripe", TransactionID: "pm_down"}

		assert.Equal(t, confirmation.DefaultPaymentFallbackLabel, r.Resolve(ctx, o))
	})

	t.Run("no recoverable token", func(t *testing.T) {
		t.Parallel()
		r := newResolver(new(MockGatewayClient))
		o := &order.Order{PaymentMethodID: "stripe", TransactionID: "ch_charge_shape"}

		assert.Equal(t, confirmation.DefaultPaymentFallbackLabel, r.Resolve(ctx, o))
	})

	t.Run("nil client", func(t *testing.T) {
		t.Parallel()
		r := newResolver(nil)
		o := &order.Order{PaymentMethodID: "stripe", TransactionID: "pm_whatever1"}

		assert.Equal(t, confirmation.DefaultPaymentFallbackLabel, r.Resolve(ctx, o))
	})

	t.Run("unknown method type", func(t *testing.T) {
		t.Parallel()
		client := new(MockGatewayClient)
		client.On("FetchPaymentMethod", mock.Anything, "pm_giropay1").Return(&gateway.PaymentMethod{
			Token: "pm_giropay1",
			Type:  gateway.MethodType("giropay"),
		}, nil)

		r := newResolver(client)
		o := &order.Order{PaymentMethodID: "stripe", TransactionID: "pm_giropay1"}

		assert.Equal(t, confirmation.DefaultPaymentFallbackLabel, r.Resolve(ctx, o))
	})

	t.Run("uncommon brand is title cased", func(t *testing.T) {
		t.Parallel()
		client := new(MockGatewayClient)
		client.On("FetchPaymentMethod", mock.Anything, "pm_exotic11").Return(&gateway.PaymentMethod{
			Token: "pm_exotic11",
			Type:  gateway.MethodCard,
			Card:  &gateway.Card{Brand: "cartes_bancaires", Last4: "1234"},
		}, nil)

		r := newResolver(client)
		o := &order.Order{PaymentMethodID: "stripe", TransactionID: "pm_exotic11"}

		got := r.Resolve(ctx, o)
		assert.Contains(t, got, "****1234")
	})

	t.Run("custom fallback label", func(t *testing.T) {
		t.Parallel()
		r := confirmation.NewPaymentMethodResolver(nil, nil, "Kreditkarte", discardLogger())
		o := &order.Order{PaymentMethodID: "stripe"}

		assert.Equal(t, "Kreditkarte", r.Resolve(ctx, o))
	})
}
