package confirmation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/storekit/pkg/confirmation"
	"github.com/dmitrymomot/storekit/pkg/l10n"
	"github.com/dmitrymomot/storekit/pkg/order"
)

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tr, err := l10n.New()
	require.NoError(t, err)

	fullData := func() confirmation.EmailData {
		return confirmation.EmailData{
			OrderNumber:        1001,
			OrderDateFormatted: "30.08.2026",
			StatusText:         "Processing",
			IsPaid:             true,
			Shipping:           usableAddress("Liefer Str. 1"),
			Billing:            usableAddress("Rechnungs Str. 2"),
			AddressSource:      confirmation.SourceOrderNativeFields,
			AddressResolved:    true,
			Items: []confirmation.LineItemView{
				{
					DisplayName:        "Custom Mug",
					Quantity:           2,
					UnitPriceFormatted: "€14.99",
					TotalFormatted:     "€29.98",
					IsCustomProduct:    true,
					CustomAttributes:   []order.Attribute{{Label: "Color", Value: "Blue"}},
				},
			},
			SubtotalFormatted: "€25.20",
			ShippingFormatted: "€0.00",
			TaxFormatted:      "€4.78",
			TotalFormatted:    "€29.98",
			PaymentMethod:     "Visa ****4242",
			RecipientEmail:    "max@example.com",
			RecipientName:     "Max Mustermann",
		}
	}

	t.Run("full order body", func(t *testing.T) {
		t.Parallel()
		r, err := confirmation.NewHTMLRenderer(tr, language.English)
		require.NoError(t, err)

		html, text, err := r.Render(ctx, fullData())
		require.NoError(t, err)

		for _, body := range []string{html, text} {
			assert.Contains(t, body, "Hello Max Mustermann,")
			assert.Contains(t, body, "Your payment has been received.")
			assert.Contains(t, body, "#1001")
			assert.Contains(t, body, "Custom Mug")
			assert.Contains(t, body, "Color: Blue")
			assert.Contains(t, body, "Visa ****4242")
			assert.Contains(t, body, "Liefer Str. 1")
			assert.Contains(t, body, "Rechnungs Str. 2")
			assert.Contains(t, body, "10115 Berlin")
		}
		assert.Contains(t, html, "<strong>#1001</strong>")
		assert.NotContains(t, text, "<", "plaintext body carries no markup")
	})

	t.Run("unpaid order announces pending payment", func(t *testing.T) {
		t.Parallel()
		r, err := confirmation.NewHTMLRenderer(tr, language.English)
		require.NoError(t, err)

		data := fullData()
		data.IsPaid = false
		html, _, err := r.Render(ctx, data)
		require.NoError(t, err)
		assert.Contains(t, html, "We are waiting for your payment.")
		assert.NotContains(t, html, "Your payment has been received.")
	})

	t.Run("minimal body omits items and addresses", func(t *testing.T) {
		t.Parallel()
		r, err := confirmation.NewHTMLRenderer(tr, language.English)
		require.NoError(t, err)

		data := confirmation.EmailData{
			OrderNumber:    1002,
			TotalFormatted: "€29.99",
			RecipientEmail: "max@example.com",
			Minimal:        true,
		}
		html, text, err := r.Render(ctx, data)
		require.NoError(t, err)

		for _, body := range []string{html, text} {
			assert.Contains(t, body, "#1002")
			assert.Contains(t, body, "€29.99")
			assert.NotContains(t, body, "Shipping address")
		}
		assert.Contains(t, html, "We have received your order and will send the full details shortly.")
		// No recipient name known: the greeting falls back to the order number.
		assert.Contains(t, html, "Hello Order number #1002,")
	})

	t.Run("german copy", func(t *testing.T) {
		t.Parallel()
		r, err := confirmation.NewHTMLRenderer(tr, language.German)
		require.NoError(t, err)

		html, _, err := r.Render(ctx, fullData())
		require.NoError(t, err)
		assert.Contains(t, html, "Hallo Max Mustermann,")
		assert.Contains(t, html, "Lieferadresse")
		assert.Contains(t, html, "Rechnungsadresse")
	})

	t.Run("item names are escaped in html", func(t *testing.T) {
		t.Parallel()
		r, err := confirmation.NewHTMLRenderer(tr, language.English)
		require.NoError(t, err)

		data := fullData()
		data.Items[0].DisplayName = `Mug <script>alert("x")</script>`
		html, text, err := r.Render(ctx, data)
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, text, "<script>", "plaintext is delivered verbatim")
	})
}
