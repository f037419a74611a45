package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storekit/pkg/order"
)

// Store implements order.Store on top of a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a PostgreSQL-backed order store.
func NewStore(pool *pgxpool.Pool) *Store {
	if pool == nil {
		panic("postgres: connection pool is required")
	}
	return &Store{pool: pool}
}

const selectOrder = `
SELECT id, number, status, currency,
       subtotal::text, tax_total::text, shipping_total::text, grand_total::text,
       items, billing, shipping,
       payment_method_id, payment_method_title, transaction_id, customer_email,
       annotations, created_at
FROM orders
WHERE id = $1`

// Get returns a fresh snapshot of the order or order.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*order.Order, error) {
	row := s.pool.QueryRow(ctx, selectOrder, id)

	var (
		o                                              order.Order
		subtotal, taxTotal, shippingTotal, grandTotal  string
		itemsJSON, billingJSON, shippingJSON, annoJSON []byte
		createdAt                                      time.Time
	)
	err := row.Scan(
		&o.ID, &o.Number, &o.Status, &o.Currency,
		&subtotal, &taxTotal, &shippingTotal, &grandTotal,
		&itemsJSON, &billingJSON, &shippingJSON,
		&o.PaymentMethodID, &o.PaymentMethodTitle, &o.TransactionID, &o.CustomerEmail,
		&annoJSON, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("select order %s: %w", id, err)
	}
	o.CreatedAt = createdAt

	for _, col := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{subtotal, &o.Subtotal},
		{taxTotal, &o.TaxTotal},
		{shippingTotal, &o.ShippingTotal},
		{grandTotal, &o.GrandTotal},
	} {
		d, err := decimal.NewFromString(col.raw)
		if err != nil {
			return nil, fmt.Errorf("parse money column for order %s: %w", id, err)
		}
		*col.dst = d
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items for order %s: %w", id, err)
	}
	if err := json.Unmarshal(billingJSON, &o.Billing); err != nil {
		return nil, fmt.Errorf("decode billing address for order %s: %w", id, err)
	}
	if err := json.Unmarshal(shippingJSON, &o.Shipping); err != nil {
		return nil, fmt.Errorf("decode shipping address for order %s: %w", id, err)
	}
	if err := json.Unmarshal(annoJSON, &o.Annotations); err != nil {
		return nil, fmt.Errorf("decode annotations for order %s: %w", id, err)
	}

	return &o, nil
}

const upsertOrder = `
INSERT INTO orders (
    id, number, status, currency,
    subtotal, tax_total, shipping_total, grand_total,
    items, billing, shipping,
    payment_method_id, payment_method_title, transaction_id, customer_email,
    annotations, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (id) DO UPDATE SET
    status = EXCLUDED.status,
    currency = EXCLUDED.currency,
    subtotal = EXCLUDED.subtotal,
    tax_total = EXCLUDED.tax_total,
    shipping_total = EXCLUDED.shipping_total,
    grand_total = EXCLUDED.grand_total,
    items = EXCLUDED.items,
    billing = EXCLUDED.billing,
    shipping = EXCLUDED.shipping,
    payment_method_id = EXCLUDED.payment_method_id,
    payment_method_title = EXCLUDED.payment_method_title,
    transaction_id = EXCLUDED.transaction_id,
    customer_email = EXCLUDED.customer_email,
    annotations = EXCLUDED.annotations`

// Save upserts the full order record. Orders without an ID get a generated
// one so storefront writers can create records through the same path.
func (s *Store) Save(ctx context.Context, o *order.Order) error {
	if o == nil {
		return order.ErrInvalidOrder
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items for order %s: %w", o.ID, err)
	}
	billingJSON, err := json.Marshal(o.Billing)
	if err != nil {
		return fmt.Errorf("encode billing address for order %s: %w", o.ID, err)
	}
	shippingJSON, err := json.Marshal(o.Shipping)
	if err != nil {
		return fmt.Errorf("encode shipping address for order %s: %w", o.ID, err)
	}
	annotations := o.Annotations
	if annotations == nil {
		annotations = map[string]string{}
	}
	annoJSON, err := json.Marshal(annotations)
	if err != nil {
		return fmt.Errorf("encode annotations for order %s: %w", o.ID, err)
	}

	_, err = s.pool.Exec(ctx, upsertOrder,
		o.ID, o.Number, o.Status, o.Currency,
		o.Subtotal.StringFixed(2), o.TaxTotal.StringFixed(2),
		o.ShippingTotal.StringFixed(2), o.GrandTotal.StringFixed(2),
		itemsJSON, billingJSON, shippingJSON,
		o.PaymentMethodID, o.PaymentMethodTitle, o.TransactionID, o.CustomerEmail,
		annoJSON, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert order %s: %w", o.ID, err)
	}
	return nil
}
