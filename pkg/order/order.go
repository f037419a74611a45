package order

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the storefront order lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusOnHold     Status = "on-hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
	StatusFailed     Status = "failed"
)

// Attribute is an ordered label/value pair describing a custom product
// configuration chosen by the customer.
type Attribute struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LineItem is a single purchased position on an order.
type LineItem struct {
	Name             string          `json:"name"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Total            decimal.Decimal `json:"total"`
	IsCustomProduct  bool            `json:"is_custom_product,omitempty"`
	CustomAttributes []Attribute     `json:"custom_attributes,omitempty"`
}

// Order is a storefront order record. The confirmation pipeline reads it and,
// for the send guard, writes a single annotation key; everything else is owned
// by external writers.
type Order struct {
	ID                 string
	Number             int64
	Status             Status
	Currency           string
	Subtotal           decimal.Decimal
	TaxTotal           decimal.Decimal
	ShippingTotal      decimal.Decimal
	GrandTotal         decimal.Decimal
	Items              []LineItem
	Billing            Address
	Shipping           Address
	PaymentMethodID    string
	PaymentMethodTitle string
	TransactionID      string
	CustomerEmail      string
	Annotations        map[string]string
	CreatedAt          time.Time
}

// Annotation returns the value stored under key and whether it is present.
func (o *Order) Annotation(key string) (string, bool) {
	if o.Annotations == nil {
		return "", false
	}
	v, ok := o.Annotations[key]
	return v, ok
}

// SetAnnotation stores value under key, allocating the map on first write.
func (o *Order) SetAnnotation(key, value string) {
	if o.Annotations == nil {
		o.Annotations = make(map[string]string)
	}
	o.Annotations[key] = value
}

// BoolAnnotation interprets the annotation under key as a boolean flag.
// Absent keys and unrecognized values read as false.
func (o *Order) BoolAnnotation(key string) bool {
	v, ok := o.Annotation(key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the order so callers can mutate annotations and
// items without affecting the source record.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	if o.Items != nil {
		cp.Items = make([]LineItem, len(o.Items))
		copy(cp.Items, o.Items)
		for i, item := range o.Items {
			if item.CustomAttributes != nil {
				attrs := make([]Attribute, len(item.CustomAttributes))
				copy(attrs, item.CustomAttributes)
				cp.Items[i].CustomAttributes = attrs
			}
		}
	}
	if o.Annotations != nil {
		cp.Annotations = make(map[string]string, len(o.Annotations))
		for k, v := range o.Annotations {
			cp.Annotations[k] = v
		}
	}
	return &cp
}

// Store is the order persistence contract the confirmation pipeline depends
// on. Get must return a fresh snapshot on every call because concurrent
// writers may still be annotating the record.
type Store interface {
	Get(ctx context.Context, id string) (*Order, error)
	Save(ctx context.Context, o *Order) error
}
