package confirmation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/storekit/pkg/l10n"
	"github.com/dmitrymomot/storekit/pkg/order"
)

// LineItemView is a line item prepared for rendering.
type LineItemView struct {
	DisplayName        string
	Quantity           int
	UnitPriceFormatted string
	TotalFormatted     string
	IsCustomProduct    bool
	CustomAttributes   []order.Attribute
}

// EmailData is the validated input for message rendering. It is assembled
// transiently per confirmation attempt and never persisted.
type EmailData struct {
	OrderNumber        int64
	OrderDateFormatted string
	StatusText         string
	IsPaid             bool

	Shipping        order.Address
	Billing         order.Address
	AddressSource   AddressSource
	AddressResolved bool

	Items []LineItemView

	SubtotalFormatted string
	ShippingFormatted string
	TaxFormatted      string
	TotalFormatted    string
	TaxTotal          decimal.Decimal
	ShippingTotal     decimal.Decimal

	PaymentMethod  string
	RecipientEmail string
	RecipientName  string

	// Minimal marks the fallback content block that carries only the order
	// number and total.
	Minimal bool
}

// defaultDateFormat renders order dates the way the storefront does.
const defaultDateFormat = "02.01.2006"

// currencySymbols covers the currencies the storefront sells in; anything
// else renders with its ISO code.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

type amountFormatter struct {
	printer *message.Printer
	symbol  string
}

func newAmountFormatter(lang language.Tag, currencyCode string) amountFormatter {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}
	return amountFormatter{printer: message.NewPrinter(lang), symbol: symbol}
}

func (f amountFormatter) Format(d decimal.Decimal) string {
	v, _ := d.Float64()
	return f.symbol + f.printer.Sprintf("%.2f", v)
}

// Collector assembles an EmailData from an order snapshot. Collection itself
// never fails; absent parts stay empty and the validator decides what that
// means downstream.
type Collector struct {
	addresses  *AddressResolver
	payments   *PaymentMethodResolver
	translator *l10n.Translator
	lang       language.Tag
	dateFormat string
	logger     *slog.Logger
}

// NewCollector creates a collector from its two resolvers. An empty
// dateFormat selects the default.
func NewCollector(addresses *AddressResolver, payments *PaymentMethodResolver, translator *l10n.Translator, lang language.Tag, dateFormat string, logger *slog.Logger) *Collector {
	if addresses == nil {
		panic("confirmation: AddressResolver is required")
	}
	if payments == nil {
		panic("confirmation: PaymentMethodResolver is required")
	}
	if translator == nil {
		translator = l10n.MustNew()
	}
	if dateFormat == "" {
		dateFormat = defaultDateFormat
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		addresses:  addresses,
		payments:   payments,
		translator: translator,
		lang:       lang,
		dateFormat: dateFormat,
		logger:     logger,
	}
}

// Collect gathers everything a confirmation needs from the order snapshot.
func (c *Collector) Collect(ctx context.Context, o *order.Order) EmailData {
	fmtr := newAmountFormatter(c.lang, o.Currency)

	data := EmailData{
		OrderNumber:        o.Number,
		OrderDateFormatted: o.CreatedAt.Format(c.dateFormat),
		StatusText:         c.translator.T(c.lang, "status."+string(o.Status)),
		IsPaid:             isPaid(o.Status),
		SubtotalFormatted:  fmtr.Format(o.Subtotal),
		ShippingFormatted:  fmtr.Format(o.ShippingTotal),
		TaxFormatted:       fmtr.Format(o.TaxTotal),
		TotalFormatted:     fmtr.Format(o.GrandTotal),
		TaxTotal:           o.TaxTotal,
		ShippingTotal:      o.ShippingTotal,
		PaymentMethod:      c.payments.Resolve(ctx, o),
	}

	if pair, found := c.addresses.Resolve(ctx, o); found {
		data.Shipping = pair.Shipping
		data.Billing = pair.Billing
		data.AddressSource = pair.Source
		data.AddressResolved = true
	}

	data.Items = make([]LineItemView, 0, len(o.Items))
	for _, item := range o.Items {
		data.Items = append(data.Items, LineItemView{
			DisplayName:        item.Name,
			Quantity:           item.Quantity,
			UnitPriceFormatted: fmtr.Format(item.UnitPrice),
			TotalFormatted:     fmtr.Format(item.Total),
			IsCustomProduct:    item.IsCustomProduct,
			CustomAttributes:   item.CustomAttributes,
		})
	}

	data.RecipientEmail = recipientEmail(o, data.Billing)
	data.RecipientName = recipientName(o, data.Billing, data.Shipping)

	return data
}

func isPaid(s order.Status) bool {
	return s == order.StatusProcessing || s == order.StatusCompleted
}

func recipientEmail(o *order.Order, billing order.Address) string {
	if billing.Email != "" {
		return billing.Email
	}
	if o.Billing.Email != "" {
		return o.Billing.Email
	}
	return o.CustomerEmail
}

func recipientName(o *order.Order, billing, shipping order.Address) string {
	if name := billing.FullName(); name != "" {
		return name
	}
	if name := shipping.FullName(); name != "" {
		return name
	}
	return o.Billing.FullName()
}
