package confirmation

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/storekit/pkg/l10n"
	"github.com/dmitrymomot/storekit/pkg/mailer"
	"github.com/dmitrymomot/storekit/pkg/order"
)

// messageTag marks confirmation messages in provider-side analytics.
const messageTag = "order-confirmation"

// Service composes the pipeline: send guard, retrying collector, validator,
// renderer, and dispatch transport.
type Service struct {
	store      order.Store
	sender     mailer.Sender
	guard      *SendGuard
	retry      *RetryCoordinator
	renderer   TemplateRenderer
	translator *l10n.Translator
	lang       language.Tag
	dateFormat string
	logger     *slog.Logger
}

// NewService creates the confirmation pipeline. The order store and the
// dispatch transport are required; everything else has working defaults and
// is wired through options. Panics on missing required dependencies to fail
// fast during initialization.
func NewService(store order.Store, sender mailer.Sender, opts ...Option) (*Service, error) {
	if store == nil {
		panic("confirmation: order store is required")
	}
	if sender == nil {
		panic("confirmation: mail sender is required")
	}

	s := &settings{
		lang:        language.English,
		logger:      slog.Default(),
		maxAttempts: DefaultMaxAttempts,
		delay:       DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.translator == nil {
		tr, err := l10n.New()
		if err != nil {
			return nil, fmt.Errorf("load translation catalogs: %w", err)
		}
		s.translator = tr
	}
	if s.renderer == nil {
		r, err := NewHTMLRenderer(s.translator, s.lang)
		if err != nil {
			return nil, fmt.Errorf("build default renderer: %w", err)
		}
		s.renderer = r
	}

	if s.dateFormat == "" {
		s.dateFormat = defaultDateFormat
	}

	addresses := NewAddressResolver(s.session, s.logger)
	payments := NewPaymentMethodResolver(s.client, s.methodIDs, s.fallbackLabel, s.logger)
	collector := NewCollector(addresses, payments, s.translator, s.lang, s.dateFormat, s.logger)

	return &Service{
		store:      store,
		sender:     sender,
		guard:      NewSendGuard(store, s.logger),
		retry:      NewRetryCoordinator(store, collector, s.maxAttempts, s.delay, s.logger),
		renderer:   s.renderer,
		translator: s.translator,
		lang:       s.lang,
		dateFormat: s.dateFormat,
		logger:     s.logger,
	}, nil
}

// SendConfirmation resolves, validates, renders, and dispatches the
// confirmation for an order. It reports true when the order ends up in the
// sent state, including when a previous invocation already sent it; false
// only when dispatch failed and a later retry can still succeed. It is safe
// to invoke repeatedly and from concurrent triggers.
func (s *Service) SendConfirmation(ctx context.Context, orderID string) bool {
	o, err := s.store.Get(ctx, orderID)
	if err != nil {
		s.logger.Error("failed to load order for confirmation", "order_id", orderID, "error", err)
		return false
	}

	if !s.guard.ShouldSend(o) {
		s.logger.Info("confirmation already sent, skipping", "order_id", o.ID)
		return true
	}

	data, ok := s.retry.CollectWithRetry(ctx, o)
	if !ok {
		data = s.minimalData(o)
	} else if valid, missing := Validate(data); !valid {
		s.logger.Warn("collected confirmation data failed validation, falling back to minimal content",
			"order_id", o.ID, "missing_fields", missing)
		data = s.minimalData(o)
	}

	if data.RecipientEmail == "" {
		s.logger.Error("order has no recipient email, cannot dispatch confirmation", "order_id", o.ID)
		return false
	}

	html, text, err := s.renderer.Render(ctx, data)
	if err != nil {
		s.logger.Error("failed to render confirmation", "order_id", o.ID, "error", err)
		// The customer still gets a message: retry rendering with the
		// minimal content block before giving up.
		if data.Minimal {
			return false
		}
		data = s.minimalData(o)
		if html, text, err = s.renderer.Render(ctx, data); err != nil {
			s.logger.Error("failed to render minimal confirmation", "order_id", o.ID, "error", err)
			return false
		}
	}

	msg := mailer.Message{
		To:       data.RecipientEmail,
		Subject:  s.translator.T(s.lang, "email.subject", data.OrderNumber),
		BodyHTML: html,
		BodyText: text,
		Tag:      messageTag,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("confirmation dispatch failed", "order_id", o.ID, "error", err)
		return false
	}

	// Guard persistence failure after a successful dispatch is logged but not
	// reported as failure: the message is out, and a later duplicate is the
	// lesser harm than never confirming.
	if err := s.guard.MarkSent(ctx, o); err == nil {
		s.logger.Info("confirmation sent", "order_id", o.ID, "order_number", data.OrderNumber,
			"address_source", data.AddressSource.String(), "minimal", data.Minimal)
	}
	return true
}

// minimalData builds the fallback content block: order number and total,
// still a valid customer-visible message.
func (s *Service) minimalData(o *order.Order) EmailData {
	fmtr := newAmountFormatter(s.lang, o.Currency)
	return EmailData{
		OrderNumber:        o.Number,
		OrderDateFormatted: o.CreatedAt.Format(s.dateFormat),
		TotalFormatted:     fmtr.Format(o.GrandTotal),
		RecipientEmail:     recipientEmail(o, o.Billing),
		RecipientName:      recipientName(o, o.Billing, o.Shipping),
		Minimal:            true,
	}
}
