package confirmation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/storekit/pkg/gateway"
	"github.com/dmitrymomot/storekit/pkg/order"
)

// DefaultPaymentFallbackLabel is shown when the gateway cannot be consulted
// or reports a method type the pipeline does not render specially.
const DefaultPaymentFallbackLabel = "Card payment"

// defaultGatewayMethodIDs are the storefront payment method identifiers that
// route through the gateway and therefore qualify for token resolution.
var defaultGatewayMethodIDs = []string{"stripe", "stripe_sepa"}

// cardBrands maps gateway brand codes to display names. Brands not listed
// here are title-cased as-is.
var cardBrands = map[string]string{
	"visa":             "Visa",
	"mastercard":       "Mastercard",
	"amex":             "American Express",
	"american_express": "American Express",
	"diners":           "Diners Club",
	"discover":         "Discover",
	"jcb":              "JCB",
	"unionpay":         "UnionPay",
	"maestro":          "Maestro",
}

var brandTitle = cases.Title(language.Und)

// PaymentMethodResolver resolves a human-readable payment descriptor for an
// order. This is best-effort enrichment: every gateway failure degrades to
// the fallback label and is never surfaced to the caller.
type PaymentMethodResolver struct {
	client         gateway.Client
	gatewayMethods map[string]struct{}
	fallbackLabel  string
	logger         *slog.Logger
}

// NewPaymentMethodResolver creates a payment method resolver. client may be
// nil, in which case any order that would need a gateway lookup gets the
// fallback label. Empty methodIDs and fallbackLabel select the defaults.
func NewPaymentMethodResolver(client gateway.Client, methodIDs []string, fallbackLabel string, logger *slog.Logger) *PaymentMethodResolver {
	if len(methodIDs) == 0 {
		methodIDs = defaultGatewayMethodIDs
	}
	if fallbackLabel == "" {
		fallbackLabel = DefaultPaymentFallbackLabel
	}
	if logger == nil {
		logger = slog.Default()
	}

	methods := make(map[string]struct{}, len(methodIDs))
	for _, id := range methodIDs {
		methods[id] = struct{}{}
	}
	return &PaymentMethodResolver{
		client:         client,
		gatewayMethods: methods,
		fallbackLabel:  fallbackLabel,
		logger:         logger,
	}
}

// Resolve returns the payment method display string for the order. Orders
// paid outside the gateway keep their stored payment method title verbatim.
func (r *PaymentMethodResolver) Resolve(ctx context.Context, o *order.Order) string {
	if _, ok := r.gatewayMethods[o.PaymentMethodID]; !ok {
		return o.PaymentMethodTitle
	}

	token := r.recoverToken(ctx, o)
	if token == "" || r.client == nil {
		return r.fallbackLabel
	}

	pm, err := r.client.FetchPaymentMethod(ctx, token)
	if err != nil {
		r.logger.Warn("payment method lookup failed",
			"order_id", o.ID, "token", token, "error", err)
		return r.fallbackLabel
	}
	return r.format(pm)
}

// recoverToken works through the identifier-recovery chain: the stored token
// annotation first, then the transaction ID if it already is a method token,
// finally an intent fetch when the transaction ID is an intent. Each step is
// attempted only when the prior yields nothing.
func (r *PaymentMethodResolver) recoverToken(ctx context.Context, o *order.Order) string {
	if token, ok := o.Annotation(KeyGatewayPaymentMethod); ok && token != "" {
		return token
	}

	txn := o.TransactionID
	if gateway.IsPaymentMethodToken(txn) {
		return txn
	}

	if gateway.IsPaymentIntentID(txn) {
		if r.client == nil {
			return ""
		}
		intent, err := r.client.FetchIntent(ctx, txn)
		if err != nil {
			r.logger.Warn("payment intent lookup failed",
				"order_id", o.ID, "intent_id", txn, "error", err)
			return ""
		}
		return intent.PaymentMethodToken
	}

	return ""
}

func (r *PaymentMethodResolver) format(pm *gateway.PaymentMethod) string {
	switch pm.Type {
	case gateway.MethodCard:
		if pm.Card != nil && pm.Card.Last4 != "" {
			return fmt.Sprintf("%s ****%s", displayBrand(pm.Card.Brand), pm.Card.Last4)
		}
	case gateway.MethodSEPADebit:
		if pm.SEPA != nil && pm.SEPA.Last4 != "" {
			return "SEPA-Lastschrift ****" + pm.SEPA.Last4
		}
	}
	return r.fallbackLabel
}

func displayBrand(brand string) string {
	if name, ok := cardBrands[strings.ToLower(brand)]; ok {
		return name
	}
	return brandTitle.String(brand)
}
