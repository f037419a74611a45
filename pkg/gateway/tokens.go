package gateway

import "regexp"

// Transaction identifiers written by upstream checkout flows come in two
// shapes: payment method tokens (pm_…, plus legacy src_… sources) that can be
// used for a method lookup directly, and payment intent IDs (pi_…) that need
// an intent fetch first.
var (
	paymentMethodTokenRe = regexp.MustCompile(`^(pm|src)_[A-Za-z0-9]+$`)
	paymentIntentIDRe    = regexp.MustCompile(`^pi_[A-Za-z0-9]+$`)
)

// IsPaymentMethodToken reports whether s looks like a payment method token.
func IsPaymentMethodToken(s string) bool {
	return paymentMethodTokenRe.MatchString(s)
}

// IsPaymentIntentID reports whether s looks like a payment intent identifier.
func IsPaymentIntentID(s string) bool {
	return paymentIntentIDRe.MatchString(s)
}
