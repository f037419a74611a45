// Package gateway defines the payment gateway contract the confirmation
// pipeline uses to enrich a confirmation with a human-readable payment method
// descriptor. The gateway is a best-effort collaborator: callers must treat
// every error as a cue to degrade to a generic label, never as a failure of
// the confirmation itself.
//
// The Client interface mirrors the two lookups the pipeline needs: fetch a
// payment intent to recover the payment method token it settled with, and
// fetch the payment method details behind a token. A Stripe-backed
// implementation lives in the stripe subpackage.
package gateway
