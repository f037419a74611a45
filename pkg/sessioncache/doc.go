// Package sessioncache exposes the checkout session cache the confirmation
// pipeline reads address snapshots from. Entries are short-lived working
// copies written during checkout and expire shortly after, so a miss is the
// normal case once an order has left the checkout flow.
//
// Two implementations are provided: a Redis-backed cache for production and
// an in-memory cache for tests and development.
package sessioncache
