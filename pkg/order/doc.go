// Package order defines the storefront order data model shared by the
// confirmation pipeline and its storage backends.
//
// An Order is a read-mostly record owned by the storefront: identity, status,
// totals, line items, the customer's native billing/shipping addresses, and a
// persisted string-keyed annotation store that independent writers (checkout
// orchestrator, payment gateway webhooks, the confirmation pipeline itself)
// attach entries to.
//
// The package ships a Store contract plus an in-memory implementation used in
// tests and development. A PostgreSQL-backed implementation lives in the
// postgres subpackage.
package order
