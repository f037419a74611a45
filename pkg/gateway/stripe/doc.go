// Package stripe implements the gateway.Client contract on top of the
// official Stripe Go SDK. All requests run through an HTTP client with a
// bounded timeout so a slow gateway cannot stall the confirmation pipeline's
// retry budget.
package stripe
