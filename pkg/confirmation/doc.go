// Package confirmation implements the order confirmation pipeline: it
// reconciles the shipping/billing addresses and payment details that several
// asynchronous upstream writers attach to an order, validates the merged
// result, and dispatches exactly one confirmation message per order.
//
// The pipeline tolerates upstream lag. Address snapshots are read
// from four sources in strict priority order (orchestrator email snapshot,
// orchestrator gateway snapshot, checkout session cache, the order's native
// fields); a bounded poll loop re-reads the order while the authoritative
// writer may still be in flight; and a persisted send-guard annotation makes
// repeated triggering by independent event sources harmless.
//
// Nothing in this package is fatal to the caller: collaborator failures
// degrade to generic labels or to a minimal confirmation containing only the
// order number and total, and only a failed dispatch reports failure so the
// surrounding event system can retry later.
//
// Typical wiring:
//
//	svc, err := confirmation.NewService(store, sender,
//	    confirmation.WithSessionCache(cache),
//	    confirmation.WithGatewayClient(gw),
//	    confirmation.WithLanguage(language.German),
//	)
//	if err != nil { ... }
//
//	// from an order-created event handler:
//	go svc.SendConfirmation(ctx, orderID)
package confirmation
