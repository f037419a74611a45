package confirmation

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/storekit/pkg/order"
	"github.com/dmitrymomot/storekit/pkg/sessioncache"
)

// AddressSource identifies where a resolved address pair came from. The
// declaration order is the resolution priority: the orchestrator sources are
// purpose-built, validated snapshots for messaging, while native order fields
// may carry partially-filled defaults from an abandoned flow.
type AddressSource int

const (
	SourceOrchestratorEmailTemplate AddressSource = iota
	SourceOrchestratorGateway
	SourceSessionCache
	SourceOrderNativeFields
)

// addressSources lists all sources in resolution priority order.
var addressSources = [...]AddressSource{
	SourceOrchestratorEmailTemplate,
	SourceOrchestratorGateway,
	SourceSessionCache,
	SourceOrderNativeFields,
}

func (s AddressSource) String() string {
	switch s {
	case SourceOrchestratorEmailTemplate:
		return "orchestrator_email_template"
	case SourceOrchestratorGateway:
		return "orchestrator_gateway"
	case SourceSessionCache:
		return "session_cache"
	case SourceOrderNativeFields:
		return "order_native_fields"
	default:
		return "unknown"
	}
}

// AddressSnapshot is the strongly-typed value each upstream writer produces.
// BillingDiffers is explicit per snapshot: a writer that cannot know reports
// false, in which case billing mirrors shipping.
type AddressSnapshot struct {
	Shipping       order.Address `json:"shipping"`
	Billing        order.Address `json:"billing"`
	BillingDiffers bool          `json:"billing_differs"`
}

// ResolvedAddressPair is the outcome of address resolution. Shipping is
// always usable when the pair was found.
type ResolvedAddressPair struct {
	Shipping order.Address
	Billing  order.Address
	Source   AddressSource
}

// AddressResolver selects the best available address pair across the four
// sources. The session cache is optional; a nil cache simply skips that
// source.
type AddressResolver struct {
	session sessioncache.Cache
	logger  *slog.Logger
}

// NewAddressResolver creates an address resolver. session may be nil when the
// deployment has no checkout session cache.
func NewAddressResolver(session sessioncache.Cache, logger *slog.Logger) *AddressResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressResolver{session: session, logger: logger}
}

// Resolve walks the sources in priority order and returns the first
// acceptable pair. The orchestrator email snapshot is only accepted when both
// addresses are independently usable and the order is marked addresses-ready;
// every other source is accepted on a usable shipping address, with billing
// falling back to that source's billing view or to shipping when the snapshot
// records no distinct billing address.
func (r *AddressResolver) Resolve(ctx context.Context, o *order.Order) (ResolvedAddressPair, bool) {
	for _, src := range addressSources {
		snap, ok := r.snapshot(ctx, src, o)
		if !ok {
			continue
		}

		if src == SourceOrchestratorEmailTemplate {
			if !snap.Shipping.Usable() || !snap.Billing.Usable() || !o.BoolAnnotation(KeyAddressesReady) {
				continue
			}
			return ResolvedAddressPair{Shipping: snap.Shipping, Billing: snap.Billing, Source: src}, true
		}

		if !snap.Shipping.Usable() {
			continue
		}
		billing := snap.Shipping
		if snap.BillingDiffers && !snap.Billing.IsZero() {
			billing = snap.Billing
		} else if billing.Email == "" {
			// A mirrored billing address must not lose the billing email.
			billing.Email = snap.Billing.Email
		}
		return ResolvedAddressPair{Shipping: snap.Shipping, Billing: billing, Source: src}, true
	}

	return ResolvedAddressPair{}, false
}

func (r *AddressResolver) snapshot(ctx context.Context, src AddressSource, o *order.Order) (AddressSnapshot, bool) {
	switch src {
	case SourceOrchestratorEmailTemplate:
		return r.annotationSnapshot(o, KeyEmailAddressSnapshot)
	case SourceOrchestratorGateway:
		return r.annotationSnapshot(o, KeyGatewayAddressSnapshot)
	case SourceSessionCache:
		return r.sessionSnapshot(ctx, o)
	case SourceOrderNativeFields:
		return AddressSnapshot{
			Shipping:       o.Shipping,
			Billing:        o.Billing,
			BillingDiffers: o.BoolAnnotation(KeyBillingDiffers),
		}, true
	default:
		return AddressSnapshot{}, false
	}
}

func (r *AddressResolver) annotationSnapshot(o *order.Order, key string) (AddressSnapshot, bool) {
	raw, ok := o.Annotation(key)
	if !ok || raw == "" {
		return AddressSnapshot{}, false
	}
	var snap AddressSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		r.logger.Warn("malformed address snapshot annotation",
			"order_id", o.ID, "key", key, "error", err)
		return AddressSnapshot{}, false
	}
	return snap, true
}

func (r *AddressResolver) sessionSnapshot(ctx context.Context, o *order.Order) (AddressSnapshot, bool) {
	if r.session == nil {
		return AddressSnapshot{}, false
	}
	raw, err := r.session.Get(ctx, SessionSnapshotKey(o.ID))
	if err != nil {
		if !errors.Is(err, sessioncache.ErrNotFound) {
			r.logger.Warn("session cache read failed", "order_id", o.ID, "error", err)
		}
		return AddressSnapshot{}, false
	}
	var snap AddressSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		r.logger.Warn("malformed session address snapshot", "order_id", o.ID, "error", err)
		return AddressSnapshot{}, false
	}
	return snap, true
}
