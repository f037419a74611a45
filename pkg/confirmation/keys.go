package confirmation

// Annotation keys on the order record. Only KeyConfirmationSent is written by
// this package; the rest are written by upstream checkout and gateway
// processes and read here.
const (
	// KeyConfirmationSent is the send-guard flag: set to "1" exactly once
	// after a confirmed successful dispatch, never reset.
	KeyConfirmationSent = "confirmation_sent"

	// KeyAddressesReady marks the orchestrator's email snapshot as complete.
	KeyAddressesReady = "addresses_ready"

	// KeyEmailAddressSnapshot holds the orchestrator's messaging-ready
	// address snapshot as JSON.
	KeyEmailAddressSnapshot = "email_address_snapshot"

	// KeyGatewayAddressSnapshot holds the payment gateway's address snapshot
	// as JSON.
	KeyGatewayAddressSnapshot = "gateway_address_snapshot"

	// KeyGatewayPaymentMethod holds the gateway payment method token stored
	// at checkout, when the integration recorded one.
	KeyGatewayPaymentMethod = "gateway_payment_method"

	// KeyBillingDiffers marks that the customer entered a billing address
	// distinct from the shipping address.
	KeyBillingDiffers = "billing_differs"
)

// SessionSnapshotKey returns the session cache key under which the checkout
// flow stores its working address snapshot for an order.
func SessionSnapshotKey(orderID string) string {
	return "address_snapshot:" + orderID
}
