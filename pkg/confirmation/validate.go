package confirmation

import "strings"

// Field names reported by Validate.
const (
	FieldShippingAddress1 = "shipping.address_1"
	FieldBillingAddress1  = "billing.address_1"
	FieldItems            = "items"
	FieldPaymentMethod    = "payment_method"
	FieldTotalFormatted   = "total_formatted"
)

// Validate enforces the required-field contract over a collected EmailData.
// The check is purely structural: presence, not semantics. It returns whether
// the data is complete and the names of any missing fields.
func Validate(data EmailData) (bool, []string) {
	var missing []string

	if strings.TrimSpace(data.Shipping.Address1) == "" {
		missing = append(missing, FieldShippingAddress1)
	}
	if strings.TrimSpace(data.Billing.Address1) == "" {
		missing = append(missing, FieldBillingAddress1)
	}
	if len(data.Items) == 0 {
		missing = append(missing, FieldItems)
	}
	if strings.TrimSpace(data.PaymentMethod) == "" {
		missing = append(missing, FieldPaymentMethod)
	}
	if strings.TrimSpace(data.TotalFormatted) == "" {
		missing = append(missing, FieldTotalFormatted)
	}

	return len(missing) == 0, missing
}
