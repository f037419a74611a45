package gateway

import "context"

// MethodType is the payment instrument category reported by the gateway.
type MethodType string

const (
	MethodCard      MethodType = "card"
	MethodSEPADebit MethodType = "sepa_debit"
)

// Intent is a payment intent snapshot. PaymentMethodToken is the token of the
// method the intent settled with, empty if the gateway did not report one.
type Intent struct {
	ID                 string
	Status             string
	PaymentMethodToken string
}

// Card carries the displayable subset of a card payment method.
type Card struct {
	Brand string
	Last4 string
}

// SEPADebit carries the displayable subset of a SEPA direct debit mandate.
type SEPADebit struct {
	Last4 string
}

// PaymentMethod is a payment method snapshot. Exactly one of Card or SEPA is
// populated depending on Type; both are nil for types the pipeline does not
// render specially.
type PaymentMethod struct {
	Token string
	Type  MethodType
	Card  *Card
	SEPA  *SEPADebit
}

// Client is the payment gateway lookup contract.
type Client interface {
	FetchIntent(ctx context.Context, id string) (*Intent, error)
	FetchPaymentMethod(ctx context.Context, token string) (*PaymentMethod, error)
}
