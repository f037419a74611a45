package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/dmitrymomot/storekit/pkg/gateway"
)

// Config holds Stripe API settings.
type Config struct {
	APIKey         string        `env:"STRIPE_API_KEY,required"`
	RequestTimeout time.Duration `env:"STRIPE_REQUEST_TIMEOUT" envDefault:"15s"`
}

var ErrInvalidConfig = errors.New("gateway.stripe.errors.invalid_config")

// Client is a Stripe-backed gateway.Client.
type Client struct {
	api *client.API
}

// New creates a Stripe gateway client. The API key is required; the request
// timeout defaults to 15s when unset.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", ErrInvalidConfig)
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	api := &client.API{}
	api.Init(cfg.APIKey, stripego.NewBackends(&http.Client{Timeout: timeout}))

	return &Client{api: api}, nil
}

// MustNew creates a Stripe gateway client that panics on invalid config.
func MustNew(cfg Config) *Client {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// FetchIntent retrieves a payment intent. The returned token is the ID of the
// payment method the intent settled with, empty if Stripe reported none.
func (c *Client) FetchIntent(ctx context.Context, id string) (*gateway.Intent, error) {
	pi, err := c.api.PaymentIntents.Get(id, &stripego.PaymentIntentParams{
		Params: stripego.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch payment intent %s: %w", id, err)
	}

	intent := &gateway.Intent{
		ID:     pi.ID,
		Status: string(pi.Status),
	}
	if pi.PaymentMethod != nil {
		intent.PaymentMethodToken = pi.PaymentMethod.ID
	}
	return intent, nil
}

// FetchPaymentMethod retrieves payment method details behind a token.
func (c *Client) FetchPaymentMethod(ctx context.Context, token string) (*gateway.PaymentMethod, error) {
	pm, err := c.api.PaymentMethods.Get(token, &stripego.PaymentMethodParams{
		Params: stripego.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch payment method %s: %w", token, err)
	}

	method := &gateway.PaymentMethod{Token: pm.ID}
	switch pm.Type {
	case stripego.PaymentMethodTypeCard:
		method.Type = gateway.MethodCard
		if pm.Card != nil {
			method.Card = &gateway.Card{
				Brand: string(pm.Card.Brand),
				Last4: pm.Card.Last4,
			}
		}
	case stripego.PaymentMethodTypeSEPADebit:
		method.Type = gateway.MethodSEPADebit
		if pm.SEPADebit != nil {
			method.SEPA = &gateway.SEPADebit{Last4: pm.SEPADebit.Last4}
		}
	default:
		method.Type = gateway.MethodType(pm.Type)
	}
	return method, nil
}
