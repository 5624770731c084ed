package payment

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// CheckoutAPI is the slice of the payment provider the service needs.
// The production implementation wraps the Stripe checkout session client;
// tests substitute a fake.
type CheckoutAPI interface {
	NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeCheckout struct {
	client *session.Client
}

// NewStripeCheckout returns a CheckoutAPI backed by the Stripe API with
// the given secret key. The key is scoped to this client rather than the
// process-wide stripe.Key.
func NewStripeCheckout(apiKey string) CheckoutAPI {
	return &stripeCheckout{
		client: &session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: apiKey,
		},
	}
}

func (c *stripeCheckout) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.client.New(params)
}

func (c *stripeCheckout) GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.client.Get(id, params)
}
