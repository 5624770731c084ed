package payment

import (
	"context"

	"hotelier/models"
)

// PaymentService coordinates checkout sessions between the payment
// provider and the booking store.
type PaymentService interface {
	// CreateCheckoutSession opens an embedded checkout session for a
	// pending booking owned by the caller.
	CreateCheckoutSession(ctx context.Context, userID, userEmail, bookingID string) (*models.CheckoutSessionResult, error)
	// SessionStatus reconciles the session first, then returns the
	// composed booking/hotel/session view.
	SessionStatus(ctx context.Context, sessionID string) (*models.SessionStatusView, error)
	// FulfillCheckout ensures the booking referenced by the session
	// reflects the provider's payment state. Safe to call any number of
	// times from any trigger path; never fails its caller.
	FulfillCheckout(ctx context.Context, sessionID string)
}
