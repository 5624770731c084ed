package payment

import (
	"context"
	"errors"

	bookingRepo "hotelier/database/repository/booking"
	"hotelier/models"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// FulfillCheckout reconciles the provider's authoritative payment state
// into the booking referenced by the session's metadata. It runs inside
// both the authenticated status poll and the unauthenticated webhook, so
// it never returns an error: every failure path logs and backs out.
// Invoking it repeatedly for the same session is harmless; the storage
// layer performs the PENDING -> PAID transition at most once.
func (s *DefaultPaymentService) FulfillCheckout(ctx context.Context, sessionID string) {
	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("line_items")

	sess, err := s.Checkout.GetSession(sessionID, params)
	if err != nil {
		s.Logger.Error("failed to retrieve checkout session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return
	}

	// Sessions without our metadata were not created by this system;
	// webhooks may fire for unrelated sessions in a shared account.
	bookingID := sess.Metadata[metadataBookingID]
	if bookingID == "" {
		return
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			s.Logger.Error("booking not found for checkout session",
				zap.String("sessionID", sessionID),
				zap.String("bookingID", bookingID))
		} else {
			s.Logger.Error("failed to load booking for checkout session",
				zap.String("sessionID", sessionID),
				zap.String("bookingID", bookingID),
				zap.Error(err))
		}
		return
	}

	// Idempotency guard: an already-fulfilled booking is a no-op.
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return
	}

	changed, err := s.Bookings.MarkPaid(ctx, bookingID)
	if err != nil {
		s.Logger.Error("failed to mark booking paid",
			zap.String("sessionID", sessionID),
			zap.String("bookingID", bookingID),
			zap.Error(err))
		return
	}
	if changed {
		s.Logger.Info("Booking fulfilled",
			zap.String("sessionID", sessionID),
			zap.String("bookingID", bookingID))
	}
	// Not changed means a concurrent invocation won the conditional
	// update between our read and write; equally fulfilled.
}
