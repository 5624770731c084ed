package payment

import (
	"context"
	"errors"
	"math"
	"time"

	bookingRepo "hotelier/database/repository/booking"
	hotelRepo "hotelier/database/repository/hotel"
	"hotelier/models"
	"hotelier/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// Session metadata key linking a checkout session back to its booking.
// This metadata is the only correlation the coordinator has.
const metadataBookingID = "bookingId"

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Checkout CheckoutAPI
	Bookings bookingRepo.BookingRepository
	Hotels   hotelRepo.HotelRepository
	// FrontendURL is the origin the embedded checkout returns to.
	FrontendURL string
	Logger      *zap.Logger
}

func NewPaymentService(checkout CheckoutAPI, bookings bookingRepo.BookingRepository, hotels hotelRepo.HotelRepository, frontendURL string, logger *zap.Logger) *DefaultPaymentService {
	return &DefaultPaymentService{
		Checkout:    checkout,
		Bookings:    bookings,
		Hotels:      hotels,
		FrontendURL: frontendURL,
		Logger:      logger,
	}
}

func (s *DefaultPaymentService) CreateCheckoutSession(ctx context.Context, userID, userEmail, bookingID string) (*models.CheckoutSessionResult, error) {
	if userID == "" {
		return nil, utils.UnauthorizedError("Authentication required.")
	}
	if bookingID == "" {
		return nil, utils.ValidationError("Booking ID is required.")
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil && !errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, err
	}
	// Ownership mismatches report the same way as missing bookings so the
	// endpoint does not leak existence to non-owners.
	if booking == nil || booking.UserID != userID {
		return nil, utils.NotFoundError("Booking not found or access denied.")
	}

	if booking.PaymentStatus != models.PaymentStatusPending {
		return nil, utils.ValidationError("Payment already processed: %s.", booking.PaymentStatus)
	}

	hotel, err := s.Hotels.GetByID(ctx, booking.HotelID)
	if err != nil && !errors.Is(err, hotelRepo.ErrNotFound) {
		return nil, err
	}
	if hotel == nil || hotel.StripePriceID == "" {
		return nil, utils.ValidationError("Stripe price ID is missing for this hotel.")
	}

	nights := numberOfNights(booking.CheckIn, booking.CheckOut)

	params := &stripe.CheckoutSessionParams{
		UIMode: stripe.String(string(stripe.CheckoutSessionUIModeEmbedded)),
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(hotel.StripePriceID),
			Quantity: stripe.Int64(nights),
		}},
		ReturnURL: stripe.String(s.FrontendURL + "/booking/complete?session_id={CHECKOUT_SESSION_ID}"),
	}
	// The bookingId metadata is set atomically with session creation; it is
	// what the webhook and status poll use to find their way back here.
	params.AddMetadata(metadataBookingID, booking.ID)
	if userEmail != "" {
		params.CustomerEmail = stripe.String(userEmail)
	}

	sess, err := s.Checkout.NewSession(params)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Checkout session created",
		zap.String("sessionID", sess.ID),
		zap.String("bookingID", booking.ID),
		zap.Int64("nights", nights))

	return &models.CheckoutSessionResult{
		ClientSecret: sess.ClientSecret,
		SessionID:    sess.ID,
	}, nil
}

func (s *DefaultPaymentService) SessionStatus(ctx context.Context, sessionID string) (*models.SessionStatusView, error) {
	if sessionID == "" {
		return nil, utils.ValidationError("Session ID is required.")
	}

	// Reconcile before reading so the response reflects current truth.
	s.FulfillCheckout(ctx, sessionID)

	sess, err := s.Checkout.GetSession(sessionID, nil)
	if err != nil {
		return nil, err
	}

	bookingID := sess.Metadata[metadataBookingID]
	var booking *models.Booking
	if bookingID != "" {
		booking, err = s.Bookings.GetByID(ctx, bookingID)
		if err != nil && !errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, err
		}
	}
	var hotel *models.Hotel
	if booking != nil {
		hotel, err = s.Hotels.GetByID(ctx, booking.HotelID)
		if err != nil && !errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, err
		}
	}
	if booking == nil || hotel == nil {
		return nil, utils.NotFoundError("Booking or associated hotel not found.")
	}

	email := "N/A"
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		email = sess.CustomerDetails.Email
	}

	return &models.SessionStatusView{
		Booking:       *booking,
		Hotel:         *hotel,
		Status:        string(sess.Status),
		CustomerEmail: email,
		PaymentStatus: booking.PaymentStatus,
	}, nil
}

// numberOfNights is the billed quantity: the date span rounded to whole
// days, never less than one. Rounding absorbs clock-skew fractions and
// the floor keeps a same-day booking billable.
func numberOfNights(checkIn, checkOut time.Time) int64 {
	days := checkOut.Sub(checkIn).Abs().Hours() / 24
	nights := int64(math.Round(days))
	if nights < 1 {
		return 1
	}
	return nights
}
