package booking

import (
	"context"

	"hotelier/models"
)

// BookingService defines the booking operations.
type BookingService interface {
	// CreateBooking accepts a booking request for the given user and
	// stores it with payment status PENDING.
	CreateBooking(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error)
	// GetUserBookings lists the user's bookings, most recent check-in
	// first, each enriched with a summary of its hotel.
	GetUserBookings(ctx context.Context, userID string) ([]models.UserBooking, error)
}
