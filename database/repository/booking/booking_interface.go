package bookingRepo

import (
	"context"

	"hotelier/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByUserID retrieves all bookings for a user, most recent
	// check-in first.
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	// MarkPaid atomically transitions a booking from PENDING to PAID.
	// It reports whether this call performed the transition; false means
	// either the booking does not exist or it was already PAID.
	MarkPaid(ctx context.Context, id string) (bool, error)
}
