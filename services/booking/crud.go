package booking

import (
	"context"
	"errors"
	"math/rand"
	"time"

	bookingRepo "hotelier/database/repository/booking"
	hotelRepo "hotelier/database/repository/hotel"
	"hotelier/models"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Hotels   hotelRepo.HotelRepository
	Logger   *zap.Logger
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error) {
	if userID == "" {
		return nil, utils.UnauthorizedError("Authentication required for booking.")
	}

	checkIn, errIn := time.Parse(time.RFC3339, input.CheckInDate)
	checkOut, errOut := time.Parse(time.RFC3339, input.CheckOutDate)
	if errIn != nil || errOut != nil || !checkIn.Before(checkOut) {
		return nil, utils.ValidationError("Invalid dates. Check-out must be after check-in.")
	}

	if _, err := s.Hotels.GetByID(ctx, input.HotelID); err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, utils.NotFoundError("Hotel not found.")
		}
		return nil, err
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        userID,
		HotelID:       input.HotelID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		RoomNumber:    generateRoomNumber(),
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.Logger.Info("Booking created",
		zap.String("bookingID", booking.ID),
		zap.String("userID", userID),
		zap.String("hotelID", input.HotelID))
	return booking, nil
}

func (s *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.UserBooking, error) {
	if userID == "" {
		return nil, utils.UnauthorizedError("Authentication required.")
	}

	bookings, err := s.Bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.UserBooking, 0, len(bookings))
	for _, b := range bookings {
		ub := models.UserBooking{Booking: b}
		hotel, err := s.Hotels.GetByID(ctx, b.HotelID)
		if err != nil {
			// A deleted hotel must not hide the booking itself.
			s.Logger.Warn("hotel lookup failed for booking",
				zap.String("bookingID", b.ID),
				zap.String("hotelID", b.HotelID),
				zap.Error(err))
		} else {
			ub.Hotel = &models.HotelSummary{
				ID:       hotel.ID,
				Name:     hotel.Name,
				Location: hotel.Location,
				Image:    hotel.Image,
				Price:    hotel.Price,
			}
		}
		result = append(result, ub)
	}
	return result, nil
}

// generateRoomNumber assigns a placeholder room in [100, 999].
func generateRoomNumber() int {
	return 100 + rand.Intn(900)
}
