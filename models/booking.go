package models

import "time"

// Payment status values for a booking. The transition PENDING -> PAID is
// monotonic and performed exclusively by the payment service.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

// Booking represents a reservation linking a user, a hotel, a date range
// and a payment status.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	HotelID       string    `bson:"hotelId" json:"hotelId"`
	CheckIn       time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut      time.Time `bson:"checkOut" json:"checkOut"`
	RoomNumber    int       `bson:"roomNumber" json:"roomNumber"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	HotelID      string `json:"hotelId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// UserBooking is a booking enriched with a summary of its hotel, as
// returned by the user booking list.
type UserBooking struct {
	Booking `bson:",inline"`
	Hotel   *HotelSummary `bson:"hotel,omitempty" json:"hotel,omitempty"`
}
