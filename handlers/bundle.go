package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Hotel endpoints
	GetAllHotelsHandler gin.HandlerFunc
	SearchHotelsHandler gin.HandlerFunc
	GetHotelByIDHandler gin.HandlerFunc
	CreateHotelHandler  gin.HandlerFunc
	UpdateHotelHandler  gin.HandlerFunc
	PatchHotelHandler   gin.HandlerFunc
	DeleteHotelHandler  gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler   gin.HandlerFunc
	GetUserBookingsHandler gin.HandlerFunc

	// Payment endpoints
	CreateCheckoutSessionHandler gin.HandlerFunc
	SessionStatusHandler         gin.HandlerFunc
	StripeWebhookHandler         gin.HandlerFunc

	// User endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
}
