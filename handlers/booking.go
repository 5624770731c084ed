package handlers

import (
	"net/http"

	"hotelier/middleware"
	"hotelier/models"
	"hotelier/services/booking"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Hotel ID, check-in, and check-out dates are required."))
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetUserBookingsHandler handles GET /api/bookings/me.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	bookings, err := h.Service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
