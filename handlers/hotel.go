package handlers

import (
	"net/http"
	"strconv"

	"hotelier/models"
	"hotelier/services/hotel"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

// HotelHandler serves the hotel catalog endpoints.
type HotelHandler struct {
	Service hotel.HotelService
}

func NewHotelHandler(service hotel.HotelService) *HotelHandler {
	return &HotelHandler{Service: service}
}

// GetAllHotelsHandler handles GET /api/hotels.
func (h *HotelHandler) GetAllHotelsHandler(c *gin.Context) {
	var minPrice, maxPrice *float64
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		minPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		maxPrice = &v
	}

	hotels, err := h.Service.GetAllHotels(c.Request.Context(), minPrice, maxPrice, c.Query("sortBy"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// SearchHotelsHandler handles GET /api/hotels/search?query=.
func (h *HotelHandler) SearchHotelsHandler(c *gin.Context) {
	results, err := h.Service.SearchHotels(c.Request.Context(), c.Query("query"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetHotelByIDHandler handles GET /api/hotels/:id.
func (h *HotelHandler) GetHotelByIDHandler(c *gin.Context) {
	hotel, err := h.Service.GetHotelByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// CreateHotelHandler handles POST /api/hotels.
func (h *HotelHandler) CreateHotelHandler(c *gin.Context) {
	var input models.HotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid hotel data: %v", err))
		return
	}
	created, err := h.Service.CreateHotel(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHotelHandler handles PUT /api/hotels/:id.
func (h *HotelHandler) UpdateHotelHandler(c *gin.Context) {
	var input models.HotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid hotel data: All required fields must be present."))
		return
	}
	updated, err := h.Service.UpdateHotel(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PatchHotelHandler handles PATCH /api/hotels/:id. Only the price may be patched.
func (h *HotelHandler) PatchHotelHandler(c *gin.Context) {
	var input struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Price == 0 {
		utils.RespondError(c, utils.ValidationError("Price is required"))
		return
	}
	if err := h.Service.PatchHotelPrice(c.Request.Context(), c.Param("id"), input.Price); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteHotelHandler handles DELETE /api/hotels/:id.
func (h *HotelHandler) DeleteHotelHandler(c *gin.Context) {
	if err := h.Service.DeleteHotel(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
