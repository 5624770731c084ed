package hotel

import (
	"context"

	"hotelier/models"
)

// HotelService defines the hotel catalog operations.
type HotelService interface {
	// GetAllHotels lists hotels, optionally filtered by price range and
	// ordered by a "field_asc" / "field_desc" sort expression.
	GetAllHotels(ctx context.Context, minPrice, maxPrice *float64, sortBy string) ([]models.Hotel, error)
	// SearchHotels runs a semantic search over the catalog.
	SearchHotels(ctx context.Context, query string) ([]models.HotelSearchResult, error)
	// GetHotelByID retrieves a single hotel.
	GetHotelByID(ctx context.Context, id string) (*models.Hotel, error)
	// CreateHotel validates and stores a new hotel, generating its
	// embedding for the search index.
	CreateHotel(ctx context.Context, input models.HotelInput) (*models.Hotel, error)
	// UpdateHotel replaces the mutable fields of an existing hotel and
	// refreshes its embedding.
	UpdateHotel(ctx context.Context, id string, input models.HotelInput) (*models.Hotel, error)
	// PatchHotelPrice updates only the price of a hotel.
	PatchHotelPrice(ctx context.Context, id string, price float64) error
	// DeleteHotel removes a hotel.
	DeleteHotel(ctx context.Context, id string) error
}
