package hotelRepo

import (
	"context"

	"hotelier/models"
)

// HotelRepository defines methods for hotel data access.
type HotelRepository interface {
	// GetByID retrieves a hotel by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	// GetAll retrieves hotels matching the optional price filter, ordered
	// by the filter's sort options.
	GetAll(ctx context.Context, filter models.HotelListFilter) ([]models.Hotel, error)
	// Create inserts a new hotel record.
	Create(ctx context.Context, hotel *models.Hotel) error
	// Update replaces the mutable fields of an existing hotel record.
	Update(ctx context.Context, hotel *models.Hotel) error
	// UpdatePrice patches only the price of a hotel.
	UpdatePrice(ctx context.Context, id string, price float64) error
	// Delete removes a hotel record by its ID. Returns false when no
	// record matched.
	Delete(ctx context.Context, id string) (bool, error)
	// VectorSearch returns the hotels nearest to the query embedding,
	// each carrying a similarity score.
	VectorSearch(ctx context.Context, queryEmbedding []float32, limit int) ([]models.HotelSearchResult, error)
}
