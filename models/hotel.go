package models

import "time"

// Hotel represents a bookable hotel in the catalog.
type Hotel struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Location      string    `bson:"location" json:"location"`
	Image         string    `bson:"image" json:"image"`
	Price         float64   `bson:"price" json:"price"` // nightly price, display only
	Description   string    `bson:"description" json:"description"`
	Rating        float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Reviews       int       `bson:"reviews,omitempty" json:"reviews,omitempty"`
	StripePriceID string    `bson:"stripePriceId" json:"stripePriceId"` // authoritative nightly price reference
	Embedding     []float32 `bson:"embedding,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HotelInput is the payload for creating or replacing a hotel.
type HotelInput struct {
	Name          string  `json:"name" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	Image         string  `json:"image" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Description   string  `json:"description" binding:"required"`
	StripePriceID string  `json:"stripePriceId"`
}

// HotelSearchResult is a hotel projection returned by vector search,
// carrying the similarity score of the match.
type HotelSearchResult struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Location string  `bson:"location" json:"location"`
	Image    string  `bson:"image" json:"image"`
	Price    float64 `bson:"price" json:"price"`
	Rating   float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Reviews  int     `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Score    float64 `bson:"score" json:"score"`
}

// HotelListFilter narrows and orders the hotel list.
type HotelListFilter struct {
	MinPrice  *float64
	MaxPrice  *float64
	SortField string
	SortAsc   bool
}

// HotelSummary is the subset of hotel fields embedded in booking views.
type HotelSummary struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Location string  `bson:"location" json:"location"`
	Image    string  `bson:"image" json:"image"`
	Price    float64 `bson:"price" json:"price"`
}
