package hotel

import (
	"context"
	"strings"

	"hotelier/models"
	"hotelier/utils"
)

// Number of nearest neighbours returned by a semantic search.
const searchLimit = 4

func (s *DefaultHotelService) SearchHotels(ctx context.Context, query string) ([]models.HotelSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ValidationError("Search query is required")
	}

	queryEmbedding, err := s.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.Repo.VectorSearch(ctx, queryEmbedding, searchLimit)
}
