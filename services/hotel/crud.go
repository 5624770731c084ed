package hotel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	hotelRepo "hotelier/database/repository/hotel"
	"hotelier/models"
	"hotelier/services/embedding"
	"hotelier/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	hotelListCacheKey = "hotels:all"
	hotelListCacheTTL = 5 * time.Minute
)

// DefaultHotelService implements HotelService.
type DefaultHotelService struct {
	Repo     hotelRepo.HotelRepository
	Embedder embedding.Embedder
	Cache    *redis.Client
	Logger   *zap.Logger
}

func (s *DefaultHotelService) GetAllHotels(ctx context.Context, minPrice, maxPrice *float64, sortBy string) ([]models.Hotel, error) {
	filter := models.HotelListFilter{MinPrice: minPrice, MaxPrice: maxPrice}
	filter.SortField, filter.SortAsc = parseSortBy(sortBy)

	unfiltered := minPrice == nil && maxPrice == nil && filter.SortField == ""

	// Serve the common unfiltered listing from cache when possible.
	if unfiltered && s.Cache != nil {
		if data, err := s.Cache.Get(ctx, hotelListCacheKey).Result(); err == nil {
			var hotels []models.Hotel
			if err := json.Unmarshal([]byte(data), &hotels); err == nil {
				return hotels, nil
			}
		}
	}

	hotels, err := s.Repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	if unfiltered && s.Cache != nil {
		if data, err := json.Marshal(hotels); err == nil {
			if err := s.Cache.Set(ctx, hotelListCacheKey, data, hotelListCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache hotel list", zap.Error(err))
			}
		}
	}
	return hotels, nil
}

func (s *DefaultHotelService) GetHotelByID(ctx context.Context, id string) (*models.Hotel, error) {
	hotel, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, utils.NotFoundError("Hotel not found")
		}
		return nil, err
	}
	return hotel, nil
}

func (s *DefaultHotelService) CreateHotel(ctx context.Context, input models.HotelInput) (*models.Hotel, error) {
	vector, err := s.Embedder.Embed(ctx, embeddingText(input))
	if err != nil {
		return nil, fmt.Errorf("failed to generate hotel embedding: %w", err)
	}

	now := time.Now()
	hotel := &models.Hotel{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Location:      input.Location,
		Image:         input.Image,
		Price:         input.Price,
		Description:   input.Description,
		StripePriceID: input.StripePriceID,
		Embedding:     vector,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, hotel); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	s.Logger.Info("Hotel created", zap.String("id", hotel.ID), zap.String("name", hotel.Name))
	return hotel, nil
}

func (s *DefaultHotelService) UpdateHotel(ctx context.Context, id string, input models.HotelInput) (*models.Hotel, error) {
	vector, err := s.Embedder.Embed(ctx, embeddingText(input))
	if err != nil {
		return nil, fmt.Errorf("failed to generate hotel embedding: %w", err)
	}

	hotel := &models.Hotel{
		ID:            id,
		Name:          input.Name,
		Location:      input.Location,
		Image:         input.Image,
		Price:         input.Price,
		Description:   input.Description,
		StripePriceID: input.StripePriceID,
		Embedding:     vector,
	}
	if err := s.Repo.Update(ctx, hotel); err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, utils.NotFoundError("Hotel not found")
		}
		return nil, err
	}

	s.invalidateListCache(ctx)
	return s.GetHotelByID(ctx, id)
}

func (s *DefaultHotelService) PatchHotelPrice(ctx context.Context, id string, price float64) error {
	if price <= 0 {
		return utils.ValidationError("Price is required")
	}
	if err := s.Repo.UpdatePrice(ctx, id, price); err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return utils.NotFoundError("Hotel not found")
		}
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *DefaultHotelService) DeleteHotel(ctx context.Context, id string) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFoundError("Hotel not found")
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *DefaultHotelService) invalidateListCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, hotelListCacheKey).Err(); err != nil {
		s.Logger.Warn("failed to invalidate hotel list cache", zap.Error(err))
	}
}

// embeddingText is the canonical text indexed for semantic search.
func embeddingText(input models.HotelInput) string {
	return fmt.Sprintf("%s %s %s %g", input.Name, input.Description, input.Location, input.Price)
}

// parseSortBy parses a "field_asc" / "field_desc" expression. Anything
// malformed falls back to the repository default.
func parseSortBy(sortBy string) (field string, asc bool) {
	if sortBy == "" {
		return "", false
	}
	parts := strings.SplitN(sortBy, "_", 2)
	if len(parts) != 2 {
		return "", false
	}
	switch parts[1] {
	case "asc":
		return parts[0], true
	case "desc":
		return parts[0], false
	}
	return "", false
}
