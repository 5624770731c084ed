package hotelRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelier/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Name of the Atlas vector index over the "embedding" path.
const vectorIndexName = "hotel_vector_index"

// ErrNotFound is returned when no hotel matches the given ID.
var ErrNotFound = errors.New("hotel not found")

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo(db *mongo.Database) HotelRepository {
	return &MongoHotelRepo{coll: db.Collection("hotels")}
}

func (r *MongoHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hotel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

func (r *MongoHotelRepo) GetAll(ctx context.Context, filter models.HotelListFilter) ([]models.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}

	sortField := filter.SortField
	sortAsc := filter.SortAsc
	if sortField == "" {
		// Default ordering: name ascending.
		sortField = "name"
		sortAsc = true
	}
	order := -1
	if sortAsc {
		order = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: order}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}

func (r *MongoHotelRepo) Create(ctx context.Context, hotel *models.Hotel) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		return fmt.Errorf("error creating hotel: %w", err)
	}
	return nil
}

func (r *MongoHotelRepo) Update(ctx context.Context, hotel *models.Hotel) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          hotel.Name,
		"location":      hotel.Location,
		"image":         hotel.Image,
		"price":         hotel.Price,
		"description":   hotel.Description,
		"stripePriceId": hotel.StripePriceID,
		"embedding":     hotel.Embedding,
		"updatedAt":     time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": hotel.ID}, update)
	if err != nil {
		return fmt.Errorf("error updating hotel %s: %w", hotel.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoHotelRepo) UpdatePrice(ctx context.Context, id string, price float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"price": price, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating hotel price %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoHotelRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting hotel %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

// VectorSearch runs an Atlas $vectorSearch aggregation over the hotel
// embeddings and projects the similarity score of each match.
func (r *MongoHotelRepo) VectorSearch(ctx context.Context, queryEmbedding []float32, limit int) ([]models.HotelSearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$vectorSearch", Value: bson.D{
			{Key: "index", Value: vectorIndexName},
			{Key: "path", Value: "embedding"},
			{Key: "queryVector", Value: queryEmbedding},
			{Key: "numCandidates", Value: 25},
			{Key: "limit", Value: limit},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"id":       1,
			"name":     1,
			"location": 1,
			"image":    1,
			"price":    1,
			"rating":   1,
			"reviews":  1,
			"score":    bson.M{"$meta": "vectorSearchScore"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.HotelSearchResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return results, nil
}
