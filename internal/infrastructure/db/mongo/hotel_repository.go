package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

const hotelsCollection = "hotels"

type HotelRepository struct {
	coll *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{coll: db.Collection(hotelsCollection)}
}

type hotelDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Location    string             `bson:"location"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d hotelDoc) toDomain() *domain.Hotel {
	return &domain.Hotel{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Location:    d.Location,
		Price:       d.Price,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := hotelDoc{
		Name:        h.Name,
		Location:    h.Location,
		Price:       h.Price,
		Description: h.Description,
		ImageURL:    h.ImageURL,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}

	created := *h
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeHotels(ctx, cursor)
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc hotelDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *HotelRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Hotel, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []*domain.Hotel{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeHotels(ctx, cursor)
}

func (r *HotelRepository) Update(ctx context.Context, id string, h *domain.Hotel) (*domain.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"name":       h.Name,
		"location":   h.Location,
		"price":      h.Price,
		"updated_at": h.UpdatedAt,
	}
	if h.Description != "" {
		set["description"] = h.Description
	}
	if h.ImageURL != "" {
		set["image_url"] = h.ImageURL
	}

	var doc hotelDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("update hotel: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHotelNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func decodeHotels(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Hotel, error) {
	hotels := []*domain.Hotel{}
	for cursor.Next(ctx) {
		var doc hotelDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		hotels = append(hotels, doc.toDomain())
	}
	return hotels, cursor.Err()
}
