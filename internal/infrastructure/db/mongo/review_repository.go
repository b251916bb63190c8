package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderstay/travel-api/internal/core/domain"
)

const reviewsCollection = "reviews"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

// hotel_id stays a plain string: external providers use their own id scheme
// and those ids are not ObjectIDs.
type reviewDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	HotelID     string             `bson:"hotel_id"`
	HotelSource string             `bson:"hotel_source"`
	UserID      string             `bson:"user_id"`
	Username    string             `bson:"username,omitempty"`
	Comment     string             `bson:"comment"`
	Rating      int                `bson:"rating"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:          d.ID.Hex(),
		HotelID:     d.HotelID,
		HotelSource: domain.HotelSource(d.HotelSource),
		UserID:      d.UserID,
		Username:    d.Username,
		Comment:     d.Comment,
		Rating:      d.Rating,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := reviewDoc{
		HotelID:     review.HotelID,
		HotelSource: string(review.HotelSource),
		UserID:      review.UserID,
		Username:    review.Username,
		Comment:     review.Comment,
		Rating:      review.Rating,
		CreatedAt:   review.CreatedAt,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	created := *review
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReviewRepository) ListByHotel(ctx context.Context, hotelID string, source domain.HotelSource) ([]*domain.Review, error) {
	return r.list(ctx, bson.M{"hotel_id": hotelID, "hotel_source": string(source)})
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ReviewRepository) ListAll(ctx context.Context) ([]*domain.Review, error) {
	return r.list(ctx, bson.M{})
}

func (r *ReviewRepository) list(ctx context.Context, filter bson.M) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*domain.Review{}
	for cursor.Next(ctx) {
		var doc reviewDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, doc.toDomain())
	}
	return reviews, cursor.Err()
}

// DeleteByIDAndUser deletes on a compound {_id, user_id} filter, masking
// foreign reviews as non-existent.
func (r *ReviewRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// EnsureIndexes creates the hotel and owner indexes used by the listings.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "hotel_id", Value: 1}, {Key: "hotel_source", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
