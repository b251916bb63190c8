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

const bookingsCollection = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type bookingDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	HotelID      string             `bson:"hotel_id"`
	HotelSource  string             `bson:"hotel_source"`
	HotelName    string             `bson:"hotel_name"`
	CheckInDate  time.Time          `bson:"check_in_date"`
	CheckOutDate time.Time          `bson:"check_out_date"`
	StayDays     int                `bson:"stay_days"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		HotelID:      d.HotelID,
		HotelSource:  domain.HotelSource(d.HotelSource),
		HotelName:    d.HotelName,
		CheckInDate:  d.CheckInDate,
		CheckOutDate: d.CheckOutDate,
		StayDays:     d.StayDays,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookingDoc{
		UserID:       b.UserID,
		HotelID:      b.HotelID,
		HotelSource:  string(b.HotelSource),
		HotelName:    b.HotelName,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		StayDays:     b.StayDays,
		CreatedAt:    b.CreatedAt,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *b
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// ListByUser returns the user's bookings, newest created first. Ownership is
// a query filter, not a post-hoc check.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*domain.Booking{}
	for cursor.Next(ctx) {
		var doc bookingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, doc.toDomain())
	}
	return bookings, cursor.Err()
}

// DeleteByIDAndUser deletes on a compound {_id, user_id} filter. A booking
// owned by someone else matches nothing, so the caller cannot tell "not
// yours" apart from "does not exist".
func (r *BookingRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by ListByUser.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
