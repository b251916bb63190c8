package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/wanderstay/travel-api/internal/api/metrics"
	"github.com/wanderstay/travel-api/internal/core/domain"
	"github.com/wanderstay/travel-api/internal/core/ports"
)

// blockedWords rejects reviews containing inappropriate language. Matching is
// case-insensitive on substrings.
var blockedWords = []string{
	"damn",
	"scam",
	"fraud",
	"idiot",
	"stupid",
}

func containsBlockedWord(comment string) bool {
	lowered := strings.ToLower(comment)
	for _, w := range blockedWords {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

// ReviewService implements review creation, listing, and deletion.
type ReviewService struct {
	reviews ports.ReviewRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, users ports.UserRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, users: users, logger: logger}
}

// Create validates and persists a review. The author's username is
// snapshotted into the document so listings need no join.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if input.HotelID == "" || input.HotelSource == "" || input.Comment == "" {
		return nil, domain.ErrInvalidInput
	}

	source := domain.HotelSource(input.HotelSource)
	if !source.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if input.Rating < domain.RatingMin || input.Rating > domain.RatingMax {
		metrics.ReviewsRejectedTotal.WithLabelValues("rating").Inc()
		return nil, domain.ErrInvalidInput
	}

	if utf8.RuneCountInString(input.Comment) > domain.CommentMaxLen {
		metrics.ReviewsRejectedTotal.WithLabelValues("comment_length").Inc()
		return nil, domain.ErrInvalidInput
	}

	if containsBlockedWord(input.Comment) {
		metrics.ReviewsRejectedTotal.WithLabelValues("blocked_word").Inc()
		return nil, domain.ErrInvalidInput
	}

	username := ""
	if user, err := s.users.FindByID(ctx, input.UserID); err == nil {
		username = user.Username
	}

	review := &domain.Review{
		HotelID:     input.HotelID,
		HotelSource: source,
		UserID:      input.UserID,
		Username:    username,
		Comment:     input.Comment,
		Rating:      input.Rating,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		s.logger.Error().Err(err).Str("hotel_id", input.HotelID).Msg("failed to create review")
		return nil, err
	}

	metrics.ReviewsCreatedTotal.WithLabelValues(string(source)).Inc()
	return created, nil
}

// ListForHotel returns a hotel's reviews, newest first. Public.
func (s *ReviewService) ListForHotel(ctx context.Context, hotelID string, source domain.HotelSource) ([]*domain.Review, error) {
	if !source.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return s.reviews.ListByHotel(ctx, hotelID, source)
}

// ListMine returns the requester's reviews. Operators see every review.
func (s *ReviewService) ListMine(ctx context.Context, userID, role string) ([]*domain.Review, error) {
	if role == domain.RoleOperator {
		return s.reviews.ListAll(ctx)
	}
	return s.reviews.ListByUser(ctx, userID)
}

// Delete removes the requester's review. A review owned by someone else is
// reported as not found, never as forbidden.
func (s *ReviewService) Delete(ctx context.Context, id, userID string) error {
	return s.reviews.DeleteByIDAndUser(ctx, id, userID)
}
