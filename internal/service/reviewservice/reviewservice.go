package reviewservice

//go:generate mockgen -source=reviewservice.go -destination=reviewservice_mock.go -package=reviewservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrSelfReview    = errors.New("cannot review yourself")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrUserNotFound  = errors.New("user not found")
)

type Repo interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetReviewsForUser(ctx context.Context, userID int) ([]domain.Review, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if review.ReviewerID == review.RevieweeID {
		return nil, ErrSelfReview
	}
	if _, err := s.repo.GetUser(ctx, review.RevieweeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		zap.L().Error("can't create review", zap.Error(err))
		return nil, err
	}
	zap.L().Info("review left",
		zap.Int("reviewer_id", created.ReviewerID),
		zap.Int("reviewee_id", created.RevieweeID),
		zap.Int("rating", created.Rating),
	)
	return created, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]domain.Review, error) {
	return s.repo.GetReviewsForUser(ctx, userID)
}
