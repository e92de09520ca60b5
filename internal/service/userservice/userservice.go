package userservice

//go:generate mockgen -source=userservice.go -destination=userservice_mock.go -package=userservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, upd domain.UserUpdate) (*domain.User, error)
	GetJobsByUser(ctx context.Context, userID int) ([]domain.Job, error)
	GetJobApplicationsByUser(ctx context.Context, userID int) ([]domain.JobApplication, error)
	GetMarketplaceItemsByUser(ctx context.Context, userID int) ([]domain.MarketplaceItem, error)
	GetEventsByUser(ctx context.Context, userID int) ([]domain.Event, error)
	GetEventTicketsByUser(ctx context.Context, userID int) ([]domain.EventTicket, error)
	GetReviewsForUser(ctx context.Context, userID int) ([]domain.Review, error)
	GetNotifications(ctx context.Context, userID int) ([]domain.Notification, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		zap.L().Error("failed to get user", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int, upd domain.UserUpdate) (*domain.User, error) {
	user, err := s.repo.UpdateUser(ctx, id, upd)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		zap.L().Error("failed to update user", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	zap.L().Info("user profile updated", zap.Int("id", id))
	return user, nil
}

func (s *Service) GetJobs(ctx context.Context, userID int) ([]domain.Job, error) {
	return s.repo.GetJobsByUser(ctx, userID)
}

func (s *Service) GetApplications(ctx context.Context, userID int) ([]domain.JobApplication, error) {
	return s.repo.GetJobApplicationsByUser(ctx, userID)
}

func (s *Service) GetItems(ctx context.Context, userID int) ([]domain.MarketplaceItem, error) {
	return s.repo.GetMarketplaceItemsByUser(ctx, userID)
}

func (s *Service) GetEvents(ctx context.Context, userID int) ([]domain.Event, error) {
	return s.repo.GetEventsByUser(ctx, userID)
}

func (s *Service) GetTickets(ctx context.Context, userID int) ([]domain.EventTicket, error) {
	return s.repo.GetEventTicketsByUser(ctx, userID)
}

// GetReviews lists the reviews the user received.
func (s *Service) GetReviews(ctx context.Context, userID int) ([]domain.Review, error) {
	return s.repo.GetReviewsForUser(ctx, userID)
}

func (s *Service) GetNotifications(ctx context.Context, userID int) ([]domain.Notification, error) {
	return s.repo.GetNotifications(ctx, userID)
}
