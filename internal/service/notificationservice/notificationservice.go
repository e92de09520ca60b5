package notificationservice

//go:generate mockgen -source=notificationservice.go -destination=notificationservice_mock.go -package=notificationservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"go.uber.org/zap"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Repo interface {
	GetNotifications(ctx context.Context, userID int) ([]domain.Notification, error)
	CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	MarkNotificationAsRead(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n.Type == "" {
		n.Type = domain.NotificationTypeSystem
	}
	created, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]domain.Notification, error) {
	return s.repo.GetNotifications(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id int) error {
	err := s.repo.MarkNotificationAsRead(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotificationNotFound
	}
	return err
}
