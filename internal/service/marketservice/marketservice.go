package marketservice

//go:generate mockgen -source=marketservice.go -destination=marketservice_mock.go -package=marketservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/pkg/money"
	"go.uber.org/zap"
)

var ErrItemNotFound = errors.New("item not found")

type Repo interface {
	ListMarketplaceItems(ctx context.Context, f domain.ListFilter) ([]domain.MarketplaceItem, error)
	GetMarketplaceItem(ctx context.Context, id int) (*domain.MarketplaceItem, error)
	CreateMarketplaceItem(ctx context.Context, item *domain.MarketplaceItem) (*domain.MarketplaceItem, error)
	UpdateMarketplaceItem(ctx context.Context, id int, upd domain.ItemUpdate) (*domain.MarketplaceItem, error)
	DeleteMarketplaceItem(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) ListItems(ctx context.Context, f domain.ListFilter) ([]domain.MarketplaceItem, error) {
	return s.repo.ListMarketplaceItems(ctx, f)
}

func (s *Service) GetItem(ctx context.Context, id int) (*domain.MarketplaceItem, error) {
	item, err := s.repo.GetMarketplaceItem(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

func (s *Service) CreateItem(ctx context.Context, item *domain.MarketplaceItem) (*domain.MarketplaceItem, error) {
	price, err := money.Normalize(item.Price)
	if err != nil {
		return nil, err
	}
	item.Price = price

	created, err := s.repo.CreateMarketplaceItem(ctx, item)
	if err != nil {
		zap.L().Error("can't create marketplace item", zap.Error(err))
		return nil, err
	}
	zap.L().Info("item listed", zap.Int("id", created.ID), zap.Int("user_id", created.UserID))
	return created, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int, upd domain.ItemUpdate) (*domain.MarketplaceItem, error) {
	if upd.Price != nil {
		price, err := money.Normalize(*upd.Price)
		if err != nil {
			return nil, err
		}
		upd.Price = &price
	}
	item, err := s.repo.UpdateMarketplaceItem(ctx, id, upd)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	err := s.repo.DeleteMarketplaceItem(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}
