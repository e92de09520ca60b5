package storage

import (
	"context"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

func copyItem(it domain.MarketplaceItem) *domain.MarketplaceItem {
	it.Images = cloneStrings(it.Images)
	return &it
}

func itemCreatedAt(it domain.MarketplaceItem) time.Time { return it.CreatedAt }
func itemID(it domain.MarketplaceItem) int              { return it.ID }

// ListMarketplaceItems returns active items matching f, newest first.
func (s *Store) ListMarketplaceItems(_ context.Context, f domain.ListFilter) ([]domain.MarketplaceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := collect(s.items, func(it domain.MarketplaceItem) bool {
		return it.Status == domain.ItemStatusActive &&
			matches(f, it.Category, it.Location, it.Title, it.Description)
	})
	newestFirst(items, itemCreatedAt, itemID)
	for i := range items {
		items[i] = *copyItem(items[i])
	}
	return items, nil
}

func (s *Store) GetMarketplaceItem(_ context.Context, id int) (*domain.MarketplaceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyItem(it), nil
}

func (s *Store) GetMarketplaceItemsByUser(_ context.Context, userID int) ([]domain.MarketplaceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := collect(s.items, func(it domain.MarketplaceItem) bool { return it.UserID == userID })
	byID(items, itemID)
	for i := range items {
		items[i] = *copyItem(items[i])
	}
	return items, nil
}

func (s *Store) CreateMarketplaceItem(_ context.Context, item *domain.MarketplaceItem) (*domain.MarketplaceItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := *copyItem(*item)
	it.ID = s.seq.next()
	it.Status = domain.ItemStatusActive
	it.CreatedAt = s.now()
	s.items[it.ID] = it

	return copyItem(it), nil
}

func (s *Store) UpdateMarketplaceItem(_ context.Context, id int, upd domain.ItemUpdate) (*domain.MarketplaceItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	set(&it.Title, upd.Title)
	set(&it.Description, upd.Description)
	set(&it.Price, upd.Price)
	set(&it.Category, upd.Category)
	set(&it.Condition, upd.Condition)
	set(&it.Location, upd.Location)
	set(&it.Status, upd.Status)
	if upd.Images != nil {
		it.Images = cloneStrings(upd.Images)
	}
	s.items[id] = it

	return copyItem(it), nil
}

func (s *Store) DeleteMarketplaceItem(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}
