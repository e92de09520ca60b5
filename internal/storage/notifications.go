package storage

import (
	"context"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

// GetNotifications returns the user's notifications, newest first.
func (s *Store) GetNotifications(_ context.Context, userID int) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := collect(s.notifications, func(n domain.Notification) bool { return n.UserID == userID })
	newestFirst(list,
		func(n domain.Notification) time.Time { return n.CreatedAt },
		func(n domain.Notification) int { return n.ID },
	)
	return list, nil
}

func (s *Store) CreateNotification(_ context.Context, notification *domain.Notification) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := *notification
	s.insertNotification(&n)
	return &n, nil
}

// insertNotification must be called with the write lock held.
func (s *Store) insertNotification(n *domain.Notification) {
	n.ID = s.seq.next()
	n.IsRead = false
	n.CreatedAt = s.now()
	s.notifications[n.ID] = *n
}

func (s *Store) MarkNotificationAsRead(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	s.notifications[id] = n
	return nil
}
