// Package sweeper closes events whose date has passed and tells their
// organisers about it.
package sweeper

//go:generate mockgen -source=sweeper.go -destination=sweeper_mock.go -package=sweeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/marketplace/internal/config"
	"github.com/GlebRadaev/marketplace/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultLimit = 1000

type Repo interface {
	FindEventsEndedBefore(ctx context.Context, t time.Time, limit uint32) ([]domain.Event, error)
	CloseEvent(ctx context.Context, id int, notice *domain.Notification) (bool, error)
}

type Service struct {
	repo       Repo
	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration
	now        func() time.Time

	closing sync.Map
}

func New(cfg *config.Config, repo Repo) *Service {
	return &Service{
		repo:       repo,
		limit:      defaultLimit,
		workerPool: NewWorkerPool(cfg.SweepWorkers),
		interval:   cfg.SweepInterval,
		now:        time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Event sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping event sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep closes every active event dated before now. Events still being
// closed by an earlier sweep are skipped.
func (s *Service) sweep(ctx context.Context) {
	events, err := s.repo.FindEventsEndedBefore(ctx, s.now(), s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch finished events", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		event := event

		if _, loaded := s.closing.LoadOrStore(event.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.closing.Delete(event.ID)
				return s.closeEvent(ctx, event)
			})
			if err != nil {
				s.closing.Delete(event.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling event closures", zap.Error(err))
	}
}

func (s *Service) closeEvent(ctx context.Context, event domain.Event) error {
	notice := &domain.Notification{
		Title:   "Event Completed",
		Message: fmt.Sprintf("%s at %s has ended", event.Title, event.Venue),
		Type:    domain.NotificationTypeEvent,
	}
	closed, err := s.repo.CloseEvent(ctx, event.ID, notice)
	if err != nil {
		return fmt.Errorf("failed to close event %d: %w", event.ID, err)
	}
	if closed {
		zap.L().Info("Event closed", zap.Int("eventID", event.ID), zap.Int("soldTickets", event.SoldTickets))
	}
	return nil
}
