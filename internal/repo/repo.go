package repo

import (
	"github.com/GlebRadaev/marketplace/internal/service/authservice"
	"github.com/GlebRadaev/marketplace/internal/service/eventservice"
	"github.com/GlebRadaev/marketplace/internal/service/jobservice"
	"github.com/GlebRadaev/marketplace/internal/service/marketservice"
	"github.com/GlebRadaev/marketplace/internal/service/notificationservice"
	"github.com/GlebRadaev/marketplace/internal/service/reviewservice"
	"github.com/GlebRadaev/marketplace/internal/service/userservice"
	"github.com/GlebRadaev/marketplace/internal/service/walletservice"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/internal/sweeper"
)

// Repositories hands each service the narrow view of the store it needs.
type Repositories struct {
	UserRepo         userservice.Repo
	AuthRepo         authservice.Repo
	JobRepo          jobservice.Repo
	MarketRepo       marketservice.Repo
	EventRepo        eventservice.Repo
	ReviewRepo       reviewservice.Repo
	NotificationRepo notificationservice.Repo
	WalletRepo       walletservice.Repo
	SweepRepo        sweeper.Repo
}

func New(store *storage.Store) *Repositories {
	return &Repositories{
		UserRepo:         store,
		AuthRepo:         store,
		JobRepo:          store,
		MarketRepo:       store,
		EventRepo:        store,
		ReviewRepo:       store,
		NotificationRepo: store,
		WalletRepo:       store,
		SweepRepo:        store,
	}
}
