package service

import (
	"github.com/GlebRadaev/marketplace/internal/handlers/auth"
	"github.com/GlebRadaev/marketplace/internal/handlers/events"
	"github.com/GlebRadaev/marketplace/internal/handlers/jobs"
	"github.com/GlebRadaev/marketplace/internal/handlers/marketplace"
	"github.com/GlebRadaev/marketplace/internal/handlers/notifications"
	"github.com/GlebRadaev/marketplace/internal/handlers/reviews"
	"github.com/GlebRadaev/marketplace/internal/handlers/users"
	"github.com/GlebRadaev/marketplace/internal/handlers/wallet"
	"github.com/GlebRadaev/marketplace/internal/repo"
	"github.com/GlebRadaev/marketplace/internal/service/authservice"
	"github.com/GlebRadaev/marketplace/internal/service/eventservice"
	"github.com/GlebRadaev/marketplace/internal/service/jobservice"
	"github.com/GlebRadaev/marketplace/internal/service/marketservice"
	"github.com/GlebRadaev/marketplace/internal/service/notificationservice"
	"github.com/GlebRadaev/marketplace/internal/service/reviewservice"
	"github.com/GlebRadaev/marketplace/internal/service/userservice"
	"github.com/GlebRadaev/marketplace/internal/service/walletservice"
	pkgauth "github.com/GlebRadaev/marketplace/pkg/auth"
)

type Services struct {
	AuthService         auth.Service
	UserService         users.Service
	JobService          jobs.Service
	MarketService       marketplace.Service
	EventService        events.Service
	ReviewService       reviews.Service
	NotificationService notifications.Service
	WalletService       wallet.Service
}

func New(repo *repo.Repositories, hashService pkgauth.HashServiceInterface, jwtService pkgauth.JWTServiceInterface) *Services {
	return &Services{
		AuthService:         authservice.New(repo.AuthRepo, hashService, jwtService),
		UserService:         userservice.New(repo.UserRepo),
		JobService:          jobservice.New(repo.JobRepo),
		MarketService:       marketservice.New(repo.MarketRepo),
		EventService:        eventservice.New(repo.EventRepo),
		ReviewService:       reviewservice.New(repo.ReviewRepo),
		NotificationService: notificationservice.New(repo.NotificationRepo),
		WalletService:       walletservice.New(repo.WalletRepo),
	}
}
