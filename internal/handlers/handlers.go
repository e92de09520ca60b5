package handlers

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/marketplace/docs"
	authhandlers "github.com/GlebRadaev/marketplace/internal/handlers/auth"
	eventhandlers "github.com/GlebRadaev/marketplace/internal/handlers/events"
	jobhandlers "github.com/GlebRadaev/marketplace/internal/handlers/jobs"
	markethandlers "github.com/GlebRadaev/marketplace/internal/handlers/marketplace"
	notificationhandlers "github.com/GlebRadaev/marketplace/internal/handlers/notifications"
	reviewhandlers "github.com/GlebRadaev/marketplace/internal/handlers/reviews"
	userhandlers "github.com/GlebRadaev/marketplace/internal/handlers/users"
	wallethandlers "github.com/GlebRadaev/marketplace/internal/handlers/wallet"
	"github.com/GlebRadaev/marketplace/internal/service"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	GetJobs(w http.ResponseWriter, r *http.Request)
	GetApplications(w http.ResponseWriter, r *http.Request)
	GetItems(w http.ResponseWriter, r *http.Request)
	GetEvents(w http.ResponseWriter, r *http.Request)
	GetTickets(w http.ResponseWriter, r *http.Request)
	GetReviews(w http.ResponseWriter, r *http.Request)
	GetNotifications(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	ListJobs(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	CreateJob(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)
	CompleteJob(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	UpdateApplication(w http.ResponseWriter, r *http.Request)
}

type MarketplaceHandler interface {
	ListItems(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	CreateItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	ListEvents(w http.ResponseWriter, r *http.Request)
	GetEvent(w http.ResponseWriter, r *http.Request)
	CreateEvent(w http.ResponseWriter, r *http.Request)
	UpdateEvent(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)
	ListTickets(w http.ResponseWriter, r *http.Request)
	BuyTicket(w http.ResponseWriter, r *http.Request)
	GetTicket(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	CreateNotification(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	UserHandler         UserHandler
	JobHandler          JobHandler
	MarketplaceHandler  MarketplaceHandler
	EventHandler        EventHandler
	ReviewHandler       ReviewHandler
	NotificationHandler NotificationHandler
	WalletHandler       WalletHandler

	tokens auth.JWTServiceInterface
}

func New(s *service.Services, tokens auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		UserHandler:         userhandlers.New(s.UserService),
		JobHandler:          jobhandlers.New(s.JobService),
		MarketplaceHandler:  markethandlers.New(s.MarketService),
		EventHandler:        eventhandlers.New(s.EventService),
		ReviewHandler:       reviewhandlers.New(s.ReviewService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		WalletHandler:       wallethandlers.New(s.WalletService),
		tokens:              tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", h.UserHandler.GetUser)
			r.Get("/jobs", h.UserHandler.GetJobs)
			r.Get("/applications", h.UserHandler.GetApplications)
			r.Get("/items", h.UserHandler.GetItems)
			r.Get("/events", h.UserHandler.GetEvents)
			r.Get("/tickets", h.UserHandler.GetTickets)
			r.Get("/reviews", h.UserHandler.GetReviews)
			r.Get("/notifications", h.UserHandler.GetNotifications)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(h.tokens))
				r.Patch("/", h.UserHandler.UpdateUser)
				r.Route("/wallet", func(r chi.Router) {
					r.Get("/", h.WalletHandler.GetBalance)
					r.Post("/deposit", h.WalletHandler.Deposit)
					r.Post("/withdraw", h.WalletHandler.Withdraw)
				})
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.JobHandler.ListJobs)
			r.Post("/", h.JobHandler.CreateJob)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.JobHandler.GetJob)
				r.Patch("/", h.JobHandler.UpdateJob)
				r.Delete("/", h.JobHandler.DeleteJob)
				r.Post("/complete", h.JobHandler.CompleteJob)
				r.Get("/applications", h.JobHandler.ListApplications)
				r.Post("/applications", h.JobHandler.Apply)
			})
		})
		r.Patch("/applications/{id}", h.JobHandler.UpdateApplication)

		r.Route("/marketplace", func(r chi.Router) {
			r.Get("/", h.MarketplaceHandler.ListItems)
			r.Post("/", h.MarketplaceHandler.CreateItem)
			r.Get("/{id}", h.MarketplaceHandler.GetItem)
			r.Patch("/{id}", h.MarketplaceHandler.UpdateItem)
			r.Delete("/{id}", h.MarketplaceHandler.DeleteItem)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.EventHandler.ListEvents)
			r.Post("/", h.EventHandler.CreateEvent)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.EventHandler.GetEvent)
				r.Patch("/", h.EventHandler.UpdateEvent)
				r.Delete("/", h.EventHandler.DeleteEvent)
				r.Get("/tickets", h.EventHandler.ListTickets)
				r.Post("/tickets", h.EventHandler.BuyTicket)
			})
		})
		r.Get("/tickets/{number}", h.EventHandler.GetTicket)
		r.Post("/tickets/{number}/check-in", h.EventHandler.CheckIn)

		r.Post("/reviews", h.ReviewHandler.CreateReview)

		r.Post("/notifications", h.NotificationHandler.CreateNotification)
		r.Patch("/notifications/{id}/read", h.NotificationHandler.MarkRead)
	})

	return r
}
