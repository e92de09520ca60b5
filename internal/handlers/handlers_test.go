package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/marketplace/internal/handlers/auth"
	"github.com/GlebRadaev/marketplace/internal/handlers/events"
	"github.com/GlebRadaev/marketplace/internal/handlers/jobs"
	"github.com/GlebRadaev/marketplace/internal/handlers/marketplace"
	"github.com/GlebRadaev/marketplace/internal/handlers/notifications"
	"github.com/GlebRadaev/marketplace/internal/handlers/reviews"
	"github.com/GlebRadaev/marketplace/internal/handlers/users"
	"github.com/GlebRadaev/marketplace/internal/handlers/wallet"
	"github.com/GlebRadaev/marketplace/internal/service"
	pkgauth "github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         auth.NewMockService(ctrl),
		UserService:         users.NewMockService(ctrl),
		JobService:          jobs.NewMockService(ctrl),
		MarketService:       marketplace.NewMockService(ctrl),
		EventService:        events.NewMockService(ctrl),
		ReviewService:       reviews.NewMockService(ctrl),
		NotificationService: notifications.NewMockService(ctrl),
		WalletService:       wallet.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.WalletHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewMockAuthHandler(ctrl)
	userHandler := NewMockUserHandler(ctrl)
	jobHandler := NewMockJobHandler(ctrl)
	marketHandler := NewMockMarketplaceHandler(ctrl)
	eventHandler := NewMockEventHandler(ctrl)
	reviewHandler := NewMockReviewHandler(ctrl)
	notificationHandler := NewMockNotificationHandler(ctrl)
	walletHandler := NewMockWalletHandler(ctrl)
	tokens := pkgauth.NewMockJWTServiceInterface(ctrl)

	anyTimes := func(c *gomock.Call) { c.AnyTimes() }
	anyTimes(authHandler.EXPECT().Register(gomock.Any(), gomock.Any()))
	anyTimes(authHandler.EXPECT().Login(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().GetUser(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().UpdateUser(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().GetJobs(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().GetApplications(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().GetItems(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().GetEvents(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().GetTickets(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().GetReviews(gomock.Any(), gomock.Any()))
	anyTimes(userHandler.EXPECT().GetNotifications(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().ListJobs(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().GetJob(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().CreateJob(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().UpdateJob(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().DeleteJob(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().CompleteJob(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().ListApplications(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().Apply(gomock.Any(), gomock.Any()))
	anyTimes(jobHandler.EXPECT().UpdateApplication(gomock.Any(), gomock.Any()))
	anyTimes(marketHandler.EXPECT().ListItems(gomock.Any(), gomock.Any()))
	anyTimes(marketHandler.EXPECT().GetItem(gomock.Any(), gomock.Any()))
	anyTimes(marketHandler.EXPECT().CreateItem(gomock.Any(), gomock.Any()))
	anyTimes(marketHandler.EXPECT().UpdateItem(gomock.Any(), gomock.Any()))
	anyTimes(marketHandler.EXPECT().DeleteItem(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().ListEvents(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().GetEvent(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().CreateEvent(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().UpdateEvent(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().DeleteEvent(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().ListTickets(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().BuyTicket(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().GetTicket(gomock.Any(), gomock.Any()))
	anyTimes(eventHandler.EXPECT().CheckIn(gomock.Any(), gomock.Any()))
	anyTimes(reviewHandler.EXPECT().CreateReview(gomock.Any(), gomock.Any()))
	anyTimes(notificationHandler.EXPECT().CreateNotification(gomock.Any(), gomock.Any()))
	anyTimes(notificationHandler.EXPECT().MarkRead(gomock.Any(), gomock.Any()))
	anyTimes(walletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()))
	anyTimes(walletHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()))
	anyTimes(walletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()))
	anyTimes(tokens.EXPECT().ValidateToken("good").Return(&pkgauth.Claims{UserID: 1}, nil))

	h := &Handlers{
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		JobHandler:          jobHandler,
		MarketplaceHandler:  marketHandler,
		EventHandler:        eventHandler,
		ReviewHandler:       reviewHandler,
		NotificationHandler: notificationHandler,
		WalletHandler:       walletHandler,
		tokens:              tokens,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/auth/register", "", http.StatusOK},
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"GET", "/api/users/1", "", http.StatusOK},
		{"GET", "/api/users/1/jobs", "", http.StatusOK},
		{"GET", "/api/users/1/applications", "", http.StatusOK},
		{"GET", "/api/users/1/items", "", http.StatusOK},
		{"GET", "/api/users/1/events", "", http.StatusOK},
		{"GET", "/api/users/1/tickets", "", http.StatusOK},
		{"GET", "/api/users/1/reviews", "", http.StatusOK},
		{"GET", "/api/users/1/notifications", "", http.StatusOK},
		{"PATCH", "/api/users/1", "", http.StatusUnauthorized},
		{"PATCH", "/api/users/1", "good", http.StatusOK},
		{"GET", "/api/users/1/wallet", "", http.StatusUnauthorized},
		{"GET", "/api/users/1/wallet", "good", http.StatusOK},
		{"POST", "/api/users/1/wallet/deposit", "", http.StatusUnauthorized},
		{"POST", "/api/users/1/wallet/deposit", "good", http.StatusOK},
		{"POST", "/api/users/1/wallet/withdraw", "", http.StatusUnauthorized},
		{"POST", "/api/users/1/wallet/withdraw", "good", http.StatusOK},
		{"GET", "/api/jobs", "", http.StatusOK},
		{"POST", "/api/jobs", "", http.StatusOK},
		{"GET", "/api/jobs/1", "", http.StatusOK},
		{"PATCH", "/api/jobs/1", "", http.StatusOK},
		{"DELETE", "/api/jobs/1", "", http.StatusOK},
		{"POST", "/api/jobs/1/complete", "", http.StatusOK},
		{"GET", "/api/jobs/1/applications", "", http.StatusOK},
		{"POST", "/api/jobs/1/applications", "", http.StatusOK},
		{"PATCH", "/api/applications/1", "", http.StatusOK},
		{"GET", "/api/marketplace", "", http.StatusOK},
		{"POST", "/api/marketplace", "", http.StatusOK},
		{"GET", "/api/marketplace/1", "", http.StatusOK},
		{"PATCH", "/api/marketplace/1", "", http.StatusOK},
		{"DELETE", "/api/marketplace/1", "", http.StatusOK},
		{"GET", "/api/events", "", http.StatusOK},
		{"POST", "/api/events", "", http.StatusOK},
		{"GET", "/api/events/1", "", http.StatusOK},
		{"PATCH", "/api/events/1", "", http.StatusOK},
		{"DELETE", "/api/events/1", "", http.StatusOK},
		{"GET", "/api/events/1/tickets", "", http.StatusOK},
		{"POST", "/api/events/1/tickets", "", http.StatusOK},
		{"GET", "/api/tickets/TICKET-1-ABC", "", http.StatusOK},
		{"POST", "/api/tickets/TICKET-1-ABC/check-in", "", http.StatusOK},
		{"POST", "/api/reviews", "", http.StatusOK},
		{"POST", "/api/notifications", "", http.StatusOK},
		{"PATCH", "/api/notifications/1/read", "", http.StatusOK},
		{"GET", "/swagger/doc.json", "", http.StatusOK},
		{"PUT", "/api/jobs/1", "", http.StatusMethodNotAllowed},
		{"GET", "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
