package wallet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/marketplace/internal/service/walletservice"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func request(method, body string, pathID string, caller int) *http.Request {
	req := httptest.NewRequest(method, "/api/users/"+pathID+"/wallet", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", pathID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if caller != 0 {
		ctx = context.WithValue(ctx, auth.UserIDKey, caller)
	}
	return req.WithContext(ctx)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		caller       int
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Own balance",
			caller: 1,
			prepareMock: func() {
				service.EXPECT().Balance(gomock.Any(), 1).Return("250000.00", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":"250000.00"}`,
		},
		{
			name:         "Someone else's balance",
			caller:       2,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"Forbidden"}`,
		},
		{
			name:         "No caller in context",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"Forbidden"}`,
		},
		{
			name:   "User vanished",
			caller: 1,
			prepareMock: func() {
				service.EXPECT().Balance(gomock.Any(), 1).Return("", walletservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"User not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.GetBalance(w, request(http.MethodGet, "", "1", tt.caller))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Deposit via Orange Money",
			body: `{"amount":"15000.50","method":"orange"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, "15000.5", "orange").Return("265000.50", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Deposit successful","balance":"265000.50"}`,
		},
		{
			name: "Numeric amount",
			body: `{"amount":100,"method":"mtn"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, "100", "mtn").Return("250100.00", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Deposit successful","balance":"250100.00"}`,
		},
		{
			name:         "Zero amount",
			body:         `{"amount":"0","method":"orange"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid amount"}`,
		},
		{
			name:         "Negative amount",
			body:         `{"amount":"-10","method":"orange"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid amount"}`,
		},
		{
			name:         "Missing method",
			body:         `{"amount":"10"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid amount"}`,
		},
		{
			name: "Unknown method",
			body: `{"amount":"10","method":"paypal"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, "10", "paypal").Return("", walletservice.ErrUnknownMethod)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Unknown payment method"}`,
		},
		{
			name: "Store failure",
			body: `{"amount":"10","method":"bank"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, "10", "bank").Return("", errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.Deposit(w, request(http.MethodPost, tt.body, "1", 1))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		pathID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Withdraw to Africell Money",
			body:   `{"amount":"5000","method":"africell"}`,
			pathID: "1",
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, "5000", "africell").Return("245000.00", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Insufficient balance",
			body:   `{"amount":"1000000","method":"orange"}`,
			pathID: "1",
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, "1000000", "orange").Return("", walletservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Other user's wallet",
			body:         `{"amount":"5000","method":"orange"}`,
			pathID:       "2",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Bad user id",
			body:         `{"amount":"5000","method":"orange"}`,
			pathID:       "me",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.Withdraw(w, request(http.MethodPost, tt.body, tt.pathID, 1))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
