package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const validRegistration = `{"username":"sarah_k","email":"sarah@example.com","password":"password123",` +
	`"firstName":"Sarah","lastName":"Kamara","phone":"+232 76 123 456","location":"Freetown"}`

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: validRegistration,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any(), "password123").
					DoAndReturn(func(_ any, u *domain.User, _ string) (*domain.User, error) {
						assert.Equal(t, "sarah_k", u.Username)
						assert.Equal(t, "Freetown", *u.Location)
						u.ID = 1
						return u, nil
					})
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusCreated,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "User already exists",
			body: validRegistration,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any(), "password123").Return(nil, authservice.ErrUserExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing required fields",
			body:         `{"username":"sarah_k","email":"sarah@example.com","password":"password123"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Server-owned field rejected",
			body:         strings.TrimSuffix(validRegistration, "}") + `,"walletBalance":"1000000.00"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Error generating token",
			body: validRegistration,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any(), "password123").Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("token generation error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Store failure",
			body: validRegistration,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any(), "password123").Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"email":"sarah@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "sarah@example.com", "password123").Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"sarah@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "sarah@example.com", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not an email",
			body:         `{"email":"sarah","password":"password123"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
