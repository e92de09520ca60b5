package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/service/userservice"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asCaller(r *http.Request, id int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, id))
}

func TestGetUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{ID: 1, Username: "sarah_k"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"username":"sarah_k"`,
		},
		{
			name: "Not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 99).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "User not found",
		},
		{
			name:         "Non-numeric id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid user id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := withID(httptest.NewRequest(http.MethodGet, "/api/users/"+tt.id, nil), tt.id)
			w := httptest.NewRecorder()

			handler.GetUser(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		caller       int
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Updates own profile",
			body:   `{"location":"Bo","skills":["plumbing"]}`,
			caller: 1,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, upd domain.UserUpdate) (*domain.User, error) {
						assert.Equal(t, "Bo", *upd.Location)
						assert.Equal(t, []string{"plumbing"}, upd.Skills)
						return &domain.User{ID: 1}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Someone else's profile",
			body:         `{"location":"Bo"}`,
			caller:       2,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Rating cannot be set",
			body:         `{"rating":5}`,
			caller:       1,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Wallet balance cannot be set",
			body:         `{"walletBalance":"1000000"}`,
			caller:       1,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Verification cannot be set",
			body:         `{"isVerified":true}`,
			caller:       1,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "User vanished",
			body:   `{"phone":"+232 77 000 000"}`,
			caller: 1,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), 1, gomock.Any()).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPatch, "/api/users/1", strings.NewReader(tt.body))
			req = asCaller(withID(req, "1"), tt.caller)
			w := httptest.NewRecorder()

			handler.UpdateUser(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Jobs", func(t *testing.T) {
		service.EXPECT().GetJobs(gomock.Any(), 1).Return([]domain.Job{{ID: 3, Title: "Tutor"}}, nil)
		w := httptest.NewRecorder()
		handler.GetJobs(w, withID(httptest.NewRequest(http.MethodGet, "/api/users/1/jobs", nil), "1"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Tutor"`)
	})

	t.Run("Empty tickets", func(t *testing.T) {
		service.EXPECT().GetTickets(gomock.Any(), 1).Return([]domain.EventTicket{}, nil)
		w := httptest.NewRecorder()
		handler.GetTickets(w, withID(httptest.NewRequest(http.MethodGet, "/api/users/1/tickets", nil), "1"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		service.EXPECT().GetNotifications(gomock.Any(), 1).Return(nil, errors.New("boom"))
		w := httptest.NewRecorder()
		handler.GetNotifications(w, withID(httptest.NewRequest(http.MethodGet, "/api/users/1/notifications", nil), "1"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetReviews(w, withID(httptest.NewRequest(http.MethodGet, "/api/users/0/reviews", nil), "0"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Other lists", func(t *testing.T) {
		service.EXPECT().GetApplications(gomock.Any(), 1).Return(nil, nil)
		service.EXPECT().GetItems(gomock.Any(), 1).Return(nil, nil)
		service.EXPECT().GetEvents(gomock.Any(), 1).Return(nil, nil)
		service.EXPECT().GetReviews(gomock.Any(), 1).Return(nil, nil)
		for _, h := range []http.HandlerFunc{handler.GetApplications, handler.GetItems, handler.GetEvents, handler.GetReviews} {
			w := httptest.NewRecorder()
			h(w, withID(httptest.NewRequest(http.MethodGet, "/", nil), "1"))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
