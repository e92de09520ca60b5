package jobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/service/jobservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*JobHandler, *MockService) {
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

func TestListJobsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListJobs(gomock.Any(), domain.ListFilter{Category: "Cleaning", Location: "free", Search: "house"}).
		Return([]domain.Job{{ID: 1, Title: "House cleaning service"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?category=Cleaning&location=free&search=house", nil)
	w := httptest.NewRecorder()
	handler.ListJobs(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "House cleaning service")
}

func TestCreateJobHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"title":"House cleaning","description":"Weekly","category":"Cleaning","budget":150000,"location":"Freetown","userId":1}`,
			prepareMock: func() {
				service.EXPECT().CreateJob(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, job *domain.Job) (*domain.Job, error) {
						assert.Equal(t, "150000.00", job.Budget)
						assert.Equal(t, 1, job.UserID)
						job.ID = 7
						return job, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Budget must be positive",
			body:         `{"title":"House cleaning","description":"Weekly","category":"Cleaning","budget":"-5","location":"Freetown","userId":1}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing title",
			body:         `{"description":"Weekly","category":"Cleaning","budget":"10","location":"Freetown","userId":1}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Status is server-owned",
			body:         `{"title":"House cleaning","description":"Weekly","category":"Cleaning","budget":"10","location":"Freetown","userId":1,"status":"completed"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.CreateJob(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestJobByIDHandlers(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		call         http.HandlerFunc
		method       string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Get found",
			call:   handler.GetJob,
			method: http.MethodGet,
			id:     "1",
			prepareMock: func() {
				service.EXPECT().GetJob(gomock.Any(), 1).Return(&domain.Job{ID: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Get missing",
			call:   handler.GetJob,
			method: http.MethodGet,
			id:     "9",
			prepareMock: func() {
				service.EXPECT().GetJob(gomock.Any(), 9).Return(nil, jobservice.ErrJobNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "Job not found",
		},
		{
			name:         "Get bad id",
			call:         handler.GetJob,
			method:       http.MethodGet,
			id:           "x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Update status",
			call:   handler.UpdateJob,
			method: http.MethodPatch,
			id:     "1",
			body:   `{"status":"cancelled"}`,
			prepareMock: func() {
				service.EXPECT().UpdateJob(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, upd domain.JobUpdate) (*domain.Job, error) {
						assert.Equal(t, "cancelled", *upd.Status)
						assert.Nil(t, upd.Title)
						return &domain.Job{ID: 1, Status: "cancelled"}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Update rejects owner change",
			call:         handler.UpdateJob,
			method:       http.MethodPatch,
			id:           "1",
			body:         `{"userId":2}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Delete",
			call:   handler.DeleteJob,
			method: http.MethodDelete,
			id:     "1",
			prepareMock: func() {
				service.EXPECT().DeleteJob(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "Job deleted successfully",
		},
		{
			name:   "Complete",
			call:   handler.CompleteJob,
			method: http.MethodPost,
			id:     "1",
			prepareMock: func() {
				service.EXPECT().CompleteJob(gomock.Any(), 1).Return(&domain.Job{ID: 1, Status: "completed"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"completed"`,
		},
		{
			name:   "Complete cancelled",
			call:   handler.CompleteJob,
			method: http.MethodPost,
			id:     "2",
			prepareMock: func() {
				service.EXPECT().CompleteJob(gomock.Any(), 2).Return(nil, jobservice.ErrJobNotActive)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "List applications",
			call:   handler.ListApplications,
			method: http.MethodGet,
			id:     "1",
			prepareMock: func() {
				service.EXPECT().ListApplications(gomock.Any(), 1).Return([]domain.JobApplication{{ID: 4, JobID: 1}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Apply",
			call:   handler.Apply,
			method: http.MethodPost,
			id:     "1",
			body:   `{"userId":2,"message":"I can help"}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), 1, 2, "I can help").Return(&domain.JobApplication{ID: 4}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Apply to closed job",
			call:   handler.Apply,
			method: http.MethodPost,
			id:     "1",
			body:   `{"userId":2}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), 1, 2, "").Return(nil, jobservice.ErrJobNotActive)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Apply to own job",
			call:   handler.Apply,
			method: http.MethodPost,
			id:     "1",
			body:   `{"userId":1}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), 1, 1, "").Return(nil, jobservice.ErrOwnJob)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Accept application",
			call:   handler.UpdateApplication,
			method: http.MethodPatch,
			id:     "4",
			body:   `{"status":"accepted"}`,
			prepareMock: func() {
				service.EXPECT().UpdateApplication(gomock.Any(), 4, gomock.Any()).Return(&domain.JobApplication{ID: 4, Status: "accepted"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown application status",
			call:         handler.UpdateApplication,
			method:       http.MethodPatch,
			id:           "4",
			body:         `{"status":"maybe"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Application missing",
			call:   handler.UpdateApplication,
			method: http.MethodPatch,
			id:     "44",
			body:   `{"status":"rejected"}`,
			prepareMock: func() {
				service.EXPECT().UpdateApplication(gomock.Any(), 44, gomock.Any()).Return(nil, jobservice.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Store failure",
			call:   handler.DeleteJob,
			method: http.MethodDelete,
			id:     "1",
			prepareMock: func() {
				service.EXPECT().DeleteJob(gomock.Any(), 1).Return(errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := withID(httptest.NewRequest(tt.method, "/", strings.NewReader(tt.body)), tt.id)
			w := httptest.NewRecorder()

			tt.call(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
