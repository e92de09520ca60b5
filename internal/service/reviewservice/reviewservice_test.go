package reviewservice

import (
	"context"
	"testing"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		review        domain.Review
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Review stored",
			review: domain.Review{ReviewerID: 2, RevieweeID: 1, Rating: 5, Comment: "Great"},
			prepareMock: func() {
				repo.EXPECT().GetUser(ctx, 1).Return(&domain.User{ID: 1}, nil)
				repo.EXPECT().CreateReview(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
					r.ID = 9
					return r, nil
				})
			},
		},
		{
			name:          "Rating out of range",
			review:        domain.Review{ReviewerID: 2, RevieweeID: 1, Rating: 6},
			prepareMock:   func() {},
			expectedError: ErrInvalidRating,
		},
		{
			name:          "Self review",
			review:        domain.Review{ReviewerID: 1, RevieweeID: 1, Rating: 5},
			prepareMock:   func() {},
			expectedError: ErrSelfReview,
		},
		{
			name:   "Unknown reviewee",
			review: domain.Review{ReviewerID: 2, RevieweeID: 77, Rating: 3},
			prepareMock: func() {
				repo.EXPECT().GetUser(ctx, 77).Return(nil, storage.ErrNotFound)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			review := tt.review
			created, err := service.Create(ctx, &review)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 9, created.ID)
		})
	}
}

func TestListForUser(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().GetReviewsForUser(ctx, 1).Return([]domain.Review{{ID: 1}, {ID: 2}}, nil)
	reviews, err := service.ListForUser(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
}
