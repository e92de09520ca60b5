package storage

import (
	"context"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/money"
)

func reviewID(r domain.Review) int { return r.ID }

func copyReview(r domain.Review) *domain.Review {
	if r.JobID != nil {
		id := *r.JobID
		r.JobID = &id
	}
	return &r
}

func (s *Store) GetReviewsForUser(_ context.Context, userID int) ([]domain.Review, error) {
	return s.listReviews(func(r domain.Review) bool { return r.RevieweeID == userID }), nil
}

func (s *Store) GetReviewsByUser(_ context.Context, userID int) ([]domain.Review, error) {
	return s.listReviews(func(r domain.Review) bool { return r.ReviewerID == userID }), nil
}

func (s *Store) listReviews(keep func(domain.Review) bool) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := collect(s.reviews, keep)
	byID(reviews, reviewID)
	for i := range reviews {
		reviews[i] = *copyReview(reviews[i])
	}
	return reviews
}

// CreateReview stores the review and recomputes the reviewee's rating as the
// mean of every review they have received, in one critical section.
func (s *Store) CreateReview(_ context.Context, review *domain.Review) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *copyReview(*review)
	r.ID = s.seq.next()
	r.CreatedAt = s.now()
	s.reviews[r.ID] = r

	if u, ok := s.users[r.RevieweeID]; ok {
		var ratings []int
		for _, other := range s.reviews {
			if other.RevieweeID == r.RevieweeID {
				ratings = append(ratings, other.Rating)
			}
		}
		u.Rating = money.Mean(ratings)
		s.users[u.ID] = u
	}
	return copyReview(r), nil
}
