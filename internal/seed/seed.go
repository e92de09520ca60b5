// Package seed loads the sample users, jobs, items and events a fresh
// marketplace starts with.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const samplePassword = "password123"

// Repo is the subset of the store the seed writes through. Going through
// the regular operations keeps applicant counts and ratings consistent with
// the rows that produce them.
type Repo interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, upd domain.UserUpdate) (*domain.User, error)
	SetUserVerified(ctx context.Context, id int, verified bool) (*domain.User, error)
	AdjustUserBalance(ctx context.Context, id int, delta decimal.Decimal) (*domain.User, error)
	CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error)
	CreateJobApplication(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	CreateMarketplaceItem(ctx context.Context, item *domain.MarketplaceItem) (*domain.MarketplaceItem, error)
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

type sampleUser struct {
	user    domain.User
	image   string
	balance string
}

func ptr[T any](v T) *T {
	return &v
}

// Load writes the sample data. Event dates are placed in the future relative
// to now so the sweeper does not close them on its first pass.
func Load(ctx context.Context, repo Repo, hasher auth.HashServiceInterface, now time.Time) error {
	hash, err := hasher.HashPassword(samplePassword)
	if err != nil {
		return fmt.Errorf("hash sample password: %w", err)
	}

	samples := []sampleUser{
		{
			user: domain.User{
				Username:     "sarah_k",
				Email:        "sarah@example.com",
				PasswordHash: hash,
				FirstName:    "Sarah",
				LastName:     "Kamara",
				Phone:        "+23276123456",
				Location:     ptr("Freetown, Western Area"),
				Skills:       []string{"Mathematics", "Tutoring", "Teaching"},
			},
			image:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			balance: "125000.00",
		},
		{
			user: domain.User{
				Username:     "michael_a",
				Email:        "michael@example.com",
				PasswordHash: hash,
				FirstName:    "Michael",
				LastName:     "Conteh",
				Phone:        "+23276234567",
				Location:     ptr("Bo, Southern Province"),
				Skills:       []string{"Web Design", "Programming", "Digital Marketing"},
			},
			image:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			balance: "85000.00",
		},
	}

	ids := make([]int, 0, len(samples))
	for _, s := range samples {
		u, err := repo.CreateUser(ctx, &s.user)
		if err != nil {
			return fmt.Errorf("create user %s: %w", s.user.Username, err)
		}
		if _, err := repo.UpdateUser(ctx, u.ID, domain.UserUpdate{ProfileImage: ptr(s.image)}); err != nil {
			return fmt.Errorf("update user %s: %w", s.user.Username, err)
		}
		if _, err := repo.SetUserVerified(ctx, u.ID, true); err != nil {
			return fmt.Errorf("verify user %s: %w", s.user.Username, err)
		}
		if _, err := repo.AdjustUserBalance(ctx, u.ID, decimal.RequireFromString(s.balance)); err != nil {
			return fmt.Errorf("credit user %s: %w", s.user.Username, err)
		}
		ids = append(ids, u.ID)
	}
	sarah, michael := ids[0], ids[1]

	jobs := []domain.Job{
		{
			Title:       "House Cleaning Service",
			Description: "Need someone to clean a 3-bedroom house. Must be reliable and bring own supplies.",
			Category:    "Cleaning",
			Budget:      "25000.00",
			Location:    "Freetown, Western Area",
			Coordinates: &domain.Coordinates{Lat: 8.4606, Lng: -13.2317},
			UserID:      sarah,
			Urgency:     domain.UrgencyNormal,
		},
		{
			Title:       "Delivery Driver",
			Description: "Delivery packages across the city. Must have own motorbike.",
			Category:    "Delivery",
			Budget:      "15000.00",
			Location:    "Bo, Southern Province",
			Coordinates: &domain.Coordinates{Lat: 7.9644, Lng: -11.7383},
			UserID:      michael,
			Urgency:     domain.UrgencyUrgent,
		},
	}
	applicants := []int{michael, sarah}
	for i := range jobs {
		job, err := repo.CreateJob(ctx, &jobs[i])
		if err != nil {
			return fmt.Errorf("create job %q: %w", jobs[i].Title, err)
		}
		if _, err := repo.CreateJobApplication(ctx, &domain.JobApplication{
			JobID:   job.ID,
			UserID:  applicants[i],
			Message: "I am available and can start right away.",
		}); err != nil {
			return fmt.Errorf("apply to job %d: %w", job.ID, err)
		}
	}

	items := []domain.MarketplaceItem{
		{
			Title:       "Samsung Galaxy A54",
			Description: "Excellent condition smartphone with all original accessories. Used for 6 months.",
			Price:       "950000.00",
			Category:    "Electronics",
			Condition:   domain.ConditionUsed,
			Images:      []string{"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=200&fit=crop"},
			Location:    "Freetown",
			UserID:      sarah,
		},
		{
			Title:       "HP Laptop 15-inch",
			Description: "Great laptop for work and study. Intel i5 processor, 8GB RAM, 256GB SSD.",
			Price:       "1200000.00",
			Category:    "Electronics",
			Condition:   domain.ConditionUsed,
			Images:      []string{"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300&h=200&fit=crop"},
			Location:    "Makeni",
			UserID:      michael,
		},
	}
	for i := range items {
		if _, err := repo.CreateMarketplaceItem(ctx, &items[i]); err != nil {
			return fmt.Errorf("create item %q: %w", items[i].Title, err)
		}
	}

	day := now.Truncate(24 * time.Hour)
	events := []domain.Event{
		{
			Title: "African Music Festival",
			Description: "Join us for an amazing night of traditional and modern African music " +
				"featuring top artists from across West Africa.",
			Date:         day.AddDate(0, 0, 30).Add(19 * time.Hour),
			Location:     "Freetown",
			Venue:        "National Stadium",
			TicketPrice:  "50000.00",
			TotalTickets: 5000,
			Image:        "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=500&h=250&fit=crop",
			UserID:       sarah,
		},
		{
			Title: "Young Entrepreneurs Summit",
			Description: "Network with fellow entrepreneurs, learn from successful business leaders, " +
				"and discover new opportunities.",
			Date:         day.AddDate(0, 0, 35).Add(9 * time.Hour),
			Location:     "Freetown",
			Venue:        "Bintumani Hotel",
			TicketPrice:  "75000.00",
			TotalTickets: 300,
			Image:        "https://images.unsplash.com/photo-1515187029135-18ee286d815b?w=500&h=250&fit=crop",
			UserID:       michael,
		},
	}
	for i := range events {
		if _, err := repo.CreateEvent(ctx, &events[i]); err != nil {
			return fmt.Errorf("create event %q: %w", events[i].Title, err)
		}
	}

	reviews := []domain.Review{
		{ReviewerID: michael, RevieweeID: sarah, Rating: 5, Comment: "Patient and clear tutor."},
		{ReviewerID: sarah, RevieweeID: michael, Rating: 4, Comment: "Good work, delivered on time."},
	}
	for i := range reviews {
		if _, err := repo.CreateReview(ctx, &reviews[i]); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
	}

	zap.L().Info("Sample data loaded",
		zap.Int("users", len(samples)),
		zap.Int("jobs", len(jobs)),
		zap.Int("items", len(items)),
		zap.Int("events", len(events)),
	)
	return nil
}
