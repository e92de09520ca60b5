package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

func TestStore_MarketplaceItems(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()

	phone, err := s.CreateMarketplaceItem(ctx, &domain.MarketplaceItem{
		Title:       "Samsung Galaxy A54",
		Description: "Excellent condition smartphone",
		Price:       "950000.00",
		Category:    "Electronics",
		Condition:   domain.ConditionUsed,
		Images:      []string{"a.jpg"},
		Location:    "Freetown",
		UserID:      1,
		Status:      domain.ItemStatusSold,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusActive, phone.Status)

	laptop, err := s.CreateMarketplaceItem(ctx, &domain.MarketplaceItem{
		Title:       "HP Laptop 15-inch",
		Description: "Great laptop for work and study",
		Price:       "1200000.00",
		Category:    "Electronics",
		Condition:   domain.ConditionUsed,
		Location:    "Makeni",
		UserID:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, laptop.Images)

	items, err := s.ListMarketplaceItems(ctx, domain.ListFilter{Category: "Electronics"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, laptop.ID, items[0].ID)

	items, err = s.ListMarketplaceItems(ctx, domain.ListFilter{Search: "SMARTPHONE", Location: "free"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, phone.ID, items[0].ID)

	sold := domain.ItemStatusSold
	_, err = s.UpdateMarketplaceItem(ctx, phone.ID, domain.ItemUpdate{Status: &sold, Images: []string{"b.jpg"}})
	require.NoError(t, err)

	items, err = s.ListMarketplaceItems(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, laptop.ID, items[0].ID)

	stored, err := s.GetMarketplaceItem(ctx, phone.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg"}, stored.Images)

	mine, err := s.GetMarketplaceItemsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	require.NoError(t, s.DeleteMarketplaceItem(ctx, laptop.ID))
	assert.ErrorIs(t, s.DeleteMarketplaceItem(ctx, laptop.ID), ErrNotFound)
	_, err = s.UpdateMarketplaceItem(ctx, laptop.ID, domain.ItemUpdate{Status: &sold})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListEventsSoonestFirst(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()
	later, err := s.CreateEvent(ctx, &domain.Event{Title: "Summit", Date: time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC), TotalTickets: 300})
	require.NoError(t, err)
	sooner, err := s.CreateEvent(ctx, &domain.Event{Title: "Festival", Date: time.Date(2024, 12, 15, 19, 0, 0, 0, time.UTC), TotalTickets: 5000})
	require.NoError(t, err)
	cancelled, err := s.CreateEvent(ctx, &domain.Event{Title: "Gone", Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), TotalTickets: 1})
	require.NoError(t, err)
	_, err = s.UpdateEvent(ctx, cancelled.ID, domain.EventUpdate{Status: ptr(domain.EventStatusCancelled)})
	require.NoError(t, err)

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, sooner.ID, events[0].ID)
	assert.Equal(t, later.ID, events[1].ID)
}

func TestStore_SoldTicketsFollowTickets(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()
	e, err := s.CreateEvent(ctx, &domain.Event{Title: "Festival", TotalTickets: 100, SoldTickets: 40})
	require.NoError(t, err)
	assert.Equal(t, 0, e.SoldTickets)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_, _ = s.CreateEventTicket(ctx, &domain.EventTicket{EventID: e.ID, UserID: userID, TicketNumber: "T"})
		}(i % 4)
	}
	wg.Wait()

	event, err := s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	tickets, err := s.GetEventTickets(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, event.SoldTickets)
	assert.Len(t, tickets, event.SoldTickets)

	mine, err := s.GetEventTicketsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 5)
	for _, tk := range mine {
		assert.Equal(t, domain.TicketStatusActive, tk.Status)
	}
}

func TestStore_TicketForDeletedEvent(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()
	e, err := s.CreateEvent(ctx, &domain.Event{Title: "Festival", TotalTickets: 10})
	require.NoError(t, err)
	require.NoError(t, s.DeleteEvent(ctx, e.ID))

	ticket, err := s.CreateEventTicket(ctx, &domain.EventTicket{EventID: e.ID, UserID: 1, TicketNumber: "TICKET-1-abc"})
	require.NoError(t, err)

	found, err := s.GetEventTicketByNumber(ctx, "TICKET-1-abc")
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, found.ID)

	_, err = s.GetEventTicketByNumber(ctx, "TICKET-2-abc")
	assert.ErrorIs(t, err, ErrNotFound)

	used := domain.TicketStatusUsed
	updated, err := s.UpdateEventTicket(ctx, ticket.ID, domain.TicketUpdate{Status: &used})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusUsed, updated.Status)

	_, err = s.UpdateEventTicket(ctx, 999, domain.TicketUpdate{Status: &used})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UseEventTicketOnce(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()
	e, err := s.CreateEvent(ctx, &domain.Event{Title: "Festival", TotalTickets: 10})
	require.NoError(t, err)
	ticket, err := s.CreateEventTicket(ctx, &domain.EventTicket{EventID: e.ID, UserID: 1, TicketNumber: "TICKET-1-abc"})
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		admitted atomic.Int32
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UseEventTicket(ctx, ticket.ID)
			if err == nil {
				admitted.Add(1)
				return
			}
			assert.ErrorIs(t, err, ErrStatusChanged)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), admitted.Load())
	stored, err := s.GetEventTicketByNumber(ctx, "TICKET-1-abc")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusUsed, stored.Status)

	_, err = s.UseEventTicket(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_CloseEvent(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()
	past, err := s.CreateEvent(ctx, &domain.Event{Title: "Past", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), UserID: 7, TotalTickets: 1})
	require.NoError(t, err)
	_, err = s.CreateEvent(ctx, &domain.Event{Title: "Future", Date: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), UserID: 7, TotalTickets: 1})
	require.NoError(t, err)

	due, err := s.FindEventsEndedBefore(ctx, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, past.ID, due[0].ID)

	none, err := s.FindEventsEndedBefore(ctx, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	closed, err := s.CloseEvent(ctx, past.ID, &domain.Notification{Title: "Event finished", Type: domain.NotificationTypeEvent})
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = s.CloseEvent(ctx, past.ID, &domain.Notification{Title: "Event finished", Type: domain.NotificationTypeEvent})
	require.NoError(t, err)
	assert.False(t, closed)

	_, err = s.CloseEvent(ctx, 999, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	event, err := s.GetEvent(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCompleted, event.Status)

	notes, err := s.GetNotifications(ctx, 7)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, domain.NotificationTypeEvent, notes[0].Type)
}

func TestStore_ReviewRecomputesRating(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()
	reviewee := createUser(t, s, "sarah_k", "sarah@example.com")
	reviewer := createUser(t, s, "michael_a", "michael@example.com")

	tests := []struct {
		rating   int
		expected string
	}{
		{rating: 5, expected: "5.00"},
		{rating: 4, expected: "4.50"},
		{rating: 3, expected: "4.00"},
		{rating: 5, expected: "4.25"},
	}

	for _, tt := range tests {
		_, err := s.CreateReview(ctx, &domain.Review{ReviewerID: reviewer.ID, RevieweeID: reviewee.ID, Rating: tt.rating})
		require.NoError(t, err)
		u, err := s.GetUser(ctx, reviewee.ID)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, u.Rating)
	}

	received, err := s.GetReviewsForUser(ctx, reviewee.ID)
	require.NoError(t, err)
	assert.Len(t, received, 4)

	written, err := s.GetReviewsByUser(ctx, reviewer.ID)
	require.NoError(t, err)
	assert.Len(t, written, 4)

	r, err := s.GetUser(ctx, reviewer.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", r.Rating)
}

func TestStore_ReviewForUnknownUser(t *testing.T) {
	s := NewTestStore(t)
	jobID := 3
	review, err := s.CreateReview(context.Background(), &domain.Review{ReviewerID: 1, RevieweeID: 77, Rating: 4, JobID: &jobID})
	require.NoError(t, err)
	require.NotNil(t, review.JobID)
	assert.Equal(t, 3, *review.JobID)
}

func TestStore_Notifications(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()

	first, err := s.CreateNotification(ctx, &domain.Notification{UserID: 1, Title: "Deposit", Type: domain.NotificationTypePayment, IsRead: true})
	require.NoError(t, err)
	assert.False(t, first.IsRead)
	second, err := s.CreateNotification(ctx, &domain.Notification{UserID: 1, Title: "Withdrawal", Type: domain.NotificationTypePayment})
	require.NoError(t, err)
	_, err = s.CreateNotification(ctx, &domain.Notification{UserID: 2, Title: "Other", Type: domain.NotificationTypeSystem})
	require.NoError(t, err)

	list, err := s.GetNotifications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	require.NoError(t, s.MarkNotificationAsRead(ctx, first.ID))
	assert.ErrorIs(t, s.MarkNotificationAsRead(ctx, 999), ErrNotFound)

	list, err = s.GetNotifications(ctx, 1)
	require.NoError(t, err)
	assert.True(t, list[1].IsRead)
	assert.False(t, list[0].IsRead)
}
