package eventservice

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.UnixMilli(1734278400000)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo, WithClock(func() time.Time { return fixedNow })), repo
}

func TestTicketNumber(t *testing.T) {
	service, _ := NewMock(t)

	number, err := service.ticketNumber()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^TICKET-1734278400000\d-[0-9A-F]{9}$`), number)
	assert.True(t, validate.IsLuhn(strings.Split(number, "-")[1]))

	other, err := service.ticketNumber()
	require.NoError(t, err)
	assert.NotEqual(t, number, other)
}

func TestBuyTicket(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Ticket issued",
			prepareMock: func() {
				repo.EXPECT().GetEvent(ctx, 1).Return(&domain.Event{ID: 1, Status: domain.EventStatusActive, TotalTickets: 10, SoldTickets: 9}, nil)
				repo.EXPECT().CreateEventTicket(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tk *domain.EventTicket) (*domain.EventTicket, error) {
					assert.Equal(t, 1, tk.EventID)
					assert.Equal(t, 4, tk.UserID)
					assert.True(t, strings.HasPrefix(tk.TicketNumber, "TICKET-"))
					tk.ID = 20
					tk.Status = domain.TicketStatusActive
					return tk, nil
				})
			},
		},
		{
			name: "Missing event",
			prepareMock: func() {
				repo.EXPECT().GetEvent(ctx, 1).Return(nil, storage.ErrNotFound)
			},
			expectedError: ErrEventNotFound,
		},
		{
			name: "Cancelled event",
			prepareMock: func() {
				repo.EXPECT().GetEvent(ctx, 1).Return(&domain.Event{ID: 1, Status: domain.EventStatusCancelled, TotalTickets: 10}, nil)
			},
			expectedError: ErrEventNotActive,
		},
		{
			name: "Sold out",
			prepareMock: func() {
				repo.EXPECT().GetEvent(ctx, 1).Return(&domain.Event{ID: 1, Status: domain.EventStatusActive, TotalTickets: 10, SoldTickets: 10}, nil)
			},
			expectedError: ErrSoldOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			ticket, err := service.BuyTicket(ctx, 1, 4)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, ticket)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 20, ticket.ID)
		})
	}
}

func TestVerifyAndCheckIn(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	number, err := service.ticketNumber()
	require.NoError(t, err)

	_, err = service.VerifyTicket(ctx, "TICKET-17342784000001-ABCDEFGHI")
	assert.ErrorIs(t, err, ErrInvalidTicketNumber)
	_, err = service.VerifyTicket(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidTicketNumber)

	repo.EXPECT().GetEventTicketByNumber(ctx, number).Return(nil, storage.ErrNotFound)
	_, err = service.VerifyTicket(ctx, number)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	active := &domain.EventTicket{ID: 3, TicketNumber: number, Status: domain.TicketStatusActive}
	used := domain.TicketStatusUsed
	repo.EXPECT().GetEventTicketByNumber(ctx, number).Return(active, nil)
	repo.EXPECT().UseEventTicket(ctx, 3).
		Return(&domain.EventTicket{ID: 3, TicketNumber: number, Status: used}, nil)
	ticket, err := service.CheckInTicket(ctx, number)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusUsed, ticket.Status)

	// checked in at another gate after the lookup
	repo.EXPECT().GetEventTicketByNumber(ctx, number).Return(active, nil)
	repo.EXPECT().UseEventTicket(ctx, 3).Return(nil, storage.ErrStatusChanged)
	_, err = service.CheckInTicket(ctx, number)
	assert.ErrorIs(t, err, ErrTicketNotActive)

	repo.EXPECT().GetEventTicketByNumber(ctx, number).Return(&domain.EventTicket{ID: 3, Status: used}, nil)
	_, err = service.CheckInTicket(ctx, number)
	assert.ErrorIs(t, err, ErrTicketNotActive)
}

func TestEventCRUD(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().CreateEvent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.Event) (*domain.Event, error) {
		assert.Equal(t, "50000.00", e.TicketPrice)
		e.ID = 1
		return e, nil
	})
	event, err := service.CreateEvent(ctx, &domain.Event{Title: "Festival", TicketPrice: "50000", TotalTickets: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, event.ID)

	repo.EXPECT().ListEvents(ctx).Return([]domain.Event{*event}, nil)
	events, err := service.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	repo.EXPECT().UpdateEvent(ctx, 2, gomock.Any()).Return(nil, storage.ErrNotFound)
	_, err = service.UpdateEvent(ctx, 2, domain.EventUpdate{})
	assert.ErrorIs(t, err, ErrEventNotFound)

	repo.EXPECT().DeleteEvent(ctx, 2).Return(storage.ErrNotFound)
	assert.ErrorIs(t, service.DeleteEvent(ctx, 2), ErrEventNotFound)

	repo.EXPECT().GetEventTickets(ctx, 1).Return([]domain.EventTicket{}, nil)
	tickets, err := service.ListTickets(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}
