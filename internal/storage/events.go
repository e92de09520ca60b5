package storage

import (
	"context"
	"sort"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

func eventID(e domain.Event) int        { return e.ID }
func ticketID(t domain.EventTicket) int { return t.ID }

func soonestFirst(events []domain.Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].ID < events[j].ID
	})
}

// ListEvents returns active events, soonest first.
func (s *Store) ListEvents(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := collect(s.events, func(e domain.Event) bool { return e.Status == domain.EventStatusActive })
	soonestFirst(events)
	return events, nil
}

func (s *Store) GetEvent(_ context.Context, id int) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *Store) GetEventsByUser(_ context.Context, userID int) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := collect(s.events, func(e domain.Event) bool { return e.UserID == userID })
	byID(events, eventID)
	return events, nil
}

func (s *Store) CreateEvent(_ context.Context, event *domain.Event) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := *event
	e.ID = s.seq.next()
	e.SoldTickets = 0
	e.Status = domain.EventStatusActive
	e.CreatedAt = s.now()
	s.events[e.ID] = e

	return &e, nil
}

func (s *Store) UpdateEvent(_ context.Context, id int, upd domain.EventUpdate) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	set(&e.Title, upd.Title)
	set(&e.Description, upd.Description)
	set(&e.Date, upd.Date)
	set(&e.Location, upd.Location)
	set(&e.Venue, upd.Venue)
	set(&e.TicketPrice, upd.TicketPrice)
	set(&e.TotalTickets, upd.TotalTickets)
	set(&e.Image, upd.Image)
	set(&e.Status, upd.Status)
	s.events[id] = e

	return &e, nil
}

// DeleteEvent removes the event only; its tickets remain addressable.
func (s *Store) DeleteEvent(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	return nil
}

// FindEventsEndedBefore returns at most limit active events dated before t,
// oldest first.
func (s *Store) FindEventsEndedBefore(_ context.Context, t time.Time, limit uint32) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := collect(s.events, func(e domain.Event) bool {
		return e.Status == domain.EventStatusActive && e.Date.Before(t)
	})
	soonestFirst(events)
	if uint32(len(events)) > limit {
		events = events[:limit]
	}
	return events, nil
}

// CloseEvent moves an active event to completed and stores notice for its
// organiser in the same critical section. It reports false when the event
// was no longer active.
func (s *Store) CloseEvent(_ context.Context, id int, notice *domain.Notification) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return false, ErrNotFound
	}
	if e.Status != domain.EventStatusActive {
		return false, nil
	}
	e.Status = domain.EventStatusCompleted
	s.events[id] = e

	if notice != nil {
		n := *notice
		n.UserID = e.UserID
		s.insertNotification(&n)
	}
	return true, nil
}

func (s *Store) GetEventTickets(_ context.Context, eventID int) ([]domain.EventTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := collect(s.tickets, func(t domain.EventTicket) bool { return t.EventID == eventID })
	byID(tickets, ticketID)
	return tickets, nil
}

func (s *Store) GetEventTicketsByUser(_ context.Context, userID int) ([]domain.EventTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := collect(s.tickets, func(t domain.EventTicket) bool { return t.UserID == userID })
	byID(tickets, ticketID)
	return tickets, nil
}

func (s *Store) GetEventTicketByNumber(_ context.Context, number string) (*domain.EventTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tickets {
		if t.TicketNumber == number {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// CreateEventTicket stores the ticket and bumps the event's sold count in
// the same critical section. The ticket number is taken as given; a missing
// event is tolerated.
func (s *Store) CreateEventTicket(_ context.Context, ticket *domain.EventTicket) (*domain.EventTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := *ticket
	t.ID = s.seq.next()
	t.Status = domain.TicketStatusActive
	t.CreatedAt = s.now()
	s.tickets[t.ID] = t

	if e, ok := s.events[t.EventID]; ok {
		e.SoldTickets++
		s.events[e.ID] = e
	}
	return &t, nil
}

func (s *Store) UpdateEventTicket(_ context.Context, id int, upd domain.TicketUpdate) (*domain.EventTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	set(&t.Status, upd.Status)
	s.tickets[id] = t

	return &t, nil
}

// UseEventTicket moves an active ticket to used. A ticket in any other
// status is left alone and ErrStatusChanged is returned, so only one of
// several concurrent check-ins succeeds.
func (s *Store) UseEventTicket(_ context.Context, id int) (*domain.EventTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	if t.Status != domain.TicketStatusActive {
		return nil, ErrStatusChanged
	}
	t.Status = domain.TicketStatusUsed
	s.tickets[id] = t

	return &t, nil
}
