package eventservice

//go:generate mockgen -source=eventservice.go -destination=eventservice_mock.go -package=eventservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/storage"
	"github.com/GlebRadaev/marketplace/pkg/money"
	"github.com/GlebRadaev/marketplace/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEventNotActive      = errors.New("event is not on sale")
	ErrSoldOut             = errors.New("event is sold out")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketNumber = errors.New("invalid ticket number")
	ErrTicketNotActive     = errors.New("ticket is not active")
)

const ticketPrefix = "TICKET"

type Repo interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int) (*domain.Event, error)
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int, upd domain.EventUpdate) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	GetEventTickets(ctx context.Context, eventID int) ([]domain.EventTicket, error)
	GetEventTicketByNumber(ctx context.Context, number string) (*domain.EventTicket, error)
	CreateEventTicket(ctx context.Context, ticket *domain.EventTicket) (*domain.EventTicket, error)
	UseEventTicket(ctx context.Context, id int) (*domain.EventTicket, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

type Option func(*Service)

// WithClock sets the time source used for ticket numbers.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(repo Repo, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx)
}

func (s *Service) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	event, err := s.repo.GetEvent(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	return event, err
}

func (s *Service) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	price, err := money.Normalize(event.TicketPrice)
	if err != nil {
		return nil, err
	}
	event.TicketPrice = price

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		zap.L().Error("can't create event", zap.Error(err))
		return nil, err
	}
	zap.L().Info("event created", zap.Int("id", created.ID), zap.Time("date", created.Date))
	return created, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id int, upd domain.EventUpdate) (*domain.Event, error) {
	if upd.TicketPrice != nil {
		price, err := money.Normalize(*upd.TicketPrice)
		if err != nil {
			return nil, err
		}
		upd.TicketPrice = &price
	}
	event, err := s.repo.UpdateEvent(ctx, id, upd)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	return event, err
}

func (s *Service) DeleteEvent(ctx context.Context, id int) error {
	err := s.repo.DeleteEvent(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrEventNotFound
	}
	return err
}

func (s *Service) ListTickets(ctx context.Context, eventID int) ([]domain.EventTicket, error) {
	return s.repo.GetEventTickets(ctx, eventID)
}

// BuyTicket issues a ticket for an active event that still has seats.
func (s *Service) BuyTicket(ctx context.Context, eventID, userID int) (*domain.EventTicket, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventStatusActive {
		return nil, ErrEventNotActive
	}
	if event.SoldOut() {
		return nil, ErrSoldOut
	}

	number, err := s.ticketNumber()
	if err != nil {
		return nil, err
	}
	ticket, err := s.repo.CreateEventTicket(ctx, &domain.EventTicket{
		EventID:      eventID,
		UserID:       userID,
		TicketNumber: number,
	})
	if err != nil {
		zap.L().Error("can't create ticket", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("ticket sold", zap.Int("event_id", eventID), zap.String("number", number))
	return ticket, nil
}

// ticketNumber builds TICKET-<unix ms><check digit>-<9 chars>.
func (s *Service) ticketNumber() (string, error) {
	base := strconv.FormatInt(s.now().UnixMilli(), 10)
	digit, err := validate.LuhnCheckDigit(base)
	if err != nil {
		return "", err
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("%s-%s%s-%s", ticketPrefix, base, digit, suffix), nil
}

// VerifyTicket rejects numbers whose serial fails the check digit before
// looking the ticket up.
func (s *Service) VerifyTicket(ctx context.Context, number string) (*domain.EventTicket, error) {
	parts := strings.Split(number, "-")
	if len(parts) != 3 || parts[0] != ticketPrefix || !validate.IsLuhn(parts[1]) {
		return nil, ErrInvalidTicketNumber
	}
	ticket, err := s.repo.GetEventTicketByNumber(ctx, number)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrTicketNotFound
	}
	return ticket, err
}

// CheckInTicket marks an active ticket as used. The status is rechecked by
// the store on write, so a ticket scanned at two gates is admitted once.
func (s *Service) CheckInTicket(ctx context.Context, number string) (*domain.EventTicket, error) {
	ticket, err := s.VerifyTicket(ctx, number)
	if err != nil {
		return nil, err
	}
	if ticket.Status != domain.TicketStatusActive {
		return nil, ErrTicketNotActive
	}
	ticket, err = s.repo.UseEventTicket(ctx, ticket.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, ErrTicketNotFound
	case errors.Is(err, storage.ErrStatusChanged):
		return nil, ErrTicketNotActive
	}
	if err != nil {
		return nil, err
	}
	zap.L().Info("ticket checked in", zap.String("number", number))
	return ticket, nil
}
