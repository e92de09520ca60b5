package dto

import (
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/money"
	"github.com/shopspring/decimal"
)

type CreateEventRequestDTO struct {
	Title        string          `json:"title" validate:"required" example:"Freetown Music Festival"`
	Description  string          `json:"description" validate:"required"`
	Date         time.Time       `json:"date" validate:"required" example:"2024-12-15T19:00:00Z"`
	Location     string          `json:"location" validate:"required" example:"Freetown"`
	Venue        string          `json:"venue" validate:"required" example:"National Stadium"`
	TicketPrice  decimal.Decimal `json:"ticketPrice" validate:"money" swaggertype:"string" example:"50000.00"`
	TotalTickets int             `json:"totalTickets" validate:"required,gt=0" example:"5000"`
	Image        string          `json:"image,omitempty"`
	UserID       int             `json:"userId" validate:"required,gt=0" example:"1"`
}

func (r CreateEventRequestDTO) ToDomain() *domain.Event {
	return &domain.Event{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		Location:     r.Location,
		Venue:        r.Venue,
		TicketPrice:  money.Format(r.TicketPrice),
		TotalTickets: r.TotalTickets,
		Image:        r.Image,
		UserID:       r.UserID,
	}
}

type UpdateEventRequestDTO struct {
	Title        *string          `json:"title,omitempty" validate:"omitempty,min=1"`
	Description  *string          `json:"description,omitempty"`
	Date         *time.Time       `json:"date,omitempty"`
	Location     *string          `json:"location,omitempty" validate:"omitempty,min=1"`
	Venue        *string          `json:"venue,omitempty" validate:"omitempty,min=1"`
	TicketPrice  *decimal.Decimal `json:"ticketPrice,omitempty" validate:"omitempty,money" swaggertype:"string"`
	TotalTickets *int             `json:"totalTickets,omitempty" validate:"omitempty,gt=0"`
	Image        *string          `json:"image,omitempty"`
	Status       *string          `json:"status,omitempty" validate:"omitempty,oneof=active completed cancelled"`
}

func (r UpdateEventRequestDTO) ToDomain() domain.EventUpdate {
	return domain.EventUpdate{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		Location:     r.Location,
		Venue:        r.Venue,
		TicketPrice:  formatPtr(r.TicketPrice),
		TotalTickets: r.TotalTickets,
		Image:        r.Image,
		Status:       r.Status,
	}
}

type BuyTicketRequestDTO struct {
	UserID int `json:"userId" validate:"required,gt=0" example:"2"`
}
