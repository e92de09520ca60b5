package events

//go:generate mockgen -source=events.go -destination=events_mock.go -package=events

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/service/eventservice"
	"github.com/GlebRadaev/marketplace/pkg/utils"
	"github.com/GlebRadaev/marketplace/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int) (*domain.Event, error)
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int, upd domain.EventUpdate) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	ListTickets(ctx context.Context, eventID int) ([]domain.EventTicket, error)
	BuyTicket(ctx context.Context, eventID, userID int) (*domain.EventTicket, error)
	VerifyTicket(ctx context.Context, number string) (*domain.EventTicket, error)
	CheckInTicket(ctx context.Context, number string) (*domain.EventTicket, error)
}

type EventHandler struct {
	eventService Service
}

func New(eventService Service) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEvents godoc
//
//	@Summary	Upcoming active events, soonest first
//	@Tags		Events
//	@Produce	json
//	@Success	200	{array}	domain.Event
//	@Router		/api/events [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, events)
}

// GetEvent godoc
//
//	@Summary	Get an event
//	@Tags		Events
//	@Produce	json
//	@Param		id	path		int	true	"Event ID"
//	@Success	200	{object}	domain.Event
//	@Failure	404	{object}	utils.Response	"Event not found"
//	@Router		/api/events/{id} [get]
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	event, err := h.eventService.GetEvent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, event)
}

// CreateEvent godoc
//
//	@Summary	Create an event
//	@Tags		Events
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateEventRequestDTO	true	"Event"
//	@Success	201		{object}	domain.Event
//	@Failure	400		{object}	utils.Response	"Invalid event data"
//	@Router		/api/events [post]
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event data")
		return
	}
	event, err := h.eventService.CreateEvent(r.Context(), req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
//
//	@Summary	Update an event
//	@Tags		Events
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Event ID"
//	@Param		request	body		dto.UpdateEventRequestDTO	true	"Fields to change"
//	@Success	200		{object}	domain.Event
//	@Failure	400		{object}	utils.Response	"Invalid event data"
//	@Failure	404		{object}	utils.Response	"Event not found"
//	@Router		/api/events/{id} [patch]
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	var req dto.UpdateEventRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event data")
		return
	}
	event, err := h.eventService.UpdateEvent(r.Context(), id, req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
//
//	@Summary	Delete an event
//	@Tags		Events
//	@Produce	json
//	@Param		id	path		int	true	"Event ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Event not found"
//	@Router		/api/events/{id} [delete]
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	if err := h.eventService.DeleteEvent(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Event deleted successfully"})
}

// ListTickets godoc
//
//	@Summary	Tickets sold for an event
//	@Tags		Tickets
//	@Produce	json
//	@Param		id	path	int	true	"Event ID"
//	@Success	200	{array}	domain.EventTicket
//	@Router		/api/events/{id}/tickets [get]
func (h *EventHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	tickets, err := h.eventService.ListTickets(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tickets)
}

// BuyTicket godoc
//
//	@Summary	Buy a ticket
//	@Tags		Tickets
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Event ID"
//	@Param		request	body		dto.BuyTicketRequestDTO	true	"Buyer"
//	@Success	201		{object}	domain.EventTicket
//	@Failure	400		{object}	utils.Response	"Invalid ticket data"
//	@Failure	404		{object}	utils.Response	"Event not found"
//	@Failure	409		{object}	utils.Response	"Event sold out or not on sale"
//	@Router		/api/events/{id}/tickets [post]
func (h *EventHandler) BuyTicket(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	var req dto.BuyTicketRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ticket data")
		return
	}
	ticket, err := h.eventService.BuyTicket(r.Context(), id, req.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, ticket)
}

// GetTicket godoc
//
//	@Summary	Look up a ticket by number
//	@Tags		Tickets
//	@Produce	json
//	@Param		number	path		string	true	"Ticket number"
//	@Success	200		{object}	domain.EventTicket
//	@Failure	404		{object}	utils.Response	"Ticket not found"
//	@Failure	422		{object}	utils.Response	"Invalid ticket number"
//	@Router		/api/tickets/{number} [get]
func (h *EventHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.eventService.VerifyTicket(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ticket)
}

// CheckIn godoc
//
//	@Summary	Check a ticket in at the door
//	@Tags		Tickets
//	@Produce	json
//	@Param		number	path		string	true	"Ticket number"
//	@Success	200		{object}	domain.EventTicket
//	@Failure	404		{object}	utils.Response	"Ticket not found"
//	@Failure	409		{object}	utils.Response	"Ticket is not active"
//	@Failure	422		{object}	utils.Response	"Invalid ticket number"
//	@Router		/api/tickets/{number}/check-in [post]
func (h *EventHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.eventService.CheckInTicket(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ticket)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventservice.ErrEventNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, eventservice.ErrTicketNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Ticket not found")
	case errors.Is(err, eventservice.ErrSoldOut),
		errors.Is(err, eventservice.ErrEventNotActive),
		errors.Is(err, eventservice.ErrTicketNotActive):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, eventservice.ErrInvalidTicketNumber):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid ticket number")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
