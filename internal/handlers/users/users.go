package users

//go:generate mockgen -source=users.go -destination=users_mock.go -package=users

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/service/userservice"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
	"github.com/GlebRadaev/marketplace/pkg/validate"
)

type Service interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, upd domain.UserUpdate) (*domain.User, error)
	GetJobs(ctx context.Context, userID int) ([]domain.Job, error)
	GetApplications(ctx context.Context, userID int) ([]domain.JobApplication, error)
	GetItems(ctx context.Context, userID int) ([]domain.MarketplaceItem, error)
	GetEvents(ctx context.Context, userID int) ([]domain.Event, error)
	GetTickets(ctx context.Context, userID int) ([]domain.EventTicket, error)
	GetReviews(ctx context.Context, userID int) ([]domain.Review, error)
	GetNotifications(ctx context.Context, userID int) ([]domain.Notification, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUser godoc
//
//	@Summary	Get a user profile
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	domain.User
//	@Failure	400	{object}	utils.Response	"Invalid user id"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateUser godoc
//
//	@Summary		Update own profile
//	@Description	Only profile fields may change; rating, balance and counters are rejected.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"Fields to change"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	utils.Response	"Invalid user data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/users/{id} [patch]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if caller, ok := auth.UserID(r.Context()); !ok || caller != id {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	var req dto.UpdateUserRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user data")
		return
	}
	user, err := h.userService.UpdateUser(r.Context(), id, req.ToDomain())
	if err != nil {
		respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// GetJobs godoc
//
//	@Summary	Jobs posted by a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	200	{array}	domain.Job
//	@Router		/api/users/{id}/jobs [get]
func (h *UserHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.userService.GetJobs)
}

// GetApplications godoc
//
//	@Summary	Job applications sent by a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	200	{array}	domain.JobApplication
//	@Router		/api/users/{id}/applications [get]
func (h *UserHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.userService.GetApplications)
}

// GetItems godoc
//
//	@Summary	Marketplace items listed by a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	200	{array}	domain.MarketplaceItem
//	@Router		/api/users/{id}/items [get]
func (h *UserHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.userService.GetItems)
}

// GetEvents godoc
//
//	@Summary	Events organised by a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	200	{array}	domain.Event
//	@Router		/api/users/{id}/events [get]
func (h *UserHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.userService.GetEvents)
}

// GetTickets godoc
//
//	@Summary	Tickets held by a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	200	{array}	domain.EventTicket
//	@Router		/api/users/{id}/tickets [get]
func (h *UserHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.userService.GetTickets)
}

// GetReviews godoc
//
//	@Summary	Reviews received by a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	200	{array}	domain.Review
//	@Router		/api/users/{id}/reviews [get]
func (h *UserHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.userService.GetReviews)
}

// GetNotifications godoc
//
//	@Summary	Notifications of a user, newest first
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	200	{array}	domain.Notification
//	@Router		/api/users/{id}/notifications [get]
func (h *UserHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.userService.GetNotifications)
}

func list[T any](w http.ResponseWriter, r *http.Request, fetch func(context.Context, int) ([]T, error)) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	rows, err := fetch(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}

func respondUserError(w http.ResponseWriter, err error) {
	if errors.Is(err, userservice.ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
