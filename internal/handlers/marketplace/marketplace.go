package marketplace

//go:generate mockgen -source=marketplace.go -destination=marketplace_mock.go -package=marketplace

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/service/marketservice"
	"github.com/GlebRadaev/marketplace/pkg/utils"
	"github.com/GlebRadaev/marketplace/pkg/validate"
)

type Service interface {
	ListItems(ctx context.Context, f domain.ListFilter) ([]domain.MarketplaceItem, error)
	GetItem(ctx context.Context, id int) (*domain.MarketplaceItem, error)
	CreateItem(ctx context.Context, item *domain.MarketplaceItem) (*domain.MarketplaceItem, error)
	UpdateItem(ctx context.Context, id int, upd domain.ItemUpdate) (*domain.MarketplaceItem, error)
	DeleteItem(ctx context.Context, id int) error
}

type MarketplaceHandler struct {
	marketService Service
}

func New(marketService Service) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketService: marketService,
	}
}

// ListItems godoc
//
//	@Summary	Browse active marketplace items
//	@Tags		Marketplace
//	@Produce	json
//	@Param		category	query	string	false	"Category"
//	@Param		location	query	string	false	"Location substring"
//	@Param		search		query	string	false	"Title or description substring"
//	@Success	200			{array}	domain.MarketplaceItem
//	@Router		/api/marketplace [get]
func (h *MarketplaceHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.marketService.ListItems(r.Context(), domain.ListFilter{
		Category: q.Get("category"),
		Location: q.Get("location"),
		Search:   q.Get("search"),
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GetItem godoc
//
//	@Summary	Get a marketplace item
//	@Tags		Marketplace
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	domain.MarketplaceItem
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Router		/api/marketplace/{id} [get]
func (h *MarketplaceHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	item, err := h.marketService.GetItem(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// CreateItem godoc
//
//	@Summary	List an item for sale
//	@Tags		Marketplace
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateItemRequestDTO	true	"Item"
//	@Success	201		{object}	domain.MarketplaceItem
//	@Failure	400		{object}	utils.Response	"Invalid item data"
//	@Router		/api/marketplace [post]
func (h *MarketplaceHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item data")
		return
	}
	item, err := h.marketService.CreateItem(r.Context(), req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// UpdateItem godoc
//
//	@Summary	Update a marketplace item
//	@Tags		Marketplace
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Item ID"
//	@Param		request	body		dto.UpdateItemRequestDTO	true	"Fields to change"
//	@Success	200		{object}	domain.MarketplaceItem
//	@Failure	400		{object}	utils.Response	"Invalid item data"
//	@Failure	404		{object}	utils.Response	"Item not found"
//	@Router		/api/marketplace/{id} [patch]
func (h *MarketplaceHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	var req dto.UpdateItemRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item data")
		return
	}
	item, err := h.marketService.UpdateItem(r.Context(), id, req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// DeleteItem godoc
//
//	@Summary	Delete a marketplace item
//	@Tags		Marketplace
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Router		/api/marketplace/{id} [delete]
func (h *MarketplaceHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	if err := h.marketService.DeleteItem(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Item deleted successfully"})
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, marketservice.ErrItemNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
