package wallet

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=wallet

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/service/walletservice"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
	"github.com/GlebRadaev/marketplace/pkg/validate"
)

type Service interface {
	Balance(ctx context.Context, userID int) (string, error)
	Deposit(ctx context.Context, userID int, amount, method string) (string, error)
	Withdraw(ctx context.Context, userID int, amount, method string) (string, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary	Get wallet balance
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	dto.WalletResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/users/{id}/wallet [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := owner(w, r)
	if !ok {
		return
	}
	balance, err := h.walletService.Balance(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{Balance: balance})
}

// Deposit godoc
//
//	@Summary		Deposit from mobile money
//	@Description	Method is one of orange, mtn, africell, bank. A payment notification is sent.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.WalletRequestDTO	true	"Amount and method"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/users/{id}/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.walletService.Deposit, "Deposit successful")
}

// Withdraw godoc
//
//	@Summary		Withdraw to mobile money
//	@Description	The balance may not go below zero. A payment notification is sent.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.WalletRequestDTO	true	"Amount and method"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/users/{id}/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.walletService.Withdraw, "Withdrawal processed successfully")
}

func (h *WalletHandler) move(w http.ResponseWriter, r *http.Request, op func(context.Context, int, string, string) (string, error), message string) {
	userID, ok := owner(w, r)
	if !ok {
		return
	}
	var req dto.WalletRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	balance, err := op(r.Context(), userID, req.Amount.String(), req.Method)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{Message: message, Balance: balance})
}

// owner resolves the path user id and requires it to be the caller's.
func owner(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	if caller, ok := auth.UserID(r.Context()); !ok || caller != id {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return 0, false
	}
	return id, true
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
	case errors.Is(err, walletservice.ErrUnknownMethod):
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown payment method")
	case errors.Is(err, walletservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient balance")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
