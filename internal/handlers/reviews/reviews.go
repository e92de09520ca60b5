package reviews

//go:generate mockgen -source=reviews.go -destination=reviews_mock.go -package=reviews

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/service/reviewservice"
	"github.com/GlebRadaev/marketplace/pkg/utils"
	"github.com/GlebRadaev/marketplace/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview godoc
//
//	@Summary		Review a user
//	@Description	The reviewee's rating becomes the mean of all reviews they received.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateReviewRequestDTO	true	"Review"
//	@Success		201		{object}	domain.Review
//	@Failure		400		{object}	utils.Response	"Invalid review data"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}
	review, err := h.reviewService.Create(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, reviewservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, reviewservice.ErrSelfReview), errors.Is(err, reviewservice.ErrInvalidRating):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, review)
}
