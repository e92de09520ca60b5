package dto

import "github.com/GlebRadaev/marketplace/internal/domain"

type CreateReviewRequestDTO struct {
	ReviewerID int    `json:"reviewerId" validate:"required,gt=0" example:"2"`
	RevieweeID int    `json:"revieweeId" validate:"required,gt=0" example:"1"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5" example:"5"`
	Comment    string `json:"comment" example:"Excellent work"`
	JobID      *int   `json:"jobId,omitempty" validate:"omitempty,gt=0"`
}

func (r CreateReviewRequestDTO) ToDomain() *domain.Review {
	return &domain.Review{
		ReviewerID: r.ReviewerID,
		RevieweeID: r.RevieweeID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		JobID:      r.JobID,
	}
}

type CreateNotificationRequestDTO struct {
	UserID  int    `json:"userId" validate:"required,gt=0" example:"1"`
	Title   string `json:"title" validate:"required" example:"Welcome"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=job payment event system" example:"system"`
}

func (r CreateNotificationRequestDTO) ToDomain() *domain.Notification {
	return &domain.Notification{
		UserID:  r.UserID,
		Title:   r.Title,
		Message: r.Message,
		Type:    r.Type,
	}
}
