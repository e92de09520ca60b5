package dto

import (
	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/money"
	"github.com/shopspring/decimal"
)

type CreateJobRequestDTO struct {
	Title       string              `json:"title" validate:"required" example:"House cleaning service"`
	Description string              `json:"description" validate:"required"`
	Category    string              `json:"category" validate:"required" example:"Cleaning"`
	Budget      decimal.Decimal     `json:"budget" validate:"money" swaggertype:"string" example:"150000.00"`
	Location    string              `json:"location" validate:"required" example:"Freetown, Western Area"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	UserID      int                 `json:"userId" validate:"required,gt=0" example:"1"`
	Urgency     string              `json:"urgency,omitempty" validate:"omitempty,oneof=urgent normal" example:"normal"`
}

func (r CreateJobRequestDTO) ToDomain() *domain.Job {
	return &domain.Job{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Budget:      money.Format(r.Budget),
		Location:    r.Location,
		Coordinates: r.Coordinates,
		UserID:      r.UserID,
		Urgency:     r.Urgency,
	}
}

type UpdateJobRequestDTO struct {
	Title       *string             `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string             `json:"description,omitempty"`
	Category    *string             `json:"category,omitempty" validate:"omitempty,min=1"`
	Budget      *decimal.Decimal    `json:"budget,omitempty" validate:"omitempty,money" swaggertype:"string"`
	Location    *string             `json:"location,omitempty" validate:"omitempty,min=1"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	Status      *string             `json:"status,omitempty" validate:"omitempty,oneof=active completed cancelled"`
	Urgency     *string             `json:"urgency,omitempty" validate:"omitempty,oneof=urgent normal"`
}

func (r UpdateJobRequestDTO) ToDomain() domain.JobUpdate {
	return domain.JobUpdate{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Budget:      formatPtr(r.Budget),
		Location:    r.Location,
		Coordinates: r.Coordinates,
		Status:      r.Status,
		Urgency:     r.Urgency,
	}
}

type CreateApplicationRequestDTO struct {
	UserID  int    `json:"userId" validate:"required,gt=0" example:"2"`
	Message string `json:"message" example:"I have five years of experience"`
}

type UpdateApplicationRequestDTO struct {
	Message *string `json:"message,omitempty"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=pending accepted rejected"`
}

func (r UpdateApplicationRequestDTO) ToDomain() domain.ApplicationUpdate {
	return domain.ApplicationUpdate{
		Message: r.Message,
		Status:  r.Status,
	}
}

func formatPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money.Format(*d)
	return &s
}
