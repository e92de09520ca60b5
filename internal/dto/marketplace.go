package dto

import (
	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/money"
	"github.com/shopspring/decimal"
)

type CreateItemRequestDTO struct {
	Title       string          `json:"title" validate:"required" example:"Samsung Galaxy A54"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"money" swaggertype:"string" example:"950000.00"`
	Category    string          `json:"category" validate:"required" example:"Electronics"`
	Condition   string          `json:"condition" validate:"required,oneof=new used refurbished" example:"used"`
	Images      []string        `json:"images,omitempty"`
	Location    string          `json:"location" validate:"required" example:"Freetown"`
	UserID      int             `json:"userId" validate:"required,gt=0" example:"1"`
}

func (r CreateItemRequestDTO) ToDomain() *domain.MarketplaceItem {
	return &domain.MarketplaceItem{
		Title:       r.Title,
		Description: r.Description,
		Price:       money.Format(r.Price),
		Category:    r.Category,
		Condition:   r.Condition,
		Images:      r.Images,
		Location:    r.Location,
		UserID:      r.UserID,
	}
}

type UpdateItemRequestDTO struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty" validate:"omitempty,money" swaggertype:"string"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,min=1"`
	Condition   *string          `json:"condition,omitempty" validate:"omitempty,oneof=new used refurbished"`
	Images      []string         `json:"images,omitempty"`
	Location    *string          `json:"location,omitempty" validate:"omitempty,min=1"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=active sold inactive"`
}

func (r UpdateItemRequestDTO) ToDomain() domain.ItemUpdate {
	return domain.ItemUpdate{
		Title:       r.Title,
		Description: r.Description,
		Price:       formatPtr(r.Price),
		Category:    r.Category,
		Condition:   r.Condition,
		Images:      r.Images,
		Location:    r.Location,
		Status:      r.Status,
	}
}
