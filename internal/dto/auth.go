package dto

import "github.com/GlebRadaev/marketplace/internal/domain"

type RegisterRequestDTO struct {
	Username     string   `json:"username" validate:"required,min=3,max=50" example:"sarah_k"`
	Email        string   `json:"email" validate:"required,email" example:"sarah@example.com"`
	Password     string   `json:"password" validate:"required,min=8" example:"password123"`
	FirstName    string   `json:"firstName" validate:"required" example:"Sarah"`
	LastName     string   `json:"lastName" validate:"required" example:"Kamara"`
	Phone        string   `json:"phone" validate:"required" example:"+232 76 123 456"`
	ProfileImage *string  `json:"profileImage,omitempty"`
	Location     *string  `json:"location,omitempty" example:"Freetown, Western Area"`
	Skills       []string `json:"skills,omitempty"`
}

func (r RegisterRequestDTO) ToDomain() *domain.User {
	return &domain.User{
		Username:     r.Username,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		ProfileImage: r.ProfileImage,
		Location:     r.Location,
		Skills:       r.Skills,
	}
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"sarah@example.com"`
	Password string `json:"password" validate:"required" example:"password123"`
}

type UpdateUserRequestDTO struct {
	FirstName    *string  `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName     *string  `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Phone        *string  `json:"phone,omitempty" validate:"omitempty,min=1"`
	ProfileImage *string  `json:"profileImage,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

func (r UpdateUserRequestDTO) ToDomain() domain.UserUpdate {
	return domain.UserUpdate{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		ProfileImage: r.ProfileImage,
		Location:     r.Location,
		Skills:       r.Skills,
	}
}
