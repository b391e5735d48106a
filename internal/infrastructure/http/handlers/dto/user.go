package dto

import (
	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/utils"
)

type UserDTO struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.Format(utils.DateTimeFormat),
		UpdatedAt:   u.UpdatedAt.Format(utils.DateTimeFormat),
	}
}

func ToUserDTOs(users []*models.User) []UserDTO {
	res := make([]UserDTO, 0, len(users))
	for _, u := range users {
		res = append(res, ToUserDTO(u))
	}
	return res
}

type PageDTO[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func ToUserPageDTO(p *models.Page[*models.User]) PageDTO[UserDTO] {
	return PageDTO[UserDTO]{
		Items:      ToUserDTOs(p.Items),
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,username"`
	Email       string `json:"email" validate:"required,max=255,strict_email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,phone"`
	Role        string `json:"role" validate:"omitempty,oneof=ADMIN MEMBER"`
	IsActive    *bool  `json:"is_active"`
}

func (r CreateUserRequest) ToModel() models.UserCreate {
	return models.UserCreate{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
		IsActive:    r.IsActive,
	}
}

type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,max=255,strict_email"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
	Role        *string `json:"role" validate:"omitempty,oneof=ADMIN MEMBER"`
}

func (r UpdateUserRequest) ToModel() models.UserUpdate {
	return models.UserUpdate{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
	}
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type StatsDTO struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type AvailabilityDTO struct {
	Username       string `json:"username,omitempty"`
	UsernameExists *bool  `json:"username_exists,omitempty"`
	Email          string `json:"email,omitempty"`
	EmailExists    *bool  `json:"email_exists,omitempty"`
}

func ToAvailabilityDTO(a *models.Availability) AvailabilityDTO {
	res := AvailabilityDTO{Username: a.Username, Email: a.Email}
	if a.Username != "" {
		v := a.UsernameExists
		res.UsernameExists = &v
	}
	if a.Email != "" {
		v := a.EmailExists
		res.EmailExists = &v
	}
	return res
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	TokenType string  `json:"token_type"`
	ExpiresIn int64   `json:"expires_in"`
	User      UserDTO `json:"user"`
}
