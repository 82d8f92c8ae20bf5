package dto

import (
	"github.com/markjessn/mini-pms/internal/models"
)

// UserDTO represents a user in API responses. The password hash never leaves
// the model layer.
type UserDTO struct {
	ID             uint64          `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	OrganizationID *uint64         `json:"organization_id"`
	Role           models.UserRole `json:"role"`
	IsActive       bool            `json:"is_active"`
}

// ToUserDTO converts a user to its response shape.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		OrganizationID: user.OrganizationID,
		Role:           user.Role,
		IsActive:       user.IsActive,
	}
}
