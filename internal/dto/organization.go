package dto

import (
	"time"

	"github.com/markjessn/mini-pms/internal/models"
	"github.com/samber/lo"
)

// OrganizationDTO represents an organization in API responses.
type OrganizationDTO struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToOrganizationDTO converts an organization to its response shape.
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		ContactEmail: org.ContactEmail,
		CreatedAt:    org.CreatedAt,
		UpdatedAt:    org.UpdatedAt,
	}
}

// ToOrganizationDTOs converts a slice of organizations.
func ToOrganizationDTOs(orgs []models.Organization) []OrganizationDTO {
	return lo.Map(orgs, func(org models.Organization, _ int) OrganizationDTO {
		return ToOrganizationDTO(org)
	})
}
