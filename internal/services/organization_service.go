package services

import (
	"errors"
	"fmt"
	"strings"

	apierrors "github.com/markjessn/mini-pms/internal/errors"
	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/repository"
	"github.com/markjessn/mini-pms/internal/validation"
	"gorm.io/gorm"
)

// MsgSlugTaken is the user-facing message for a duplicate organization slug.
const MsgSlugTaken = "Organization slug already exists."

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{orgRepo: orgRepo}
}

// Create validates and creates an organization.
func (s *OrganizationService) Create(input validation.OrganizationInput) (*models.Organization, error) {
	return runMutation(
		func() *validation.Errors { return validation.ValidateOrganizationInput(input) },
		func() error { return s.ensureSlugAvailable(normalizeSlug(input.Slug), 0) },
		func() (*models.Organization, error) {
			org := &models.Organization{
				Name:         strings.TrimSpace(input.Name),
				Slug:         normalizeSlug(input.Slug),
				ContactEmail: normalizeEmail(input.ContactEmail),
			}
			if err := s.orgRepo.Create(org); err != nil {
				return nil, translateDuplicate(err, MsgSlugTaken)
			}
			return org, nil
		},
	)
}

// Update validates the full input and overwrites the organization's fields.
func (s *OrganizationService) Update(id uint64, input validation.OrganizationInput) (*models.Organization, error) {
	var org *models.Organization

	return runMutation(
		func() *validation.Errors { return validation.ValidateOrganizationInput(input) },
		func() error {
			var err error
			org, err = resolveParent(func() (*models.Organization, error) {
				return s.orgRepo.FindByID(id)
			}, "Organization")
			if err != nil {
				return err
			}
			return s.ensureSlugAvailable(normalizeSlug(input.Slug), org.ID)
		},
		func() (*models.Organization, error) {
			org.Name = strings.TrimSpace(input.Name)
			org.Slug = normalizeSlug(input.Slug)
			org.ContactEmail = normalizeEmail(input.ContactEmail)

			if err := s.orgRepo.Update(org); err != nil {
				return nil, translateDuplicate(err, MsgSlugTaken)
			}
			return org, nil
		},
	)
}

// Delete removes an organization and everything it owns.
func (s *OrganizationService) Delete(id uint64) error {
	if _, err := resolveParent(func() (*models.Organization, error) {
		return s.orgRepo.FindByID(id)
	}, "Organization"); err != nil {
		return err
	}

	if err := s.orgRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

// List returns all organizations ordered by name.
func (s *OrganizationService) List() ([]models.Organization, error) {
	orgs, err := s.orgRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// GetBySlug returns an organization, or nil when the slug is unknown.
func (s *OrganizationService) GetBySlug(slug string) (*models.Organization, error) {
	org, err := s.orgRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return org, nil
}

// ensureSlugAvailable pre-checks slug uniqueness; selfID exempts the row
// being updated.
func (s *OrganizationService) ensureSlugAvailable(slug string, selfID uint64) error {
	existing, err := s.orgRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if existing.ID == selfID {
		return nil
	}
	return apierrors.NewConflictError(MsgSlugTaken)
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
