package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/notify"
	"github.com/markjessn/mini-pms/internal/repository"
	"github.com/markjessn/mini-pms/internal/validation"
	"gorm.io/gorm"
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	orgRepo     repository.OrganizationRepository
	publisher   notify.Publisher
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, orgRepo repository.OrganizationRepository, publisher notify.Publisher) *ProjectService {
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	return &ProjectService{
		projectRepo: projectRepo,
		orgRepo:     orgRepo,
		publisher:   publisher,
	}
}

// ListProjectsInput represents filters for listing projects.
type ListProjectsInput struct {
	OrganizationSlug string
	Status           *models.ProjectStatus
	Search           string
	Page             int
	PageSize         int
}

// Create validates the input, resolves the owning organization, and creates
// the project.
func (s *ProjectService) Create(input validation.ProjectInput) (*models.Project, error) {
	return runMutation(
		func() *validation.Errors { return validation.ValidateProjectInput(input, false) },
		func() error {
			_, err := resolveParent(func() (*models.Organization, error) {
				return s.orgRepo.FindByID(input.OrganizationID)
			}, "Organization")
			return err
		},
		func() (*models.Project, error) {
			project := &models.Project{
				OrganizationID: input.OrganizationID,
				Name:           strings.TrimSpace(input.Name),
				Status:         models.ProjectStatusActive,
				DueDate:        input.DueDate,
			}
			if input.Description != nil {
				project.Description = strings.TrimSpace(*input.Description)
			}
			if input.Status != "" {
				project.Status = models.ProjectStatus(input.Status)
			}

			if err := s.projectRepo.Create(project); err != nil {
				return nil, fmt.Errorf("failed to create project: %w", err)
			}
			return project, nil
		},
	)
}

// Update applies a partial update: optional fields left unset retain their
// stored values.
func (s *ProjectService) Update(id uint64, input validation.ProjectInput) (*models.Project, error) {
	var project *models.Project

	updated, err := runMutation(
		func() *validation.Errors { return validation.ValidateProjectInput(input, true) },
		func() error {
			var err error
			project, err = resolveParent(func() (*models.Project, error) {
				return s.projectRepo.FindByID(id)
			}, "Project")
			return err
		},
		func() (*models.Project, error) {
			project.Name = strings.TrimSpace(input.Name)
			if input.Description != nil {
				project.Description = strings.TrimSpace(*input.Description)
			}
			if input.Status != "" {
				project.Status = models.ProjectStatus(input.Status)
			}
			if input.DueDate != nil {
				project.DueDate = input.DueDate
			}

			if err := s.projectRepo.Update(project); err != nil {
				return nil, fmt.Errorf("failed to update project: %w", err)
			}
			return project, nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.notifyProjectUpdated(updated)
	return updated, nil
}

// Delete removes a project; its tasks and their comments go with it.
func (s *ProjectService) Delete(id uint64) error {
	if _, err := resolveParent(func() (*models.Project, error) {
		return s.projectRepo.FindByID(id)
	}, "Project"); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// List returns an organization's projects. An unknown slug yields an empty
// result set, not an error.
func (s *ProjectService) List(input ListProjectsInput) ([]models.Project, int64, error) {
	org, err := s.orgRepo.FindBySlug(input.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Project{}, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to find organization: %w", err)
	}

	projects, total, err := s.projectRepo.List(repository.ProjectFilter{
		OrganizationID: org.ID,
		Status:         input.Status,
		Search:         input.Search,
		Page:           input.Page,
		PageSize:       input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// Get returns a project with its tasks, or nil when the id is unknown.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, "Tasks")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// notifyProjectUpdated fires the best-effort project-updated event, keyed by
// organization slug. Lookup failures are swallowed: notification never
// affects mutation outcome.
func (s *ProjectService) notifyProjectUpdated(project *models.Project) {
	org, err := s.orgRepo.FindByID(project.OrganizationID)
	if err != nil {
		return
	}
	s.publisher.Publish(
		notify.OrganizationProjectsTopic(org.Slug),
		notify.Event{Type: "project.updated", ID: project.ID},
	)
}
