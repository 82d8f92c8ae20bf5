package repository

import (
	"github.com/markjessn/mini-pms/internal/models"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization
	Create(org *models.Organization) error

	// FindByID finds an organization by ID
	FindByID(id uint64) (*models.Organization, error)

	// FindBySlug finds an organization by its slug
	FindBySlug(slug string) (*models.Organization, error)

	// List returns all organizations ordered by name
	List() ([]models.Organization, error)

	// Update updates an organization
	Update(org *models.Organization) error

	// Delete removes an organization and cascades to its projects, tasks,
	// comments, and users
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// RegisterOwner creates an organization and its admin user within a
	// single transaction; partial failure leaves neither created.
	RegisterOwner(org *models.Organization, user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Delete removes a user
	Delete(id uint64) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	OrganizationID uint64
	Status         *models.ProjectStatus
	Search         string
	Page           int
	PageSize       int
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// List retrieves projects with filtering and pagination
	List(filter ProjectFilter) ([]models.Project, int64, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete removes a project and cascades to its tasks and their comments
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID     uint64
	Status        *models.TaskStatus
	Search        string
	AssigneeEmail string
	Page          int
	PageSize      int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete removes a task and cascades to its comments
	Delete(id uint64) error
}

// CommentRepository defines the interface for task comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.TaskComment) error

	// FindByID finds a comment by ID
	FindByID(id uint64) (*models.TaskComment, error)

	// ListByTask returns a task's comments ordered by creation time
	ListByTask(taskID uint64) ([]models.TaskComment, error)

	// Delete removes a comment
	Delete(id uint64) error
}

// ProjectStatistics aggregates per-organization project and task counts.
type ProjectStatistics struct {
	TotalProjects         int64   `json:"total_projects"`
	ActiveProjects        int64   `json:"active_projects"`
	CompletedProjects     int64   `json:"completed_projects"`
	OnHoldProjects        int64   `json:"on_hold_projects"`
	TotalTasks            int64   `json:"total_tasks"`
	CompletedTasks        int64   `json:"completed_tasks"`
	OverallCompletionRate float64 `json:"overall_completion_rate"`
}

// StatisticsRepository defines the interface for aggregation queries
type StatisticsRepository interface {
	// Collect aggregates statistics over an organization's projects and tasks
	Collect(organizationID uint64) (*ProjectStatistics, error)
}
