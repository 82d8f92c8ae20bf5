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

// TaskService handles task business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	publisher   notify.Publisher
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, publisher notify.Publisher) *TaskService {
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		publisher:   publisher,
	}
}

// ListTasksInput represents filters for listing tasks.
type ListTasksInput struct {
	ProjectID     uint64
	Status        *models.TaskStatus
	Search        string
	AssigneeEmail string
	Page          int
	PageSize      int
}

// Create validates the input, resolves the owning project, and creates the
// task.
func (s *TaskService) Create(input validation.TaskInput) (*models.Task, error) {
	return runMutation(
		func() *validation.Errors { return validation.ValidateTaskInput(input, false) },
		func() error {
			_, err := resolveParent(func() (*models.Project, error) {
				return s.projectRepo.FindByID(input.ProjectID)
			}, "Project")
			return err
		},
		func() (*models.Task, error) {
			task := &models.Task{
				ProjectID: input.ProjectID,
				Title:     strings.TrimSpace(input.Title),
				Status:    models.TaskStatusTodo,
				DueDate:   input.DueDate,
			}
			if input.Description != nil {
				task.Description = strings.TrimSpace(*input.Description)
			}
			if input.Status != "" {
				task.Status = models.TaskStatus(input.Status)
			}
			if input.AssigneeEmail != nil {
				task.AssigneeEmail = normalizeEmail(*input.AssigneeEmail)
			}

			if err := s.taskRepo.Create(task); err != nil {
				return nil, fmt.Errorf("failed to create task: %w", err)
			}
			return task, nil
		},
	)
}

// Update applies a partial update: optional fields left unset retain their
// stored values.
func (s *TaskService) Update(id uint64, input validation.TaskInput) (*models.Task, error) {
	var task *models.Task

	updated, err := runMutation(
		func() *validation.Errors { return validation.ValidateTaskInput(input, true) },
		func() error {
			var err error
			task, err = resolveParent(func() (*models.Task, error) {
				return s.taskRepo.FindByID(id)
			}, "Task")
			return err
		},
		func() (*models.Task, error) {
			task.Title = strings.TrimSpace(input.Title)
			if input.Description != nil {
				task.Description = strings.TrimSpace(*input.Description)
			}
			if input.Status != "" {
				task.Status = models.TaskStatus(input.Status)
			}
			if input.AssigneeEmail != nil {
				task.AssigneeEmail = normalizeEmail(*input.AssigneeEmail)
			}
			if input.DueDate != nil {
				task.DueDate = input.DueDate
			}

			if err := s.taskRepo.Update(task); err != nil {
				return nil, fmt.Errorf("failed to update task: %w", err)
			}
			return task, nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(
		notify.ProjectTasksTopic(updated.ProjectID),
		notify.Event{Type: "task.updated", ID: updated.ID},
	)
	return updated, nil
}

// Delete removes a task and its comments.
func (s *TaskService) Delete(id uint64) error {
	if _, err := resolveParent(func() (*models.Task, error) {
		return s.taskRepo.FindByID(id)
	}, "Task"); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// List returns a project's tasks with optional filters.
func (s *TaskService) List(input ListTasksInput) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(repository.TaskFilter{
		ProjectID:     input.ProjectID,
		Status:        input.Status,
		Search:        input.Search,
		AssigneeEmail: input.AssigneeEmail,
		Page:          input.Page,
		PageSize:      input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// Get returns a task with its comments, or nil when the id is unknown.
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "Comments")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}
