package dto

import (
	"time"

	"github.com/markjessn/mini-pms/internal/models"
	"github.com/samber/lo"
)

// ProjectDTO represents a project in API responses, including the derived
// task counters.
type ProjectDTO struct {
	ID             uint64               `json:"id"`
	OrganizationID uint64               `json:"organization_id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Status         models.ProjectStatus `json:"status"`
	DueDate        *time.Time           `json:"due_date"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	TaskCount      int                  `json:"task_count"`
	CompletedTasks int                  `json:"completed_tasks"`
	CompletionRate float64              `json:"completion_rate"`
	Tasks          []TaskDTO            `json:"tasks,omitempty"`
}

// ToProjectDTO converts a project to its response shape. The derived
// counters are computed over the loaded tasks.
func ToProjectDTO(project models.Project, includeTasks bool) ProjectDTO {
	out := ProjectDTO{
		ID:             project.ID,
		OrganizationID: project.OrganizationID,
		Name:           project.Name,
		Description:    project.Description,
		Status:         project.Status,
		DueDate:        project.DueDate,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
		TaskCount:      project.TaskCount(),
		CompletedTasks: project.CompletedTasks(),
		CompletionRate: project.CompletionRate(),
	}

	if includeTasks {
		out.Tasks = lo.Map(project.Tasks, func(task models.Task, _ int) TaskDTO {
			return ToTaskDTO(task, false)
		})
	}

	return out
}

// ToProjectDTOs converts a slice of projects without nested tasks.
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	return lo.Map(projects, func(project models.Project, _ int) ProjectDTO {
		return ToProjectDTO(project, false)
	})
}
