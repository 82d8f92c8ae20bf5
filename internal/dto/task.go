package dto

import (
	"time"

	"github.com/markjessn/mini-pms/internal/models"
	"github.com/samber/lo"
)

// TaskDTO represents a task in API responses.
type TaskDTO struct {
	ID            uint64            `json:"id"`
	ProjectID     uint64            `json:"project_id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Status        models.TaskStatus `json:"status"`
	AssigneeEmail string            `json:"assignee_email"`
	DueDate       *time.Time        `json:"due_date"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Comments      []TaskCommentDTO  `json:"comments,omitempty"`
}

// TaskCommentDTO represents a task comment in API responses.
type TaskCommentDTO struct {
	ID          uint64    `json:"id"`
	TaskID      uint64    `json:"task_id"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTaskDTO converts a task to its response shape.
func ToTaskDTO(task models.Task, includeComments bool) TaskDTO {
	out := TaskDTO{
		ID:            task.ID,
		ProjectID:     task.ProjectID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		AssigneeEmail: task.AssigneeEmail,
		DueDate:       task.DueDate,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}

	if includeComments {
		out.Comments = ToTaskCommentDTOs(task.Comments)
	}

	return out
}

// ToTaskDTOs converts a slice of tasks without nested comments.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	return lo.Map(tasks, func(task models.Task, _ int) TaskDTO {
		return ToTaskDTO(task, false)
	})
}

// ToTaskCommentDTO converts a comment to its response shape.
func ToTaskCommentDTO(comment models.TaskComment) TaskCommentDTO {
	return TaskCommentDTO{
		ID:          comment.ID,
		TaskID:      comment.TaskID,
		Content:     comment.Content,
		AuthorEmail: comment.AuthorEmail,
		CreatedAt:   comment.CreatedAt,
	}
}

// ToTaskCommentDTOs converts a slice of comments.
func ToTaskCommentDTOs(comments []models.TaskComment) []TaskCommentDTO {
	return lo.Map(comments, func(comment models.TaskComment, _ int) TaskCommentDTO {
		return ToTaskCommentDTO(comment)
	})
}
