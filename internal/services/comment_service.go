package services

import (
	"fmt"
	"strings"

	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/notify"
	"github.com/markjessn/mini-pms/internal/repository"
	"github.com/markjessn/mini-pms/internal/validation"
)

// CommentService handles task comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	publisher   notify.Publisher
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, publisher notify.Publisher) *CommentService {
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	return &CommentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		publisher:   publisher,
	}
}

// Add validates the input, resolves the owning task, and creates the comment.
func (s *CommentService) Add(input validation.CommentInput) (*models.TaskComment, error) {
	comment, err := runMutation(
		func() *validation.Errors { return validation.ValidateCommentInput(input) },
		func() error {
			_, err := resolveParent(func() (*models.Task, error) {
				return s.taskRepo.FindByID(input.TaskID)
			}, "Task")
			return err
		},
		func() (*models.TaskComment, error) {
			comment := &models.TaskComment{
				TaskID:      input.TaskID,
				Content:     strings.TrimSpace(input.Content),
				AuthorEmail: normalizeEmail(input.AuthorEmail),
			}
			if err := s.commentRepo.Create(comment); err != nil {
				return nil, fmt.Errorf("failed to create comment: %w", err)
			}
			return comment, nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(
		notify.TaskCommentsTopic(comment.TaskID),
		notify.Event{Type: "comment.added", ID: comment.ID},
	)
	return comment, nil
}

// ListForTask returns a task's comments oldest first.
func (s *CommentService) ListForTask(taskID uint64) ([]models.TaskComment, error) {
	if _, err := resolveParent(func() (*models.Task, error) {
		return s.taskRepo.FindByID(taskID)
	}, "Task"); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment.
func (s *CommentService) Delete(id uint64) error {
	if _, err := resolveParent(func() (*models.TaskComment, error) {
		return s.commentRepo.FindByID(id)
	}, "Comment"); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
