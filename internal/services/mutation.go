package services

import (
	"errors"
	"fmt"

	apierrors "github.com/markjessn/mini-pms/internal/errors"
	"github.com/markjessn/mini-pms/internal/validation"
	"gorm.io/gorm"
)

// runMutation executes the shared mutation protocol: validate the input,
// resolve referenced parents, then perform the single write. The first
// failing step short-circuits, so no write happens on invalid input or a
// missing parent.
func runMutation[T any](
	validate func() *validation.Errors,
	resolveParents func() error,
	write func() (*T, error),
) (*T, error) {
	if validate != nil {
		if errs := validate(); errs.HasErrors() {
			return nil, apierrors.NewValidationError(errs.GetErrors())
		}
	}

	if resolveParents != nil {
		if err := resolveParents(); err != nil {
			return nil, err
		}
	}

	return write()
}

// resolveParent looks up a referenced entity and converts a missing row into
// a NotFoundError named after the resource.
func resolveParent[T any](find func() (*T, error), resource string) (*T, error) {
	entity, err := find()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewNotFoundError(resource)
		}
		return nil, fmt.Errorf("failed to resolve %s: %w", resource, err)
	}
	return entity, nil
}

// translateDuplicate converts a duplicate-key write error into a
// ConflictError with the given user-facing message.
func translateDuplicate(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierrors.NewConflictError(message)
	}
	return err
}
