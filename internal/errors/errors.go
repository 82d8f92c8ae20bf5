// Package errors defines the error taxonomy for the mutation layer:
// validation failures, missing references, uniqueness conflicts, and
// everything else. Handlers flatten these into the uniform
// {success, errors, entity} envelope.
package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports one or more field-level rule violations, in the
// order the rules failed.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

// NewValidationError wraps an ordered message list.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found.", e.Resource)
}

// NewNotFoundError names the missing resource, e.g. "Organization".
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError reports a uniqueness violation with a user-facing message.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError wraps a specific user-facing conflict message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// ForbiddenError reports a business rule refusing the operation outright,
// e.g. deleting an org admin through the member-delete path.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// NewForbiddenError wraps a specific user-facing refusal message.
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

// InternalMessage is the generic text surfaced for unclassified failures.
// The underlying error is logged, never sent to the client.
const InternalMessage = "Internal server error."
