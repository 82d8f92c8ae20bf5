package validation

import (
	"fmt"
	"time"

	"github.com/markjessn/mini-pms/internal/constants"
)

// OrganizationInput carries the writable organization fields.
type OrganizationInput struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ContactEmail string `json:"contact_email"`
}

// ProjectInput carries the writable project fields. Pointer fields are
// partial-update aware: nil means "leave unchanged".
type ProjectInput struct {
	OrganizationID uint64     `json:"organization_id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	Status         string     `json:"status"`
	DueDate        *time.Time `json:"due_date"`
}

// TaskInput carries the writable task fields.
type TaskInput struct {
	ProjectID     uint64     `json:"project_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Status        string     `json:"status"`
	AssigneeEmail *string    `json:"assignee_email"`
	DueDate       *time.Time `json:"due_date"`
}

// CommentInput carries the writable comment fields.
type CommentInput struct {
	TaskID      uint64 `json:"task_id"`
	Content     string `json:"content"`
	AuthorEmail string `json:"author_email"`
}

// RegisterInput carries the compound registration fields: the admin user and
// their organization.
type RegisterInput struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	Name             string `json:"name"`
	OrganizationName string `json:"organization_name"`
	OrganizationSlug string `json:"organization_slug"`
}

// MemberInput carries the fields for admin-issued member creation.
type MemberInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// ValidateOrganizationInput validates organization create/update input.
func ValidateOrganizationInput(input OrganizationInput) *Errors {
	errors := &Errors{}

	if msg := Required(input.Name, "Name"); msg != "" {
		errors.Add(msg)
	} else {
		if msg := MinLength(input.Name, 2, "Name"); msg != "" {
			errors.Add(msg)
		}
		if msg := MaxLength(input.Name, 100, "Name"); msg != "" {
			errors.Add(msg)
		}
	}

	if msg := Required(input.Slug, "Slug"); msg != "" {
		errors.Add(msg)
	} else if msg := SlugFormat(input.Slug, "Slug"); msg != "" {
		errors.Add(msg)
	}

	if msg := Required(input.ContactEmail, "Contact email"); msg != "" {
		errors.Add(msg)
	} else if msg := EmailFormat(input.ContactEmail, "Contact email"); msg != "" {
		errors.Add(msg)
	}

	return errors
}

// ValidateProjectInput validates project input. The organization reference is
// only required on create.
func ValidateProjectInput(input ProjectInput, isUpdate bool) *Errors {
	errors := &Errors{}

	if !isUpdate && input.OrganizationID == 0 {
		errors.Add("Organization is required.")
	}

	if msg := Required(input.Name, "Name"); msg != "" {
		errors.Add(msg)
	} else {
		if msg := MinLength(input.Name, 2, "Name"); msg != "" {
			errors.Add(msg)
		}
		if msg := MaxLength(input.Name, 200, "Name"); msg != "" {
			errors.Add(msg)
		}
	}

	if msg := Status(input.Status, []string{"ACTIVE", "COMPLETED", "ON_HOLD"}, "Status"); msg != "" {
		errors.Add(msg)
	}

	return errors
}

// ValidateTaskInput validates task input. The project reference is only
// required on create.
func ValidateTaskInput(input TaskInput, isUpdate bool) *Errors {
	errors := &Errors{}

	if !isUpdate && input.ProjectID == 0 {
		errors.Add("Project is required.")
	}

	if msg := Required(input.Title, "Title"); msg != "" {
		errors.Add(msg)
	} else {
		if msg := MinLength(input.Title, 2, "Title"); msg != "" {
			errors.Add(msg)
		}
		if msg := MaxLength(input.Title, 200, "Title"); msg != "" {
			errors.Add(msg)
		}
	}

	if msg := Status(input.Status, []string{"TODO", "IN_PROGRESS", "DONE"}, "Status"); msg != "" {
		errors.Add(msg)
	}

	if input.AssigneeEmail != nil {
		if msg := EmailFormat(*input.AssigneeEmail, "Assignee email"); msg != "" {
			errors.Add(msg)
		}
	}

	return errors
}

// ValidateCommentInput validates task comment input.
func ValidateCommentInput(input CommentInput) *Errors {
	errors := &Errors{}

	if input.TaskID == 0 {
		errors.Add("Task is required.")
	}

	if msg := Required(input.Content, "Content"); msg != "" {
		errors.Add(msg)
	}

	if msg := Required(input.AuthorEmail, "Author email"); msg != "" {
		errors.Add(msg)
	} else if msg := EmailFormat(input.AuthorEmail, "Author email"); msg != "" {
		errors.Add(msg)
	}

	return errors
}

// ValidateRegisterInput validates the compound registration input.
func ValidateRegisterInput(input RegisterInput) *Errors {
	errors := validateCredentials(input.Email, input.Password, input.Name)

	if msg := Required(input.OrganizationName, "Organization name"); msg != "" {
		errors.Add(msg)
	} else {
		if msg := MinLength(input.OrganizationName, 2, "Organization name"); msg != "" {
			errors.Add(msg)
		}
		if msg := MaxLength(input.OrganizationName, 100, "Organization name"); msg != "" {
			errors.Add(msg)
		}
	}

	if msg := Required(input.OrganizationSlug, "Organization slug"); msg != "" {
		errors.Add(msg)
	} else if msg := SlugFormat(input.OrganizationSlug, "Organization slug"); msg != "" {
		errors.Add(msg)
	}

	return errors
}

// ValidateMemberInput validates admin-issued member creation input.
func ValidateMemberInput(input MemberInput) *Errors {
	return validateCredentials(input.Email, input.Password, input.Name)
}

func validateCredentials(email, password, name string) *Errors {
	errors := &Errors{}

	if msg := Required(email, "Email"); msg != "" {
		errors.Add(msg)
	} else if msg := EmailFormat(email, "Email"); msg != "" {
		errors.Add(msg)
	}

	if msg := Required(password, "Password"); msg != "" {
		errors.Add(msg)
	} else if len(password) < constants.MinPasswordLength {
		errors.Add(fmt.Sprintf("Password must be at least %d characters.", constants.MinPasswordLength))
	}

	if msg := Required(name, "Name"); msg != "" {
		errors.Add(msg)
	} else if msg := MinLength(name, 2, "Name"); msg != "" {
		errors.Add(msg)
	}

	return errors
}
