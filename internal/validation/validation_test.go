package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	require.Equal(t, "Name is required.", Required("", "Name"))
	require.Equal(t, "Name is required.", Required("   ", "Name"))
	require.Empty(t, Required("Acme", "Name"))
}

func TestMinLength(t *testing.T) {
	require.Equal(t, "Name must be at least 2 characters.", MinLength("a", 2, "Name"))
	require.Equal(t, "Name must be at least 2 characters.", MinLength(" a ", 2, "Name"))
	require.Empty(t, MinLength("ab", 2, "Name"))
	// absent values pass; Required owns presence
	require.Empty(t, MinLength("", 2, "Name"))

	// lengths count characters, not bytes
	require.Equal(t, "Name must be at least 2 characters.", MinLength("é", 2, "Name"))
	require.Empty(t, MinLength("éé", 2, "Name"))
}

func TestMaxLength(t *testing.T) {
	require.Equal(t, "Name must be no more than 3 characters.", MaxLength("abcd", 3, "Name"))
	require.Empty(t, MaxLength("abc", 3, "Name"))
	require.Empty(t, MaxLength("", 3, "Name"))

	// lengths count characters, not bytes
	require.Empty(t, MaxLength(strings.Repeat("é", 200), 200, "Name"))
	require.Equal(t, "Name must be no more than 200 characters.",
		MaxLength(strings.Repeat("é", 201), 200, "Name"))
}

func TestEmailFormat(t *testing.T) {
	valid := []string{"a@acme.com", "first.last@sub.example.org", "x+tag@d.io"}
	for _, email := range valid {
		require.Empty(t, EmailFormat(email, "Email"), email)
	}

	invalid := []string{"not-an-email", "a@b", "@acme.com", "a b@acme.com", "a@acme .com"}
	for _, email := range invalid {
		require.Equal(t, "Email format is invalid.", EmailFormat(email, "Email"), email)
	}

	require.Empty(t, EmailFormat("", "Email"))
}

func TestSlugFormat(t *testing.T) {
	valid := []string{"acme", "acme-corp", "a1-b2-c3", "42"}
	for _, slug := range valid {
		require.Empty(t, SlugFormat(slug, "Slug"), slug)
	}

	invalid := []string{"Acme Corp", "ACME", "-acme", "acme-", "acme--corp", "acme_corp"}
	for _, slug := range invalid {
		require.Equal(t,
			"Slug must contain only lowercase letters, numbers, and hyphens.",
			SlugFormat(slug, "Slug"), slug)
	}
}

func TestStatus(t *testing.T) {
	allowed := []string{"ACTIVE", "COMPLETED", "ON_HOLD"}
	require.Empty(t, Status("ACTIVE", allowed, "Status"))
	require.Equal(t,
		"Status must be one of: ACTIVE, COMPLETED, ON_HOLD.",
		Status("DONE", allowed, "Status"))
	require.Empty(t, Status("", allowed, "Status"))
}

func TestValidateOrganizationInput(t *testing.T) {
	errs := ValidateOrganizationInput(OrganizationInput{
		Name:         "Acme",
		Slug:         "acme-corp",
		ContactEmail: "a@acme.com",
	})
	require.False(t, errs.HasErrors())

	errs = ValidateOrganizationInput(OrganizationInput{
		Name:         "A",
		Slug:         "Acme Corp",
		ContactEmail: "nope",
	})
	require.True(t, errs.HasErrors())
	require.Equal(t, []string{
		"Name must be at least 2 characters.",
		"Slug must contain only lowercase letters, numbers, and hyphens.",
		"Contact email format is invalid.",
	}, errs.GetErrors())
}

func TestValidateOrganizationInput_Empty(t *testing.T) {
	errs := ValidateOrganizationInput(OrganizationInput{})
	require.Equal(t, []string{
		"Name is required.",
		"Slug is required.",
		"Contact email is required.",
	}, errs.GetErrors())
}

func TestValidateProjectInput(t *testing.T) {
	errs := ValidateProjectInput(ProjectInput{OrganizationID: 1, Name: "Website"}, false)
	require.False(t, errs.HasErrors())

	// create requires the organization reference
	errs = ValidateProjectInput(ProjectInput{Name: "Website"}, false)
	require.Equal(t, []string{"Organization is required."}, errs.GetErrors())

	// update does not
	errs = ValidateProjectInput(ProjectInput{Name: "Website"}, true)
	require.False(t, errs.HasErrors())

	errs = ValidateProjectInput(ProjectInput{OrganizationID: 1, Name: "Website", Status: "WRONG"}, false)
	require.Equal(t, []string{"Status must be one of: ACTIVE, COMPLETED, ON_HOLD."}, errs.GetErrors())
}

func TestValidateTaskInput(t *testing.T) {
	bad := "bad-email"
	errs := ValidateTaskInput(TaskInput{ProjectID: 1, Title: "Fix bug", AssigneeEmail: &bad}, false)
	require.Equal(t, []string{"Assignee email format is invalid."}, errs.GetErrors())

	errs = ValidateTaskInput(TaskInput{Title: "T", Status: "NOPE"}, false)
	require.Equal(t, []string{
		"Project is required.",
		"Title must be at least 2 characters.",
		"Status must be one of: TODO, IN_PROGRESS, DONE.",
	}, errs.GetErrors())
}

func TestValidateCommentInput(t *testing.T) {
	errs := ValidateCommentInput(CommentInput{TaskID: 1, Content: "looks good", AuthorEmail: "a@acme.com"})
	require.False(t, errs.HasErrors())

	errs = ValidateCommentInput(CommentInput{Content: "   "})
	require.Equal(t, []string{
		"Task is required.",
		"Content is required.",
		"Author email is required.",
	}, errs.GetErrors())
}

func TestValidateRegisterInput(t *testing.T) {
	errs := ValidateRegisterInput(RegisterInput{
		Email:            "admin@acme.com",
		Password:         "supersecret",
		Name:             "Admin",
		OrganizationName: "Acme",
		OrganizationSlug: "acme",
	})
	require.False(t, errs.HasErrors())

	errs = ValidateRegisterInput(RegisterInput{
		Email:            "admin@acme.com",
		Password:         "short",
		Name:             "Admin",
		OrganizationName: "Acme",
		OrganizationSlug: "Bad Slug",
	})
	require.Equal(t, []string{
		"Password must be at least 8 characters.",
		"Organization slug must contain only lowercase letters, numbers, and hyphens.",
	}, errs.GetErrors())
}
