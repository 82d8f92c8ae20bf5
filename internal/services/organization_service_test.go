package services

import (
	"testing"

	apierrors "github.com/markjessn/mini-pms/internal/errors"
	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/validation"
	"github.com/stretchr/testify/require"
)

func TestOrganizationService_Create(t *testing.T) {
	env := newServiceEnv(t)

	org, err := env.orgs.Create(validation.OrganizationInput{
		Name:         "  Acme Corp  ",
		Slug:         "acme-corp",
		ContactEmail: "Contact@Acme.com",
	})
	require.NoError(t, err)

	require.Equal(t, "Acme Corp", org.Name)
	require.Equal(t, "acme-corp", org.Slug)
	require.Equal(t, "contact@acme.com", org.ContactEmail)
	require.NotZero(t, org.ID)
}

func TestOrganizationService_CreateValidation(t *testing.T) {
	env := newServiceEnv(t)

	_, err := env.orgs.Create(validation.OrganizationInput{
		Name:         "A",
		Slug:         "Not A Slug",
		ContactEmail: "nope",
	})

	var verr *apierrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{
		"Name must be at least 2 characters.",
		"Slug must contain only lowercase letters, numbers, and hyphens.",
		"Contact email format is invalid.",
	}, verr.Messages)
}

func TestOrganizationService_CreateDuplicateSlug(t *testing.T) {
	env := newServiceEnv(t)
	env.createOrganization(t, "acme")

	_, err := env.orgs.Create(validation.OrganizationInput{
		Name:         "Other",
		Slug:         "acme",
		ContactEmail: "o@other.com",
	})

	var cerr *apierrors.ConflictError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, MsgSlugTaken, cerr.Message)
}

func TestOrganizationService_Update(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")

	updated, err := env.orgs.Update(org.ID, validation.OrganizationInput{
		Name:         "Acme Renamed",
		Slug:         "acme", // keeping one's own slug is not a conflict
		ContactEmail: "new@acme.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Renamed", updated.Name)
	require.Equal(t, "new@acme.com", updated.ContactEmail)
}

func TestOrganizationService_UpdateSlugConflict(t *testing.T) {
	env := newServiceEnv(t)
	env.createOrganization(t, "taken")
	org := env.createOrganization(t, "acme")

	_, err := env.orgs.Update(org.ID, validation.OrganizationInput{
		Name:         "Acme",
		Slug:         "taken",
		ContactEmail: "a@acme.com",
	})

	var cerr *apierrors.ConflictError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, MsgSlugTaken, cerr.Message)
}

func TestOrganizationService_UpdateUnknown(t *testing.T) {
	env := newServiceEnv(t)

	_, err := env.orgs.Update(999, validation.OrganizationInput{
		Name:         "Ghost",
		Slug:         "ghost",
		ContactEmail: "g@ghost.com",
	})

	var nerr *apierrors.NotFoundError
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, "Organization not found.", nerr.Error())
}

func TestOrganizationService_Delete(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")
	project := env.createProject(t, org.ID, "Website")
	env.createTask(t, project.ID, "Fix bug")

	require.NoError(t, env.orgs.Delete(org.ID))

	var projectCount, taskCount int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&projectCount).Error)
	require.NoError(t, env.db.Model(&models.Task{}).Count(&taskCount).Error)
	require.Zero(t, projectCount)
	require.Zero(t, taskCount)

	err := env.orgs.Delete(org.ID)
	var nerr *apierrors.NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestOrganizationService_GetBySlugUnknown(t *testing.T) {
	env := newServiceEnv(t)

	org, err := env.orgs.GetBySlug("nope")
	require.NoError(t, err)
	require.Nil(t, org)
}

func TestOrganizationService_ListOrderedByName(t *testing.T) {
	env := newServiceEnv(t)
	require.NoError(t, env.db.Create(&models.Organization{Name: "Zeta", Slug: "zeta", ContactEmail: "z@z.com"}).Error)
	require.NoError(t, env.db.Create(&models.Organization{Name: "Alpha", Slug: "alpha", ContactEmail: "a@a.com"}).Error)

	orgs, err := env.orgs.List()
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	require.Equal(t, "Alpha", orgs[0].Name)
	require.Equal(t, "Zeta", orgs[1].Name)
}
