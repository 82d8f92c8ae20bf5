package services

import (
	"testing"

	apierrors "github.com/markjessn/mini-pms/internal/errors"
	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/notify"
	"github.com/markjessn/mini-pms/internal/validation"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")

	project, err := env.projects.Create(validation.ProjectInput{
		OrganizationID: org.ID,
		Name:           "  Website Redesign  ",
		Description:    strPtr("  refresh the landing page  "),
	})
	require.NoError(t, err)

	require.Equal(t, "Website Redesign", project.Name)
	require.Equal(t, "refresh the landing page", project.Description)
	require.Equal(t, models.ProjectStatusActive, project.Status)
}

func TestProjectService_CreateUnknownOrganization(t *testing.T) {
	env := newServiceEnv(t)

	_, err := env.projects.Create(validation.ProjectInput{
		OrganizationID: 999,
		Name:           "Website",
	})

	var nerr *apierrors.NotFoundError
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, "Organization not found.", nerr.Error())
}

func TestProjectService_CreateInvalidStatus(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")

	_, err := env.projects.Create(validation.ProjectInput{
		OrganizationID: org.ID,
		Name:           "Website",
		Status:         "SHIPPED",
	})

	var verr *apierrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"Status must be one of: ACTIVE, COMPLETED, ON_HOLD."}, verr.Messages)
}

func TestProjectService_UpdatePartial(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")
	project := env.createProject(t, org.ID, "Website")
	require.NoError(t, env.db.Model(project).Update("description", "keep me").Error)

	// only name and status given: description must survive
	updated, err := env.projects.Update(project.ID, validation.ProjectInput{
		Name:   "Website v2",
		Status: "ON_HOLD",
	})
	require.NoError(t, err)

	require.Equal(t, "Website v2", updated.Name)
	require.Equal(t, "keep me", updated.Description)
	require.Equal(t, models.ProjectStatusOnHold, updated.Status)
}

func TestProjectService_UpdatePublishesEvent(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")
	project := env.createProject(t, org.ID, "Website")

	_, err := env.projects.Update(project.ID, validation.ProjectInput{Name: "Website v2"})
	require.NoError(t, err)

	require.Equal(t, []string{notify.OrganizationProjectsTopic("acme")}, env.publisher.topics)
	require.Equal(t, []notify.Event{{Type: "project.updated", ID: project.ID}}, env.publisher.events)
}

func TestProjectService_UpdateUnknown(t *testing.T) {
	env := newServiceEnv(t)

	_, err := env.projects.Update(999, validation.ProjectInput{Name: "Ghost"})

	var nerr *apierrors.NotFoundError
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, "Project not found.", nerr.Error())
	require.Empty(t, env.publisher.events)
}

func TestProjectService_Delete(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")
	project := env.createProject(t, org.ID, "Website")
	env.createTask(t, project.ID, "Fix bug")

	require.NoError(t, env.projects.Delete(project.ID))

	var taskCount int64
	require.NoError(t, env.db.Model(&models.Task{}).Count(&taskCount).Error)
	require.Zero(t, taskCount)
}

func TestProjectService_ListUnknownSlug(t *testing.T) {
	env := newServiceEnv(t)

	projects, total, err := env.projects.List(ListProjectsInput{OrganizationSlug: "nope"})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, projects)
}

func TestProjectService_ListFilters(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")
	other := env.createOrganization(t, "other")

	env.createProject(t, org.ID, "Website")
	env.createProject(t, other.ID, "Stays Hidden")
	onHold := &models.Project{OrganizationID: org.ID, Name: "Mobile", Status: models.ProjectStatusOnHold}
	require.NoError(t, env.db.Create(onHold).Error)

	projects, total, err := env.projects.List(ListProjectsInput{OrganizationSlug: "acme"})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, projects, 2)

	status := models.ProjectStatusOnHold
	projects, total, err = env.projects.List(ListProjectsInput{OrganizationSlug: "acme", Status: &status})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Mobile", projects[0].Name)
}

func TestProjectService_GetUnknown(t *testing.T) {
	env := newServiceEnv(t)

	project, err := env.projects.Get(999)
	require.NoError(t, err)
	require.Nil(t, project)
}

func TestProjectService_GetLoadsTasks(t *testing.T) {
	env := newServiceEnv(t)
	org := env.createOrganization(t, "acme")
	project := env.createProject(t, org.ID, "Website")
	env.createTask(t, project.ID, "Fix bug")
	done := &models.Task{ProjectID: project.ID, Title: "Ship", Status: models.TaskStatusDone}
	require.NoError(t, env.db.Create(done).Error)

	got, err := env.projects.Get(project.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 2)
	require.Equal(t, 50.0, got.CompletionRate())
}
