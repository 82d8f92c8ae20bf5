package repository

import (
	"testing"

	"github.com/markjessn/mini-pms/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.TaskComment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func seedOrganization(t *testing.T, db *gorm.DB, slug string) *models.Organization {
	t.Helper()
	org := &models.Organization{
		Name:         "Acme",
		Slug:         slug,
		ContactEmail: "a@acme.com",
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

func seedProject(t *testing.T, db *gorm.DB, orgID uint64, name string) *models.Project {
	t.Helper()
	project := &models.Project{
		OrganizationID: orgID,
		Name:           name,
		Status:         models.ProjectStatusActive,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedTask(t *testing.T, db *gorm.DB, projectID uint64, title string, status models.TaskStatus) *models.Task {
	t.Helper()
	task := &models.Task{
		ProjectID: projectID,
		Title:     title,
		Status:    status,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func TestOrganizationRepository_DuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db)

	require.NoError(t, repo.Create(&models.Organization{
		Name: "Acme", Slug: "acme-corp", ContactEmail: "a@acme.com",
	}))

	err := repo.Create(&models.Organization{
		Name: "Other", Slug: "acme-corp", ContactEmail: "o@other.com",
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestOrganizationRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db)

	org := seedOrganization(t, db, "acme")
	project := seedProject(t, db, org.ID, "Website")
	task := seedTask(t, db, project.ID, "Fix bug", models.TaskStatusTodo)
	require.NoError(t, db.Create(&models.TaskComment{
		TaskID: task.ID, Content: "on it", AuthorEmail: "a@acme.com",
	}).Error)
	require.NoError(t, db.Create(&models.User{
		Email: "m@acme.com", Name: "Member", OrganizationID: &org.ID,
		Role: models.RoleOrgMember, PasswordHash: "hashed",
	}).Error)

	require.NoError(t, repo.Delete(org.ID))

	var count int64
	for _, model := range []interface{}{
		&models.Organization{}, &models.Project{}, &models.Task{},
		&models.TaskComment{}, &models.User{},
	} {
		require.NoError(t, db.Model(model).Count(&count).Error)
		require.Zero(t, count)
	}
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	org := seedOrganization(t, db, "acme")
	project := seedProject(t, db, org.ID, "Website")
	other := seedProject(t, db, org.ID, "Mobile")
	task := seedTask(t, db, project.ID, "Fix bug", models.TaskStatusTodo)
	kept := seedTask(t, db, other.ID, "Ship it", models.TaskStatusTodo)
	require.NoError(t, db.Create(&models.TaskComment{
		TaskID: task.ID, Content: "on it", AuthorEmail: "a@acme.com",
	}).Error)

	require.NoError(t, repo.Delete(project.ID))

	var tasks []models.Task
	require.NoError(t, db.Find(&tasks).Error)
	require.Len(t, tasks, 1)
	require.Equal(t, kept.ID, tasks[0].ID)

	var commentCount int64
	require.NoError(t, db.Model(&models.TaskComment{}).Count(&commentCount).Error)
	require.Zero(t, commentCount)
}

func TestTaskRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	org := seedOrganization(t, db, "acme")
	project := seedProject(t, db, org.ID, "Website")
	seedTask(t, db, project.ID, "Fix login BUG", models.TaskStatusTodo)
	seedTask(t, db, project.ID, "Write docs", models.TaskStatusDone)
	debugTask := &models.Task{
		ProjectID:   project.ID,
		Title:       "Refactor",
		Description: "debug the flaky pipeline",
		Status:      models.TaskStatusInProgress,
	}
	require.NoError(t, db.Create(debugTask).Error)

	// case-insensitive substring match on title or description
	tasks, total, err := repo.List(TaskFilter{ProjectID: project.ID, Search: "bug"})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, tasks, 2)

	done := models.TaskStatusDone
	tasks, total, err = repo.List(TaskFilter{ProjectID: project.ID, Status: &done})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Write docs", tasks[0].Title)
}

func TestTaskRepository_ListByAssignee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	org := seedOrganization(t, db, "acme")
	project := seedProject(t, db, org.ID, "Website")
	assigned := &models.Task{
		ProjectID:     project.ID,
		Title:         "Fix bug",
		Status:        models.TaskStatusTodo,
		AssigneeEmail: "dev@acme.com",
	}
	require.NoError(t, db.Create(assigned).Error)
	seedTask(t, db, project.ID, "Unassigned", models.TaskStatusTodo)

	tasks, total, err := repo.List(TaskFilter{ProjectID: project.ID, AssigneeEmail: "DEV@acme"})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, assigned.ID, tasks[0].ID)
}

func TestProjectRepository_ListSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	org := seedOrganization(t, db, "acme")
	seedProject(t, db, org.ID, "Website Redesign")
	landing := &models.Project{
		OrganizationID: org.ID,
		Name:           "Internal",
		Description:    "new landing website",
		Status:         models.ProjectStatusOnHold,
	}
	require.NoError(t, db.Create(landing).Error)
	seedProject(t, db, org.ID, "Mobile App")

	projects, total, err := repo.List(ProjectFilter{OrganizationID: org.ID, Search: "WEBSITE"})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, projects, 2)
}

func TestStatisticsRepository_Collect(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatisticsRepository(db)

	org := seedOrganization(t, db, "acme")
	active := seedProject(t, db, org.ID, "Website")
	completed := &models.Project{
		OrganizationID: org.ID, Name: "Done deal", Status: models.ProjectStatusCompleted,
	}
	require.NoError(t, db.Create(completed).Error)

	seedTask(t, db, active.ID, "One", models.TaskStatusDone)
	seedTask(t, db, active.ID, "Two", models.TaskStatusTodo)
	seedTask(t, db, completed.ID, "Three", models.TaskStatusDone)
	seedTask(t, db, completed.ID, "Four", models.TaskStatusDone)

	stats, err := repo.Collect(org.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalProjects)
	require.Equal(t, int64(1), stats.ActiveProjects)
	require.Equal(t, int64(1), stats.CompletedProjects)
	require.Equal(t, int64(0), stats.OnHoldProjects)
	require.Equal(t, int64(4), stats.TotalTasks)
	require.Equal(t, int64(3), stats.CompletedTasks)
	require.Equal(t, 75.0, stats.OverallCompletionRate)
}

func TestStatisticsRepository_CollectEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatisticsRepository(db)

	org := seedOrganization(t, db, "empty")

	stats, err := repo.Collect(org.ID)
	require.NoError(t, err)
	require.Zero(t, stats.TotalTasks)
	require.Equal(t, 0.0, stats.OverallCompletionRate)
}
