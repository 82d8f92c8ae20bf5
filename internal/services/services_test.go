package services

import (
	"testing"

	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/notify"
	"github.com/markjessn/mini-pms/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// serviceEnv wires all services against a fresh in-memory database.
type serviceEnv struct {
	db        *gorm.DB
	publisher *recordingPublisher

	orgs     *OrganizationService
	auth     *AuthService
	projects *ProjectService
	tasks    *TaskService
	comments *CommentService
	stats    *StatisticsService
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	topics []string
	events []notify.Event
}

func (p *recordingPublisher) Publish(topic string, event notify.Event) {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
}

func newServiceEnv(t *testing.T) *serviceEnv {
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

	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)

	publisher := &recordingPublisher{}

	return &serviceEnv{
		db:        db,
		publisher: publisher,
		orgs:      NewOrganizationService(orgRepo),
		auth:      NewAuthService(userRepo, orgRepo),
		projects:  NewProjectService(projectRepo, orgRepo, publisher),
		tasks:     NewTaskService(taskRepo, projectRepo, publisher),
		comments:  NewCommentService(commentRepo, taskRepo, publisher),
		stats:     NewStatisticsService(statsRepo, orgRepo),
	}
}

func (e *serviceEnv) createOrganization(t *testing.T, slug string) *models.Organization {
	t.Helper()
	org := &models.Organization{Name: "Acme", Slug: slug, ContactEmail: "a@acme.com"}
	require.NoError(t, e.db.Create(org).Error)
	return org
}

func (e *serviceEnv) createProject(t *testing.T, orgID uint64, name string) *models.Project {
	t.Helper()
	project := &models.Project{OrganizationID: orgID, Name: name, Status: models.ProjectStatusActive}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

func (e *serviceEnv) createTask(t *testing.T, projectID uint64, title string) *models.Task {
	t.Helper()
	task := &models.Task{ProjectID: projectID, Title: title, Status: models.TaskStatusTodo}
	require.NoError(t, e.db.Create(task).Error)
	return task
}

func strPtr(s string) *string { return &s }
