package repository

import (
	"github.com/markjessn/mini-pms/internal/models"
	"gorm.io/gorm"
)

// GormStatisticsRepository is a GORM implementation of StatisticsRepository
type GormStatisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository creates a new StatisticsRepository
func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &GormStatisticsRepository{db: db}
}

// Collect aggregates project and task counts for an organization.
func (r *GormStatisticsRepository) Collect(organizationID uint64) (*ProjectStatistics, error) {
	stats := &ProjectStatistics{}

	projects := r.db.Model(&models.Project{}).Where("organization_id = ?", organizationID)
	if err := projects.Count(&stats.TotalProjects).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		status models.ProjectStatus
		target *int64
	}{
		{models.ProjectStatusActive, &stats.ActiveProjects},
		{models.ProjectStatusCompleted, &stats.CompletedProjects},
		{models.ProjectStatusOnHold, &stats.OnHoldProjects},
	}
	for _, sc := range statusCounts {
		err := r.db.Model(&models.Project{}).
			Where("organization_id = ? AND status = ?", organizationID, sc.status).
			Count(sc.target).Error
		if err != nil {
			return nil, err
		}
	}

	tasks := r.db.Model(&models.Task{}).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.organization_id = ?", organizationID)
	if err := tasks.Count(&stats.TotalTasks).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&models.Task{}).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.organization_id = ? AND tasks.status = ?", organizationID, models.TaskStatusDone).
		Count(&stats.CompletedTasks).Error
	if err != nil {
		return nil, err
	}

	stats.OverallCompletionRate = models.CompletionRateOf(stats.CompletedTasks, stats.TotalTasks)

	return stats, nil
}
