package models

import (
	"math"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
)

// ProjectStatuses lists the allowed project status values in display order.
var ProjectStatuses = []string{
	string(ProjectStatusActive),
	string(ProjectStatusCompleted),
	string(ProjectStatusOnHold),
}

type Project struct {
	ID             uint64        `gorm:"primarykey" json:"id"`
	OrganizationID uint64        `gorm:"not null;index:idx_projects_org_status;index:idx_projects_org_name" json:"organization_id"`
	Name           string        `gorm:"type:varchar(200);not null;index:idx_projects_org_name" json:"name"`
	Description    string        `gorm:"type:text" json:"description"`
	Status         ProjectStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_projects_org_status" json:"status"`
	DueDate        *time.Time    `json:"due_date"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Tasks        []Task       `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

// TaskCount returns the number of loaded tasks.
func (p *Project) TaskCount() int {
	return len(p.Tasks)
}

// CompletedTasks returns the number of loaded tasks with status DONE.
func (p *Project) CompletedTasks() int {
	count := 0
	for _, t := range p.Tasks {
		if t.Status == TaskStatusDone {
			count++
		}
	}
	return count
}

// CompletionRateOf returns the percentage of completed tasks rounded to one
// decimal, or 0 when total is zero.
func CompletionRateOf(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

// CompletionRate computes the completion rate over the loaded tasks.
func (p *Project) CompletionRate() float64 {
	return CompletionRateOf(int64(p.CompletedTasks()), int64(p.TaskCount()))
}
