package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists the allowed task status values in display order.
var TaskStatuses = []string{
	string(TaskStatusTodo),
	string(TaskStatusInProgress),
	string(TaskStatusDone),
}

type Task struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	ProjectID     uint64     `gorm:"not null;index:idx_tasks_project_status" json:"project_id"`
	Title         string     `gorm:"type:varchar(200);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Status        TaskStatus `gorm:"type:varchar(20);not null;default:'TODO';index:idx_tasks_project_status" json:"status"`
	AssigneeEmail string     `gorm:"type:varchar(255)" json:"assignee_email"`
	DueDate       *time.Time `json:"due_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	Project  Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Comments []TaskComment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}
