package models

import "time"

// TaskComment is immutable once written; it only ever gets deleted.
type TaskComment struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	TaskID      uint64    `gorm:"not null" json:"task_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	AuthorEmail string    `gorm:"type:varchar(255);not null" json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
