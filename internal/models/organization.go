package models

import "time"

// Organization is the tenant: the unit of data isolation. It strictly owns
// its projects and users.
type Organization struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	ContactEmail string    `gorm:"type:varchar(255);not null" json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Projects []Project `gorm:"foreignKey:OrganizationID" json:"projects,omitempty"`
	Users    []User    `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
}
