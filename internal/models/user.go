package models

import "time"

type UserRole string

const (
	RoleOrgAdmin  UserRole = "ORG_ADMIN"
	RoleOrgMember UserRole = "ORG_MEMBER"
)

type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	OrganizationID *uint64   `gorm:"index" json:"organization_id"`
	Role           UserRole  `gorm:"type:varchar(20);not null;default:'ORG_MEMBER'" json:"role"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsStaff        bool      `gorm:"not null;default:false" json:"is_staff"`
	PasswordHash   string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
