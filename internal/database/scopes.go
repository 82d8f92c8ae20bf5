package database

import "gorm.io/gorm"

// Paginate applies page-based offset/limit to a query. Zero values disable
// pagination.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page > 0 && pageSize > 0 {
			return db.Offset((page - 1) * pageSize).Limit(pageSize)
		}
		return db
	}
}

// TenantScoped restricts a query to rows owned by the given organization.
func TenantScoped(organizationID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", organizationID)
	}
}
