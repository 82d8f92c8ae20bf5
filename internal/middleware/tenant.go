package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markjessn/mini-pms/internal/constants"
	"github.com/markjessn/mini-pms/internal/database"
	"github.com/markjessn/mini-pms/internal/models"
	"gorm.io/gorm"
)

// ResolveTenant looks up the organization named by the X-Organization-Slug
// header and stores it in the request context. A missing header or unknown
// slug leaves the context organization unset; it is not an error here.
func ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.GetHeader(constants.TenantHeader)
		if slug == "" {
			c.Next()
			return
		}

		var org models.Organization
		err := database.GetDB().Where("slug = ?", slug).First(&org).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve organization"})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		c.Set(constants.ContextKeyOrganization, org)
		c.Next()
	}
}

// RequireTenant rejects requests without a resolved tenant context. Routes
// behind it never see cross-tenant data.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetOrganization(c); !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetOrganization retrieves the resolved tenant organization from context.
func GetOrganization(c *gin.Context) (*models.Organization, bool) {
	value, exists := c.Get(constants.ContextKeyOrganization)
	if !exists {
		return nil, false
	}

	org, ok := value.(models.Organization)
	if !ok {
		return nil, false
	}
	return &org, true
}
