package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/markjessn/mini-pms/internal/dto"
	"github.com/markjessn/mini-pms/internal/services"
	"github.com/markjessn/mini-pms/internal/validation"
)

// OrganizationHandler exposes organization queries and mutations.
type OrganizationHandler struct {
	orgService *services.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// ListOrganizations returns all organizations ordered by name.
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.orgService.List()
	if err != nil {
		status, messages := classify(c, err)
		c.JSON(status, gin.H{"errors": messages})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": dto.ToOrganizationDTOs(orgs)})
}

// GetOrganization returns an organization by slug, or null when unknown.
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.orgService.GetBySlug(c.Param("slug"))
	if err != nil {
		status, messages := classify(c, err)
		c.JSON(status, gin.H{"errors": messages})
		return
	}

	if org == nil {
		c.JSON(http.StatusOK, gin.H{"organization": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": dto.ToOrganizationDTO(*org)})
}

// CreateOrganization creates a new organization.
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var input validation.OrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "organization": nil})
		return
	}

	org, err := h.orgService.Create(input)
	if err != nil {
		respondMutation(c, http.StatusCreated, "organization", nil, err)
		return
	}

	respondMutation(c, http.StatusCreated, "organization", dto.ToOrganizationDTO(*org), nil)
}

// UpdateOrganization overwrites an organization's fields from the full input.
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid organization ID."}, "organization": nil})
		return
	}

	var input validation.OrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "organization": nil})
		return
	}

	org, err := h.orgService.Update(id, input)
	if err != nil {
		respondMutation(c, http.StatusOK, "organization", nil, err)
		return
	}

	respondMutation(c, http.StatusOK, "organization", dto.ToOrganizationDTO(*org), nil)
}

// DeleteOrganization removes an organization and everything it owns. Admin
// only.
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid organization ID."}})
		return
	}

	respondDelete(c, h.orgService.Delete(id))
}
