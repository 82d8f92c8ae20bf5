package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/markjessn/mini-pms/internal/dto"
	"github.com/markjessn/mini-pms/internal/middleware"
	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/services"
	"github.com/markjessn/mini-pms/internal/utils"
	"github.com/markjessn/mini-pms/internal/validation"
)

// ProjectHandler exposes project queries and mutations. All routes require a
// resolved tenant context.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns the tenant organization's projects with optional
// status and search filters.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	org, _ := middleware.GetOrganization(c)
	params := utils.GetPaginationParams(c)

	input := services.ListProjectsInput{
		OrganizationSlug: org.Slug,
		Search:           c.Query("search"),
		Page:             params.Page,
		PageSize:         params.Limit,
	}
	if status := c.Query("status"); status != "" {
		s := models.ProjectStatus(status)
		input.Status = &s
	}

	projects, total, err := h.projectService.List(input)
	if err != nil {
		status, messages := classify(c, err)
		c.JSON(status, gin.H{"errors": messages})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(projects),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetProject returns a project with its tasks, or null when unknown.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		status, messages := classify(c, err)
		c.JSON(status, gin.H{"errors": messages})
		return
	}

	if project == nil {
		c.JSON(http.StatusOK, gin.H{"project": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": dto.ToProjectDTO(*project, true)})
}

// CreateProject creates a project under the tenant organization.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input validation.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "project": nil})
		return
	}

	if input.OrganizationID == 0 {
		if org, ok := middleware.GetOrganization(c); ok {
			input.OrganizationID = org.ID
		}
	}

	project, err := h.projectService.Create(input)
	if err != nil {
		respondMutation(c, http.StatusCreated, "project", nil, err)
		return
	}

	respondMutation(c, http.StatusCreated, "project", dto.ToProjectDTO(*project, false), nil)
}

// UpdateProject applies a partial update to a project.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid project ID."}, "project": nil})
		return
	}

	var input validation.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "project": nil})
		return
	}

	project, err := h.projectService.Update(id, input)
	if err != nil {
		respondMutation(c, http.StatusOK, "project", nil, err)
		return
	}

	respondMutation(c, http.StatusOK, "project", dto.ToProjectDTO(*project, false), nil)
}

// DeleteProject removes a project, its tasks, and their comments.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid project ID."}})
		return
	}

	respondDelete(c, h.projectService.Delete(id))
}
