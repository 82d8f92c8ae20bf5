package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/markjessn/mini-pms/internal/constants"
	"github.com/markjessn/mini-pms/internal/dto"
	"github.com/markjessn/mini-pms/internal/middleware"
	"github.com/markjessn/mini-pms/internal/services"
	"github.com/markjessn/mini-pms/internal/validation"
)

// AuthHandler exposes registration, login, and member administration.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an organization and its admin user in one transaction.
func (h *AuthHandler) Register(c *gin.Context) {
	var input validation.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "user": nil})
		return
	}

	user, err := h.authService.Register(input)
	if err != nil {
		respondMutation(c, http.StatusCreated, "user", nil, err)
		return
	}

	respondMutation(c, http.StatusCreated, "user", dto.ToUserDTO(*user), nil)
}

// Login authenticates and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "user": nil})
		return
	}

	user, err := h.authService.Login(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": []string{services.MsgInvalidCredentials}, "user": nil})
		case errors.Is(err, services.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "errors": []string{services.MsgAccountDisabled}, "user": nil})
		default:
			respondMutation(c, http.StatusOK, "user", nil, err)
		}
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		respondMutation(c, http.StatusOK, "user", nil, err)
		return
	}

	respondMutation(c, http.StatusOK, "user", dto.ToUserDTO(*user), nil)
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondDelete(c, err)
		return
	}
	respondDelete(c, nil)
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDTO(*user)})
}

// CreateOrgMember creates an ORG_MEMBER user in the organization named by
// the path. Admin only.
func (h *AuthHandler) CreateOrgMember(c *gin.Context) {
	orgID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid organization ID."}, "user": nil})
		return
	}

	var input validation.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "user": nil})
		return
	}

	user, err := h.authService.CreateOrgMember(input, orgID)
	if err != nil {
		respondMutation(c, http.StatusCreated, "user", nil, err)
		return
	}

	respondMutation(c, http.StatusCreated, "user", dto.ToUserDTO(*user), nil)
}

// DeleteOrgMember removes a member. Admin accounts are refused. Admin only.
func (h *AuthHandler) DeleteOrgMember(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid user ID."}})
		return
	}

	respondDelete(c, h.authService.DeleteOrgMember(userID))
}
