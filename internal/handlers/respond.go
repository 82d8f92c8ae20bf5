package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/markjessn/mini-pms/internal/errors"
	"github.com/markjessn/mini-pms/internal/logging"
	"github.com/markjessn/mini-pms/internal/middleware"
)

// respondMutation flattens the mutation outcome into the uniform
// {success, errors, <entity>} envelope. No error ever crosses this boundary
// unclassified: unknown failures are logged and replaced by a generic
// message.
func respondMutation(c *gin.Context, successStatus int, key string, entity interface{}, err error) {
	if err == nil {
		c.JSON(successStatus, gin.H{
			"success": true,
			"errors":  []string{},
			key:       entity,
		})
		return
	}

	status, messages := classify(c, err)
	c.JSON(status, gin.H{
		"success": false,
		"errors":  messages,
		key:       nil,
	})
}

// respondDelete is respondMutation without an entity key.
func respondDelete(c *gin.Context, err error) {
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"errors":  []string{},
		})
		return
	}

	status, messages := classify(c, err)
	c.JSON(status, gin.H{
		"success": false,
		"errors":  messages,
	})
}

func classify(c *gin.Context, err error) (int, []string) {
	var validationErr *apierrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Messages
	}

	var notFoundErr *apierrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, []string{notFoundErr.Error()}
	}

	var conflictErr *apierrors.ConflictError
	if errors.As(err, &conflictErr) {
		return http.StatusConflict, []string{conflictErr.Error()}
	}

	var forbiddenErr *apierrors.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		return http.StatusForbidden, []string{forbiddenErr.Error()}
	}

	logging.Logger.WithFields(map[string]interface{}{
		"request_id": middleware.GetRequestID(c),
		"path":       c.Request.URL.Path,
	}).WithError(err).Error("Unhandled mutation error")

	return http.StatusInternalServerError, []string{apierrors.InternalMessage}
}
