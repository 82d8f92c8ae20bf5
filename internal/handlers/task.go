package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/markjessn/mini-pms/internal/dto"
	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/services"
	"github.com/markjessn/mini-pms/internal/utils"
	"github.com/markjessn/mini-pms/internal/validation"
)

// TaskHandler exposes task and comment queries and mutations. All routes
// require a resolved tenant context.
type TaskHandler struct {
	taskService    *services.TaskService
	commentService *services.CommentService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, commentService *services.CommentService) *TaskHandler {
	return &TaskHandler{
		taskService:    taskService,
		commentService: commentService,
	}
}

// ListTasks returns a project's tasks with optional status, search, and
// assignee filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	params := utils.GetPaginationParams(c)

	input := services.ListTasksInput{
		ProjectID:     projectID,
		Search:        c.Query("search"),
		AssigneeEmail: c.Query("assignee_email"),
		Page:          params.Page,
		PageSize:      params.Limit,
	}
	if status := c.Query("status"); status != "" {
		s := models.TaskStatus(status)
		input.Status = &s
	}

	tasks, total, err := h.taskService.List(input)
	if err != nil {
		status, messages := classify(c, err)
		c.JSON(status, gin.H{"errors": messages})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTask returns a task with its comments, or null when unknown.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		status, messages := classify(c, err)
		c.JSON(status, gin.H{"errors": messages})
		return
	}

	if task == nil {
		c.JSON(http.StatusOK, gin.H{"task": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task, true)})
}

// CreateTask creates a task under a project.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input validation.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "task": nil})
		return
	}

	task, err := h.taskService.Create(input)
	if err != nil {
		respondMutation(c, http.StatusCreated, "task", nil, err)
		return
	}

	respondMutation(c, http.StatusCreated, "task", dto.ToTaskDTO(*task, false), nil)
}

// UpdateTask applies a partial update to a task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid task ID."}, "task": nil})
		return
	}

	var input validation.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "task": nil})
		return
	}

	task, err := h.taskService.Update(id, input)
	if err != nil {
		respondMutation(c, http.StatusOK, "task", nil, err)
		return
	}

	respondMutation(c, http.StatusOK, "task", dto.ToTaskDTO(*task, false), nil)
}

// DeleteTask removes a task and its comments.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid task ID."}})
		return
	}

	respondDelete(c, h.taskService.Delete(id))
}

// ListTaskComments returns a task's comments oldest first.
func (h *TaskHandler) ListTaskComments(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	comments, err := h.commentService.ListForTask(taskID)
	if err != nil {
		status, messages := classify(c, err)
		c.JSON(status, gin.H{"errors": messages})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": dto.ToTaskCommentDTOs(comments)})
}

// AddTaskComment appends a comment to the task named by the path.
func (h *TaskHandler) AddTaskComment(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid task ID."}, "comment": nil})
		return
	}

	var input validation.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid request body."}, "comment": nil})
		return
	}
	input.TaskID = taskID

	comment, err := h.commentService.Add(input)
	if err != nil {
		respondMutation(c, http.StatusCreated, "comment", nil, err)
		return
	}

	respondMutation(c, http.StatusCreated, "comment", dto.ToTaskCommentDTO(*comment), nil)
}

// DeleteTaskComment removes a comment.
func (h *TaskHandler) DeleteTaskComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": []string{"Invalid comment ID."}})
		return
	}

	respondDelete(c, h.commentService.Delete(id))
}
