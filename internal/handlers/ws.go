package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/markjessn/mini-pms/internal/logging"
	"github.com/markjessn/mini-pms/internal/notify"
)

// WSHandler upgrades subscriber connections and parks them on hub topics.
type WSHandler struct {
	hub *notify.Hub
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub *notify.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SubscribeProjectTasks streams task-update events for a project.
func (h *WSHandler) SubscribeProjectTasks(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}
	h.subscribe(c, notify.ProjectTasksTopic(projectID))
}

// SubscribeTaskComments streams comment-added events for a task.
func (h *WSHandler) SubscribeTaskComments(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}
	h.subscribe(c, notify.TaskCommentsTopic(taskID))
}

// SubscribeOrganizationProjects streams project-update events for an
// organization.
func (h *WSHandler) SubscribeOrganizationProjects(c *gin.Context) {
	h.subscribe(c, notify.OrganizationProjectsTopic(c.Param("slug")))
}

// subscribe upgrades the connection and blocks until the client goes away.
func (h *WSHandler) subscribe(c *gin.Context, topic string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	h.hub.Subscribe(topic, conn)
	defer h.hub.Unsubscribe(topic, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
