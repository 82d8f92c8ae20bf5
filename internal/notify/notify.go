// Package notify broadcasts mutation events to real-time subscribers over
// websockets. Delivery is best-effort: publishing never blocks a mutation and
// never reports failure to the caller.
package notify

import "fmt"

// Event is the payload broadcast to subscribers of a topic.
type Event struct {
	Type string `json:"type"`
	ID   uint64 `json:"id"`
}

// Publisher emits events to whoever is listening on a topic.
type Publisher interface {
	Publish(topic string, event Event)
}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) Publish(string, Event) {}

// ProjectTasksTopic keys task-update events by owning project.
func ProjectTasksTopic(projectID uint64) string {
	return fmt.Sprintf("project:%d:tasks", projectID)
}

// TaskCommentsTopic keys comment-added events by owning task.
func TaskCommentsTopic(taskID uint64) string {
	return fmt.Sprintf("task:%d:comments", taskID)
}

// OrganizationProjectsTopic keys project-update events by organization slug.
func OrganizationProjectsTopic(slug string) string {
	return fmt.Sprintf("org:%s:projects", slug)
}
