package notify

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/markjessn/mini-pms/internal/logging"
)

// Hub fans events out to websocket connections subscribed per topic.
// Writes to a connection are serialized through a per-connection mutex;
// gorilla/websocket allows at most one concurrent writer per connection.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*websocket.Conn]struct{}
	writeLocks  map[*websocket.Conn]*sync.Mutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*websocket.Conn]struct{}),
		writeLocks:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Subscribe registers a connection on a topic.
func (h *Hub) Subscribe(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[topic] == nil {
		h.subscribers[topic] = make(map[*websocket.Conn]struct{})
	}
	h.subscribers[topic][conn] = struct{}{}
	if h.writeLocks[conn] == nil {
		h.writeLocks[conn] = &sync.Mutex{}
	}
}

// Unsubscribe removes a connection from a topic.
func (h *Hub) Unsubscribe(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subscribers[topic], conn)
	if len(h.subscribers[topic]) == 0 {
		delete(h.subscribers, topic)
	}
	for _, conns := range h.subscribers {
		if _, ok := conns[conn]; ok {
			return
		}
	}
	delete(h.writeLocks, conn)
}

// SubscriberCount returns the number of connections on a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[topic])
}

// Publish writes the event to every subscriber of the topic. Write failures
// drop the subscriber; they never propagate to the caller.
func (h *Hub) Publish(topic string, event Event) {
	type target struct {
		conn *websocket.Conn
		lock *sync.Mutex
	}

	h.mu.RLock()
	targets := make([]target, 0, len(h.subscribers[topic]))
	for conn := range h.subscribers[topic] {
		targets = append(targets, target{conn: conn, lock: h.writeLocks[conn]})
	}
	h.mu.RUnlock()

	for _, t := range targets {
		t.lock.Lock()
		err := t.conn.WriteJSON(event)
		t.lock.Unlock()
		if err != nil {
			logging.Logger.WithField("topic", topic).WithError(err).Warn("Dropping websocket subscriber")
			t.conn.Close()
			h.Unsubscribe(topic, t.conn)
		}
	}
}
