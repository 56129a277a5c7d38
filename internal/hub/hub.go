package hub

import (
	"sync"

	"task-orchestrator-backend/internal/logger"

	"github.com/google/uuid"
)

// Event names pushed to subscribers
const (
	EventTaskCreated       = "TaskCreated"
	EventTaskUpdated       = "TaskUpdated"
	EventTaskDeleted       = "TaskDeleted"
	EventReceiveTaskUpdate = "ReceiveTaskUpdate"
)

// Event is a named message fanned out to every connected subscriber
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// TaskEventPayload carries the task fields of a task lifecycle event
type TaskEventPayload struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title,omitempty"`
	Status string    `json:"status,omitempty"`
}

// TaskCreated builds the event broadcast after a task is created
func TaskCreated(id uuid.UUID, title string) Event {
	return Event{Type: EventTaskCreated, Payload: TaskEventPayload{ID: id, Title: title}}
}

// TaskUpdated builds the event broadcast after a task is updated
func TaskUpdated(id uuid.UUID, title, status string) Event {
	return Event{Type: EventTaskUpdated, Payload: TaskEventPayload{ID: id, Title: title, Status: status}}
}

// TaskDeleted builds the event broadcast after a task is deleted
func TaskDeleted(id uuid.UUID) Event {
	return Event{Type: EventTaskDeleted, Payload: TaskEventPayload{ID: id}}
}

// TaskUpdateMessage builds the free-form rebroadcast event clients can send
func TaskUpdateMessage(message string) Event {
	return Event{Type: EventReceiveTaskUpdate, Payload: message}
}

// Publisher is the broadcast surface handlers depend on
type Publisher interface {
	Broadcast(ev Event)
}

// Hub keeps the registry of live subscribers and fans events out to all of
// them. There is no delivery guarantee: a subscriber that connects after an
// event fired never sees it, and slow subscribers drop events rather than
// block the broadcaster.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	log         *logger.Logger
}

type subscriber struct {
	send chan Event
}

const sendBufferSize = 64

// New creates an empty hub
func New() *Hub {
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		log:         logger.WithComponent("hub"),
	}
}

// Broadcast delivers an event to every currently connected subscriber.
// Per-subscriber order matches broadcast order; a full send buffer drops
// the event for that subscriber only.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		select {
		case sub.send <- ev:
		default:
			h.log.WithField("event", ev.Type).Warn("subscriber send buffer full, dropping event")
		}
	}
}

// SubscriberCount returns the number of live subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

func (h *Hub) subscribe() *subscriber {
	sub := &subscriber{send: make(chan Event, sendBufferSize)}
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()
}
