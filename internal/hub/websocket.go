package hub

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 15 * time.Second
)

// inboundMessage is what connected clients may send over the socket
type inboundMessage struct {
	Type    string    `json:"type"`
	TaskID  uuid.UUID `json:"task_id"`
	Title   string    `json:"title"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
}

// Client-sent message types
const (
	opSendTaskUpdate    = "SendTaskUpdate"
	opNotifyTaskCreated = "NotifyTaskCreated"
	opNotifyTaskUpdated = "NotifyTaskUpdated"
	opNotifyTaskDeleted = "NotifyTaskDeleted"
)

// ServeWS upgrades the request to a websocket and keeps the connection
// subscribed to the hub until the client disconnects
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.WithError(err).Error("websocket accept failed")
		return
	}

	sub := h.subscribe()
	h.log.WithField("subscribers", h.SubscriberCount()).Info("websocket client connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer func() {
		cancel()
		h.unsubscribe(sub)
		conn.Close(websocket.StatusNormalClosure, "")
		h.log.WithField("subscribers", h.SubscriberCount()).Info("websocket client disconnected")
	}()

	go h.writePump(ctx, conn, sub)
	h.readLoop(ctx, conn)
}

func (h *Hub) writePump(ctx context.Context, conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev := <-sub.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := wsjson.Write(writeCtx, conn, ev)
			cancel()
			if err != nil {
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var msg inboundMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return
		}

		switch msg.Type {
		case opSendTaskUpdate:
			h.Broadcast(TaskUpdateMessage(msg.Message))
		case opNotifyTaskCreated:
			h.Broadcast(TaskCreated(msg.TaskID, msg.Title))
		case opNotifyTaskUpdated:
			h.Broadcast(TaskUpdated(msg.TaskID, msg.Title, msg.Status))
		case opNotifyTaskDeleted:
			h.Broadcast(TaskDeleted(msg.TaskID))
		default:
			h.log.WithField("type", msg.Type).Debug("ignoring unknown websocket message")
		}
	}
}
