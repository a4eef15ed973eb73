// Package ws implements the real-time WebSocket delivery surface: one hub
// fanning room events out to connected clients.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"wrench/internal/domain/service"
)

// Hub maintains active clients and fans room events out to them. It is the
// process-local implementation of service.RoomBroadcaster.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client          // connID -> client
	rooms   map[string]map[*Client]bool // room -> members

	register   chan *Client
	unregister chan *Client

	logger *slog.Logger
}

// NewHub creates a new WebSocket hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run processes client registration until ctx is canceled.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			h.logger.Debug("Client registered",
				slog.String("connID", client.id),
				slog.String("userID", client.userID.String()),
			)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				for room, members := range h.rooms {
					if members[client] {
						delete(members, client)
						if len(members) == 0 {
							delete(h.rooms, room)
						}
					}
				}
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug("Client unregistered", slog.String("connID", client.id))

		case <-ticker.C:
			h.mu.RLock()
			clients, rooms := len(h.clients), len(h.rooms)
			h.mu.RUnlock()
			h.logger.Debug("Hub stats", slog.Int("clients", clients), slog.Int("rooms", rooms))
		}
	}
}

// Join adds a connection to a room.
func (h *Hub) Join(connID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[connID]
	if !ok {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]bool)
		h.rooms[room] = members
	}
	members[client] = true
}

// Leave removes a connection from a room.
func (h *Hub) Leave(connID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[connID]
	if !ok {
		return
	}
	if members, ok := h.rooms[room]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Publish delivers the event to all members of the room, including the
// originating connection. Members whose send buffer is full are skipped; slow
// consumers never block the fan-out.
func (h *Hub) Publish(room string, event *service.Event) {
	event.Room = room
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)

		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("Dropping event for slow client",
				slog.String("connID", client.id),
				slog.String("room", room),
			)
		}
	}
}

// sendTo delivers an event to one connection only.
func (h *Hub) sendTo(client *Client, event *service.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	select {
	case client.send <- data:
	default:
	}
}
