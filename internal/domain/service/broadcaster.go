package service

import (
	"time"

	"github.com/google/uuid"
)

// Outbound real-time event types.
const (
	EventJobJoined          = "job:joined"
	EventJobStatusUpdated   = "job:status-updated"
	EventJobLocationUpdated = "job:location-updated"
	EventJobUpdated         = "job:updated"
	EventMessageNew         = "message:new"
	EventError              = "error"
)

// Event is one outbound real-time payload fanned out to a room. Events for a
// single job are published in commit order; there is no replay for
// reconnecting clients.
type Event struct {
	Type      string    `json:"type"`
	Room      string    `json:"room,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RoomBroadcaster fans events out to every connection in a room. Any
// WebSocket or long-poll implementation satisfies it.
type RoomBroadcaster interface {
	// Join adds a connection to a room.
	Join(connID, room string)

	// Leave removes a connection from a room.
	Leave(connID, room string)

	// Publish delivers the event to all members of the room, including the
	// originating connection.
	Publish(room string, event *Event)
}

// Room name helpers. Every connection is automatically a member of its user
// and role rooms; job rooms are joined explicitly.
func JobRoom(jobID uuid.UUID) string { return "job:" + jobID.String() }

// UserRoom returns the per-user room name.
func UserRoom(userID uuid.UUID) string { return "user:" + userID.String() }

// RoleRoom returns the per-role room name.
func RoleRoom(role string) string { return "role:" + role }
