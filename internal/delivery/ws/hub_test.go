package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"wrench/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	return hub
}

func newTestClient(sendBuffer int) *Client {
	return &Client{
		id:     uuid.New().String(),
		userID: uuid.New(),
		send:   make(chan []byte, sendBuffer),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func registerClient(t *testing.T, hub *Hub, client *Client) {
	t.Helper()

	hub.register <- client
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()

		_, ok := hub.clients[client.id]

		return ok
	}, time.Second, time.Millisecond)
}

func receiveEvent(t *testing.T, client *Client) *service.Event {
	t.Helper()

	select {
	case data := <-client.send:
		var event service.Event
		require.NoError(t, json.Unmarshal(data, &event))

		return &event

	case <-time.After(time.Second):
		t.Fatal("no event received")

		return nil
	}
}

func TestHub_PublishFansOutToRoomMembers(t *testing.T) {
	hub := startTestHub(t)

	member1 := newTestClient(4)
	member2 := newTestClient(4)
	outsider := newTestClient(4)
	registerClient(t, hub, member1)
	registerClient(t, hub, member2)
	registerClient(t, hub, outsider)

	room := service.JobRoom(uuid.New())
	hub.Join(member1.id, room)
	hub.Join(member2.id, room)

	hub.Publish(room, &service.Event{
		Type: service.EventJobStatusUpdated,
		Data: map[string]any{"status": "COMPLETED"},
	})

	for _, member := range []*Client{member1, member2} {
		event := receiveEvent(t, member)
		assert.Equal(t, service.EventJobStatusUpdated, event.Type)
		assert.Equal(t, room, event.Room)
		assert.False(t, event.Timestamp.IsZero())
	}
	assert.Empty(t, outsider.send)
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	hub := startTestHub(t)

	client := newTestClient(4)
	registerClient(t, hub, client)

	room := service.JobRoom(uuid.New())
	hub.Join(client.id, room)
	hub.Leave(client.id, room)

	hub.Publish(room, &service.Event{Type: service.EventJobUpdated})

	assert.Empty(t, client.send)
}

func TestHub_SlowClientIsSkipped(t *testing.T) {
	hub := startTestHub(t)

	slow := newTestClient(1)
	slow.send <- []byte("backlog")
	healthy := newTestClient(4)
	registerClient(t, hub, slow)
	registerClient(t, hub, healthy)

	room := service.JobRoom(uuid.New())
	hub.Join(slow.id, room)
	hub.Join(healthy.id, room)

	hub.Publish(room, &service.Event{Type: service.EventMessageNew})

	event := receiveEvent(t, healthy)
	assert.Equal(t, service.EventMessageNew, event.Type)

	// The slow client's buffer still holds only the original backlog.
	assert.Equal(t, []byte("backlog"), <-slow.send)
	assert.Empty(t, slow.send)
}

func TestHub_UnregisterClosesSendAndDrainsRooms(t *testing.T) {
	hub := startTestHub(t)

	client := newTestClient(4)
	registerClient(t, hub, client)

	room := service.JobRoom(uuid.New())
	hub.Join(client.id, room)

	hub.unregister <- client
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()

		_, ok := hub.clients[client.id]

		return !ok
	}, time.Second, time.Millisecond)

	_, open := <-client.send
	assert.False(t, open)

	hub.mu.RLock()
	_, roomExists := hub.rooms[room]
	hub.mu.RUnlock()
	assert.False(t, roomExists)

	// Publishing to the drained room must not panic.
	hub.Publish(room, &service.Event{Type: service.EventJobUpdated})
}

func TestHub_JoinUnknownConnectionIsNoOp(t *testing.T) {
	hub := startTestHub(t)

	hub.Join(uuid.New().String(), service.JobRoom(uuid.New()))

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	assert.Empty(t, hub.rooms)
}
