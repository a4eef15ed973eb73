package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"wrench/internal/domain/entity"
	"wrench/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Inbound command types sent by clients.
const (
	commandJobJoin        = "job:join"
	commandJobLeave       = "job:leave"
	commandUpdateStatus   = "job:update-status"
	commandUpdateLocation = "job:update-location"
	commandSendMessage    = "message:send"
)

// command is one inbound client frame.
type command struct {
	Type       string  `json:"type"`
	JobID      string  `json:"job_id"`
	Status     string  `json:"status,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
	ETAMinutes *int    `json:"eta_minutes,omitempty"`
	Content    string  `json:"content,omitempty"`
	MsgType    string  `json:"msg_type,omitempty"`
}

// Client is one live WebSocket connection bound to an authenticated user.
type Client struct {
	id     string
	userID uuid.UUID
	role   entity.Role

	hub     *Hub
	handler *Handler
	conn    *websocket.Conn
	send    chan []byte
	logger  *slog.Logger
}

func newClient(hub *Hub, handler *Handler, conn *websocket.Conn, userID uuid.UUID, role entity.Role, logger *slog.Logger) *Client {
	return &Client{
		id:      uuid.New().String(),
		userID:  userID,
		role:    role,
		hub:     hub,
		handler: handler,
		conn:    conn,
		send:    make(chan []byte, 256),
		logger:  logger,
	}
}

// readPump pumps commands from the WebSocket connection into the use cases.
func (c *Client) readPump() {
	defer func() {
		c.handler.disconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("WebSocket read error",
					slog.String("connID", c.id),
					slog.Any("error", err),
				)
			}

			break
		}

		var cmd command
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.sendError("invalid message format")

			continue
		}

		c.handleCommand(&cmd)
	}
}

// writePump pumps hub events to the WebSocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleCommand routes one inbound frame. Failures are reported back to this
// connection only; they never terminate it.
func (c *Client) handleCommand(cmd *command) {
	ctx := context.Background()

	jobID, err := uuid.Parse(cmd.JobID)
	if err != nil {
		c.sendError("invalid job_id")

		return
	}

	switch cmd.Type {
	case commandJobJoin:
		// Authorization doubles as the participation check: joining a room
		// requires read access to the job.
		job, err := c.handler.jobUC.GetJob(ctx, jobID, c.userID, c.role)
		if err != nil {
			c.sendError("cannot join job room")

			return
		}
		c.hub.Join(c.id, service.JobRoom(job.ID))
		c.hub.sendTo(c, &service.Event{
			Type: service.EventJobJoined,
			Room: service.JobRoom(job.ID),
			Data: map[string]any{"job": job},
		})

	case commandJobLeave:
		c.hub.Leave(c.id, service.JobRoom(jobID))

	case commandUpdateStatus:
		_, err := c.handler.jobUC.UpdateJobStatus(ctx, jobID, c.userID, c.role, entity.JobStatus(cmd.Status), cmd.Notes)
		if err != nil {
			c.sendError(err.Error())
		}

	case commandUpdateLocation:
		_, err := c.handler.jobUC.UpdateMechanicLocation(ctx, jobID, c.userID, cmd.Latitude, cmd.Longitude, cmd.ETAMinutes)
		if err != nil {
			c.sendError(err.Error())
		}

	case commandSendMessage:
		_, err := c.handler.messageUC.SendMessage(ctx, jobID, c.userID, c.role, entity.MessageType(cmd.MsgType), cmd.Content)
		if err != nil {
			c.sendError(err.Error())
		}

	default:
		c.sendError("unknown command type")
	}
}

func (c *Client) sendError(message string) {
	c.hub.sendTo(c, &service.Event{
		Type: service.EventError,
		Data: map[string]any{"message": message},
	})
}
