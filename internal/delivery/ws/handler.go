package ws

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"wrench/internal/domain/service"
	"wrench/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Bearer token auth happens before the upgrade; origin checks are
		// left to the edge.
		return true
	},
}

// Handler authenticates and upgrades WebSocket connections.
type Handler struct {
	hub       *Hub
	tokenSvc  service.TokenService
	presence  service.PresenceStore
	jobUC     usecase.JobUsecase
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// HandlerParams holds dependencies for the WebSocket handler, injected by Fx
type HandlerParams struct {
	fx.In

	Hub       *Hub
	TokenSvc  service.TokenService
	Presence  service.PresenceStore
	JobUC     usecase.JobUsecase
	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// NewHandler creates a new WebSocket handler.
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		hub:       params.Hub,
		tokenSvc:  params.TokenSvc,
		presence:  params.Presence,
		jobUC:     params.JobUC,
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// Handle verifies the bearer token, upgrades the connection and starts the
// client pumps. Each connection is automatically a member of its user and
// role rooms; job rooms are joined explicitly.
func (h *Handler) Handle(c echo.Context) error {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			tokenString = ""
		}
	}
	if tokenString == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token is required"})
	}

	claims, err := h.tokenSvc.VerifyToken(tokenString)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade connection", slog.Any("error", err))

		return nil
	}

	client := newClient(h.hub, h, conn, claims.UserID, claims.Role, h.logger)
	h.hub.register <- client
	h.hub.Join(client.id, service.UserRoom(claims.UserID))
	h.hub.Join(client.id, service.RoleRoom(string(claims.Role)))

	if err := h.presence.Connect(c.Request().Context(), claims.UserID, client.id); err != nil {
		h.logger.Warn("Failed to record presence",
			slog.String("userID", claims.UserID.String()),
			slog.Any("error", err),
		)
	}

	go client.writePump()
	go client.readPump()

	return nil
}

// disconnect tears one connection down: hub membership and presence.
func (h *Handler) disconnect(c *Client) {
	h.hub.unregister <- c

	if err := h.presence.Disconnect(context.Background(), c.userID, c.id); err != nil {
		h.logger.Warn("Failed to clear presence",
			slog.String("userID", c.userID.String()),
			slog.Any("error", err),
		)
	}
}

// Module provides the WebSocket FX module: the hub doubles as the
// RoomBroadcaster used by the use case layer.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewHub),
	fx.Provide(func(hub *Hub) service.RoomBroadcaster { return hub }),
	fx.Provide(NewHandler),
	fx.Invoke(func(lc fx.Lifecycle, hub *Hub) {
		runCtx, cancel := context.WithCancel(context.Background())
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go hub.Run(runCtx)

				return nil
			},
			OnStop: func(context.Context) error {
				cancel()

				return nil
			},
		})
	}),
)
