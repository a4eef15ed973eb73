package service

import (
	"context"

	"github.com/google/uuid"
)

// PresenceStore tracks which users currently hold at least one live real-time
// connection. The in-process implementation is only correct for
// single-instance deployments; multi-instance deployments must use the shared
// (Redis) backend or the dispatcher degrades to assume-offline behavior.
type PresenceStore interface {
	// Connect records a live connection for a user.
	Connect(ctx context.Context, userID uuid.UUID, connID string) error

	// Disconnect removes a connection; the user goes offline when the last
	// connection is removed.
	Disconnect(ctx context.Context, userID uuid.UUID, connID string) error

	// IsOnline reports whether the user has at least one live connection.
	IsOnline(ctx context.Context, userID uuid.UUID) (bool, error)
}
