package service

import (
	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the identity resolved from a verified bearer credential. The same
// verification path is shared by the HTTP middleware and the WebSocket
// handshake.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for issuing and verifying bearer tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for the given identity.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// VerifyToken checks a token string and resolves it to claims.
	VerifyToken(tokenString string) (*Claims, error)
}
