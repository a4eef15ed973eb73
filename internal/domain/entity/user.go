// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role describes what a user can do in the marketplace.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMechanic Role = "mechanic"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleMechanic, RoleAdmin:
		return true
	}

	return false
}

// User is the core account entity shared by customers, mechanics and admins.
// Mechanic accounts additionally carry denormalized review aggregates which are
// maintained exclusively by the review service.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          Role      `json:"role"`
	PasswordHash  string    `json:"-"`
	FCMToken      string    `json:"-"`              // push token of the user's current device, empty when unregistered
	AverageRating float64   `json:"average_rating"` // mean rating over non-hidden reviews, 0 when unreviewed
	TotalReviews  int64     `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsMechanic reports whether the user can be assigned to jobs.
func (u *User) IsMechanic() bool {
	return u.Role == RoleMechanic
}
