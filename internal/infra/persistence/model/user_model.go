// Package model holds the GORM persistence models mirroring the database
// tables. Mapping to and from domain entities stays inside this package.
package model

import (
	"time"

	"github.com/google/uuid"

	"wrench/internal/domain/entity"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Role          string    `gorm:"type:varchar(20);not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	FCMToken      string    `gorm:"type:varchar(512)"`
	AverageRating float64   `gorm:"not null;default:0"`
	TotalReviews  int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToUserDomain maps the persistence model to a domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		Role:          entity.Role(m.Role),
		PasswordHash:  m.PasswordHash,
		FCMToken:      m.FCMToken,
		AverageRating: m.AverageRating,
		TotalReviews:  m.TotalReviews,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to the persistence model.
func FromUserDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          string(u.Role),
		PasswordHash:  u.PasswordHash,
		FCMToken:      u.FCMToken,
		AverageRating: u.AverageRating,
		TotalReviews:  u.TotalReviews,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
