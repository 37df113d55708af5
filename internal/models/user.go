package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleCreator = "creator"
	RoleBrand   = "brand"
	RoleAdmin   = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleCreator, RoleBrand, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"` // nil for OAuth-only accounts
	Role         string    `json:"role"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}
