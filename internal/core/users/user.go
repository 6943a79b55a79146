package users

import (
	"context"
	"time"
)

// User represents an account row as seen by the moderation core.
// Credential data lives with the identity provider, not here.
type User struct {
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	BannedAt    *time.Time `json:"bannedAt,omitempty" db:"banned_at"`
	Handle      string     `json:"handle" db:"handle"`
	DisplayName string     `json:"displayName" db:"display_name"`
	ID          int64      `json:"id" db:"id"`
	IsAdmin     bool       `json:"isAdmin" db:"is_admin"`
	IsPremium   bool       `json:"isPremium" db:"is_premium"`
	IsBanned    bool       `json:"isBanned" db:"is_banned"`
}

// Repository defines the data access interface for users
type Repository interface {
	// GetByID retrieves a user by id
	// Returns ErrUserNotFound if the user doesn't exist
	GetByID(ctx context.Context, id int64) (*User, error)

	// ListAdminIDs returns the ids of all active (non-banned) admins
	// Used for report alert fan-out
	ListAdminIDs(ctx context.Context) ([]int64, error)
}
