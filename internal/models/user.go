package models

import (
	"database/sql"
	"time"
)

// User is the persistence model for a back-office user.
type User struct {
	UserID       string `json:"userID" db:"user_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	AuthProvider string `json:"authProvider" db:"auth_provider"`
	ProviderID   string `json:"-" db:"provider_id"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	// Refresh token fields; only the hash is stored.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
