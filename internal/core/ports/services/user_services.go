package services

import (
	"context"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

// UserReaderSvc defines read operations on users
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error)
}

// UserWriterSvc defines write operations on users
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, userIDUpdating string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, userIDDeleting string) error
}

// UserAuthenticationSvc defines the credential flows used by the auth handlers
type UserAuthenticationSvc interface {
	// AuthenticateUser verifies a username/password pair.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// FindOrCreateUserFromGoogle provisions a user on first Google sign-in.
	FindOrCreateUserFromGoogle(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// StoreRefreshToken persists the hash of a newly issued refresh token.
	StoreRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error

	// ValidateRefreshToken checks a presented refresh token against the stored
	// hash and its expiry.
	ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)

	// ClearRefreshToken invalidates the stored refresh token on logout.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthenticationSvc
}
