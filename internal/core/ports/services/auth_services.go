package services

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

// TokenSvcFacade issues and refreshes the JWT access / refresh token pair.
type TokenSvcFacade interface {
	// GenerateTokenPair creates an access token and a refresh token for the user
	// and stores the refresh token hash.
	GenerateTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPairResponse, error)

	// RefreshTokenPair rotates both tokens given a valid refresh token.
	RefreshTokenPair(ctx context.Context, userID, refreshToken string) (*dto.TokenPairResponse, error)
}

// GoogleOAuthHandlerSvcFacade implements the Google sign-in redirect flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GetAuthURL builds the Google consent URL with a signed state value.
	GetAuthURL(ctx context.Context) (string, error)

	// HandleCallback validates state, exchanges the code, verifies the ID token
	// and returns the authenticated (possibly newly created) user.
	HandleCallback(ctx context.Context, state, code string) (*domain.User, error)
}
