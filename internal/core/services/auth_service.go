package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
	"github.com/SscSPs/fleet_logistics_app/internal/platform/config"
	"github.com/SscSPs/fleet_logistics_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens and
// rotating opaque refresh tokens.
type tokenService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateTokenPair implements portssvc.TokenSvcFacade.
func (s *tokenService) GenerateTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPairResponse, error) {
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate access token", "user_id", user.UserID)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	// 32 bytes -> 64-character hex string.
	refreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userService.StoreRefreshToken(ctx, user.UserID, refreshToken, refreshExpiry); err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  int64(s.cfg.JWTExpiryDuration.Seconds()),
		RefreshTokenExpiresIn: int64(s.cfg.RefreshTokenExpiryDuration.Seconds()),
	}, nil
}

// RefreshTokenPair implements portssvc.TokenSvcFacade. The presented refresh
// token is consumed; a new pair replaces it.
func (s *tokenService) RefreshTokenPair(ctx context.Context, userID, refreshToken string) (*dto.TokenPairResponse, error) {
	user, err := s.userService.ValidateRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		return nil, err
	}
	return s.GenerateTokenPair(ctx, user)
}

// oauthStateTTL bounds how long a generated consent URL stays redeemable.
const oauthStateTTL = 10 * time.Minute

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
// Issued state values are held in memory until redeemed or expired; the
// callback consumes them exactly once.
type googleOAuthHandlerService struct {
	BaseService
	cfg          *config.Config
	userService  portssvc.UserSvcFacade
	oauth2Config *oauth2.Config

	mu     sync.Mutex
	states map[string]time.Time
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg:         cfg,
		userService: userService,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		states: make(map[string]time.Time),
	}
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)

// GetAuthURL implements portssvc.GoogleOAuthHandlerSvcFacade.
func (s *googleOAuthHandlerService) GetAuthURL(ctx context.Context) (string, error) {
	// 16 bytes -> 32-character hex CSRF token.
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}

	s.mu.Lock()
	now := time.Now()
	for st, issued := range s.states {
		if now.Sub(issued) > oauthStateTTL {
			delete(s.states, st)
		}
	}
	s.states[state] = now
	s.mu.Unlock()

	return s.oauth2Config.AuthCodeURL(state), nil
}

// consumeState redeems a state value, returning false for unknown or expired ones.
func (s *googleOAuthHandlerService) consumeState(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	issued, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return time.Since(issued) <= oauthStateTTL
}

// HandleCallback implements portssvc.GoogleOAuthHandlerSvcFacade.
func (s *googleOAuthHandlerService) HandleCallback(ctx context.Context, state, code string) (*domain.User, error) {
	if !s.consumeState(state) {
		return nil, fmt.Errorf("%w: invalid or expired oauth state", apperrors.ErrUnauthorized)
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "failed to exchange oauth code")
		return nil, fmt.Errorf("%w: failed to exchange oauth code", apperrors.ErrUnauthorized)
	}

	// When Google returns an ID token alongside the access token, verify its
	// signature and audience before trusting anything else in the response.
	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		if _, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID); err != nil {
			s.LogError(ctx, err, "google id token validation failed")
			return nil, fmt.Errorf("%w: google id token validation failed", apperrors.ErrUnauthorized)
		}
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("%w: google account email is not verified", apperrors.ErrUnauthorized)
	}

	return s.userService.FindOrCreateUserFromGoogle(ctx, *info)
}

// fetchUserInfo uses the access token to get user information from Google.
func (s *googleOAuthHandlerService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}
	return &userInfo, nil
}
