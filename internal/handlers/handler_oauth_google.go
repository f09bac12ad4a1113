package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/middleware"
	"github.com/SscSPs/fleet_logistics_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles the Google sign-in redirect flow.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	tokenService       portssvc.TokenSvcFacade
	frontendBaseURL    string
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		tokenService:       tokenService,
		frontendBaseURL:    cfg.FrontendBaseURL,
	}
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to the Google consent screen.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	authURL, err := h.googleOAuthService.GetAuthURL(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build Google auth URL", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// CallbackGoogle godoc
// @Summary Google sign-in callback
// @Description Handles the redirect from Google, validates state, exchanges the code and returns a token pair.
// @Tags oauth
// @Produce json
// @Param state query string true "Opaque state issued at login"
// @Param code query string true "Authorization code from Google"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing state or code"})
		return
	}

	user, err := h.googleOAuthService.HandleCallback(c.Request.Context(), state, code)
	if err != nil {
		logger.Warn("Google callback rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	tokens, err := h.tokenService.GenerateTokenPair(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate token pair after Google sign-in", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))

	// When a frontend is configured, hand the tokens over via redirect fragment
	// so they never hit server logs as query parameters elsewhere.
	if h.frontendBaseURL != "" {
		c.Redirect(http.StatusTemporaryRedirect, h.frontendBaseURL+"/auth/callback#accessToken="+tokens.AccessToken+"&refreshToken="+tokens.RefreshToken)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user.UserID,
		"tokens": tokens,
	})
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return
	}

	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.Token, cfg)
	googleRoutes := rg.Group("/api/v1/auth/google")
	{
		googleRoutes.GET("/login", h.LoginGoogle)
		googleRoutes.GET("/callback", h.CallbackGoogle)
	}
}
