package handler

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/identity/handler/http"
)

// Handler coordinates the HTTP handlers for the identity service
type Handler struct {
	authHandler *http.AuthHandler
	navHandler  *http.NavigationHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	navHandler *http.NavigationHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		navHandler:  navHandler,
		cfg:         cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if accountID, exists := claims["user_id"]; exists {
							c.Set("user_id", fmt.Sprintf("%v", accountID))
						}
						if role, exists := claims["role"]; exists {
							c.Set("role", fmt.Sprintf("%v", role))
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all identity routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/signup/otp/generate", h.authHandler.GenerateSignupCode)
	authGroup.POST("/signup/otp/verify", h.authHandler.VerifySignupCode)
	authGroup.POST("/signup/complete", h.authHandler.CompleteSignup)
	authGroup.POST("/login/otp/generate", h.authHandler.GenerateLoginCode)
	authGroup.POST("/login/otp/verify", h.authHandler.LoginWithPhone)
	authGroup.POST("/login/credentials", h.authHandler.LoginWithCredentials)

	// Navigation resolution mirrors the client router: public destinations
	// resolve without a token.
	e.GET("/navigation/resolve", h.navHandler.Resolve)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())
	sessionGroup := protected.Group("/session")
	sessionGroup.GET("", h.authHandler.CurrentSession)
	sessionGroup.DELETE("", h.authHandler.Logout)
}
