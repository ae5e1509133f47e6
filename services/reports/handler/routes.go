package handler

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/utils"
	"github.com/peacelink/peacelink/services/reports/handler/http"
)

// Handler coordinates the HTTP handlers for the reports service
type Handler struct {
	reportHandler *http.ReportHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(reportHandler *http.ReportHandler, cfg *models.Config) *Handler {
	return &Handler{
		reportHandler: reportHandler,
		cfg:           cfg,
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

// RequireRoles restricts a route group to the given roles.
func RequireRoles(allowed ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			for _, r := range allowed {
				if models.Role(role) == r {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// RegisterRoutes registers all report routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/reports", h.GetJWTMiddleware())
	protected.POST("", h.reportHandler.SubmitReport)
	protected.GET("/mine", h.reportHandler.MyReports)
	protected.GET("/:id", h.reportHandler.GetReport)

	// Moderation and analytics are partner/staff surfaces.
	staff := protected.Group("", RequireRoles(models.RoleNGO, models.RoleModerator, models.RoleAdmin))
	staff.PUT("/:id/status", h.reportHandler.UpdateStatus)
	staff.GET("/analytics/summary", h.reportHandler.Analytics)
}
