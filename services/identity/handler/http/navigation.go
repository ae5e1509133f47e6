package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/peacelink/peacelink/internal/utils"
	"github.com/peacelink/peacelink/services/identity/navigation"
)

// NavigationHandler resolves requested destinations against the session.
type NavigationHandler struct {
	router *navigation.Router
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(router *navigation.Router) *NavigationHandler {
	return &NavigationHandler{
		router: router,
	}
}

// ResolvedDestination is the outcome of one navigation decision.
type ResolvedDestination struct {
	Requested   navigation.Destination `json:"requested"`
	Rendered    navigation.Destination `json:"rendered"`
	Redirected  bool                   `json:"redirected"`
	HomeVariant navigation.HomeVariant `json:"home_variant,omitempty"`
}

// Resolve decides whether the requested destination renders or the
// visitor is redirected to the public landing view.
func (h *NavigationHandler) Resolve(c echo.Context) error {
	dest := navigation.Destination(c.QueryParam("dest"))
	if dest == "" {
		return utils.BadRequestResponse(c, "dest is required")
	}

	result := ResolvedDestination{
		Requested: dest,
		Rendered:  h.router.Resolve(dest),
	}
	result.Redirected = result.Rendered != result.Requested

	if session := h.router.Session(); session != nil {
		result.HomeVariant = navigation.HomeVariantFor(session.Account.Role)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Destination resolved", result)
}
