package navigation

import (
	"github.com/peacelink/peacelink/internal/pkg/models"
)

// Destination is a navigable view path.
type Destination string

// Public entry destinations.
const (
	DestLanding          Destination = "/landing"
	DestLandingYouth     Destination = "/landing/youth"
	DestLandingElder     Destination = "/landing/elder"
	DestLandingPartner   Destination = "/landing/local-government"
	DestLandingMgmt      Destination = "/landing/management"
	DestLandingModerator Destination = "/landing/moderator"
	DestSignup           Destination = "/signup"
	DestLogin            Destination = "/login"
	DestPartnerLogin     Destination = "/local-government-login"
	DestPartnerSignup    Destination = "/local-government-signup"
	DestModeratorEntry   Destination = "/landing-moderator"
)

// Authenticated destinations.
const (
	DestHome       Destination = "/"
	DestReport     Destination = "/report"
	DestForums     Destination = "/forums"
	DestResources  Destination = "/resources"
	DestChat       Destination = "/chat"
	DestModeration Destination = "/moderation"
	DestAnalytics  Destination = "/analytics"
	DestMyReports  Destination = "/my-reports"
)

// HomeVariant names the role-branched shape of the authenticated home view.
type HomeVariant string

const (
	HomeIndividual HomeVariant = "individual"
	HomeLeadership HomeVariant = "leadership"
	HomePartner    HomeVariant = "partner"
)

var publicDestinations = map[Destination]struct{}{
	DestLanding:          {},
	DestLandingYouth:     {},
	DestLandingElder:     {},
	DestLandingPartner:   {},
	DestLandingMgmt:      {},
	DestLandingModerator: {},
	DestSignup:           {},
	DestLogin:            {},
	DestPartnerLogin:     {},
	DestPartnerSignup:    {},
	DestModeratorEntry:   {},
}

// SessionSource is the router's view of the session manager.
type SessionSource interface {
	Current() *models.Session
}

// Router decides, per navigation, whether a requested destination renders
// or the visitor is sent back to the public landing view.
type Router struct {
	sessions SessionSource
}

func NewRouter(sessions SessionSource) *Router {
	return &Router{sessions: sessions}
}

// Session returns the active session consulted for routing, or nil.
func (r *Router) Session() *models.Session {
	return r.sessions.Current()
}

// Public reports whether dest renders without a session.
func Public(dest Destination) bool {
	_, ok := publicDestinations[dest]
	return ok
}

// Resolve returns the destination that actually renders for the requested
// one. Public destinations render regardless of session state; anything
// else requires an active session or falls back to the landing view.
func (r *Router) Resolve(dest Destination) Destination {
	if Public(dest) {
		return dest
	}
	if r.sessions.Current() == nil {
		return DestLanding
	}
	return dest
}

// HomeVariantFor branches the authenticated home view by role: community
// leaders and moderators get the leadership view, NGO staff the partner
// view, everyone else the individual view.
func HomeVariantFor(role models.Role) HomeVariant {
	switch role {
	case models.RoleLeader, models.RoleModerator:
		return HomeLeadership
	case models.RoleNGO:
		return HomePartner
	default:
		return HomeIndividual
	}
}
