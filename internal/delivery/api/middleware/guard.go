package middleware

import (
	"log/slog"

	"pabw/internal/delivery/api/response"
	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LandingPath is where refused visitors are sent.
const LandingPath = "/"

// GuardMiddleware protects pages with the route guard.
type GuardMiddleware struct {
	guard  usecase.RouteGuard
	logger *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(guard usecase.RouteGuard, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{guard: guard, logger: logger}
}

// Require admits the request only once the guard settles on Admit. A
// redirect sends the visitor to the landing page; a guard that is still
// pending when its bound runs out answers 202 so the client can retry.
func (m *GuardMiddleware) Require(req entity.RouteRequirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := m.guard.Resolve(c.Request().Context(), req)
			deliverycontext.SetGuardDecision(c, decision)

			switch decision {
			case entity.GuardAdmit:
				return next(c)
			case entity.GuardRedirectToLanding:
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Route guard redirected",
					slog.String("route", c.Path()),
					slog.Bool("want_login", req.Login),
					slog.Any("roles", req.Roles.ToStrings()),
				)

				return response.Redirect(c, LandingPath)
			default:
				return domainerrors.ErrSessionPending
			}
		}
	}
}

// RequireLogin admits logged-in visitors, restricted to roles when given.
func (m *GuardMiddleware) RequireLogin(roles ...entity.Role) echo.MiddlewareFunc {
	return m.Require(entity.RouteRequirement{Login: true, Roles: roles})
}

// RequireAnonymous admits only visitors that are not logged in.
func (m *GuardMiddleware) RequireAnonymous() echo.MiddlewareFunc {
	return m.Require(entity.RouteRequirement{Login: false})
}
