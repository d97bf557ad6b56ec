package impl

import (
	"context"
	"log/slog"
	"time"

	"pabw/config"
	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	"pabw/internal/usecase"

	"go.uber.org/fx"
)

// routeGuard implements the RouteGuard interface.
type routeGuard struct {
	store          usecase.SessionStore
	refresher      usecase.SessionRefresher
	profiles       usecase.ProfileCache
	pendingTimeout time.Duration
	logger         *slog.Logger
}

// RouteGuardParams holds dependencies for the route guard, injected by Fx
type RouteGuardParams struct {
	fx.In

	Config    *config.Config
	Store     usecase.SessionStore
	Refresher usecase.SessionRefresher
	Profiles  usecase.ProfileCache
	Logger    *slog.Logger
}

// NewRouteGuard is the constructor for routeGuard.
func NewRouteGuard(params RouteGuardParams) usecase.RouteGuard {
	return &routeGuard{
		store:          params.Store,
		refresher:      params.Refresher,
		profiles:       params.Profiles,
		pendingTimeout: params.Config.Guard.PendingTimeout,
		logger:         params.Logger,
	}
}

func (g *routeGuard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Evaluate decides on the state observed right now. Repeated calls only join
// the refresh and profile fetches that are already in flight.
func (g *routeGuard) Evaluate(ctx context.Context, req entity.RouteRequirement) entity.GuardDecision {
	g.refresher.Ensure(ctx)

	state := g.store.CurrentState()
	obs := entity.GuardObservation{
		SessionLoading: state.IsLoading,
		IsLogin:        state.IsAuthenticated(),
	}

	// The profile is only consulted once login state allows a role check.
	if !obs.SessionLoading && obs.IsLogin && req.Login && len(req.Roles) > 0 {
		profile := g.profiles.Current(ctx)
		obs.ProfileLoading = profile.IsLoading
		obs.Role = profile.RoleOrEmpty()
	}

	return req.Decide(obs)
}

// Resolve waits out a pending decision, bounded by the configured pending timeout.
// A role check retries a failed profile fetch once per call.
func (g *routeGuard) Resolve(ctx context.Context, req entity.RouteRequirement) entity.GuardDecision {
	ctx, cancel := context.WithTimeout(ctx, g.pendingTimeout)
	defer cancel()

	if req.Login && len(req.Roles) > 0 {
		g.profiles.Revalidate(ctx)
	}

	for {
		sessionChanged := g.store.Watch()
		profileChanged := g.profiles.Watch()

		decision := g.Evaluate(ctx, req)
		if decision != entity.GuardPending {
			g.log(ctx).Debug("Route guard decided", slog.String("decision", decision.String()))

			return decision
		}

		select {
		case <-sessionChanged:
		case <-profileChanged:
		case <-ctx.Done():
			g.log(ctx).Warn("Route guard still pending at deadline", slog.Duration("timeout", g.pendingTimeout))

			return entity.GuardPending
		}
	}
}
