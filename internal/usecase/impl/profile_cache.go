package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	"pabw/internal/usecase"

	"go.uber.org/fx"
)

var profileRef = entity.Ref(entity.ResourceProfile)

// profileCache implements the ProfileCache interface on top of the resource cache.
type profileCache struct {
	store     usecase.SessionStore
	resources usecase.ResourceCache
	logger    *slog.Logger
}

// ProfileCacheParams holds dependencies for the profile cache, injected by Fx
type ProfileCacheParams struct {
	fx.In

	Store     usecase.SessionStore
	Resources usecase.ResourceCache
	Logger    *slog.Logger
}

// NewProfileCache is the constructor for profileCache.
func NewProfileCache(params ProfileCacheParams) usecase.ProfileCache {
	return &profileCache{
		store:     params.Store,
		resources: params.Resources,
		logger:    params.Logger,
	}
}

func (p *profileCache) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// Current returns the profile for the current credential, fetching it on first use.
// Without a credential nothing is requested.
func (p *profileCache) Current(ctx context.Context) entity.ProfileState {
	if p.store.CurrentState().Credential.IsZero() {
		return entity.ProfileState{}
	}

	return p.decode(ctx, p.resources.Request(ctx, profileRef))
}

// Load waits for the profile of the current credential.
func (p *profileCache) Load(ctx context.Context) (entity.ProfileState, error) {
	res, err := p.resources.Load(ctx, profileRef)
	if err != nil {
		return entity.ProfileState{IsLoading: res.IsLoading}, err
	}

	return p.decode(ctx, res), nil
}

// Mutate refetches the profile, e.g. after a purchase changed the balance.
func (p *profileCache) Mutate(ctx context.Context) {
	p.resources.Mutate(ctx, profileRef)
}

// Revalidate refetches the profile when its last fetch failed, so that one
// failed fetch does not lock the visitor out of role pages for good.
func (p *profileCache) Revalidate(ctx context.Context) {
	if p.store.CurrentState().Credential.IsZero() {
		return
	}

	p.resources.Retry(ctx, profileRef)
}

// Watch returns a channel closed on the next cache change.
func (p *profileCache) Watch() <-chan struct{} {
	return p.resources.Watch()
}

func (p *profileCache) decode(ctx context.Context, res entity.CachedResource) entity.ProfileState {
	if res.Err != nil || !res.HasData() {
		return entity.ProfileState{IsLoading: res.IsLoading && res.Err == nil}
	}

	var profile entity.Profile
	if err := json.Unmarshal(res.Data, &profile); err != nil {
		p.log(ctx).Warn("Discarding malformed profile", slog.Any("error", err))

		return entity.ProfileState{}
	}

	return entity.ProfileState{User: &profile}
}
