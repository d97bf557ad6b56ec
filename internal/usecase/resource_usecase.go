package usecase

import (
	"context"
	"encoding/json"

	"pabw/internal/domain/entity"
)

// ResourceCache is the shared, credential-scoped GET cache used by every page.
type ResourceCache interface {
	// Request returns the current entry for ref and dispatches a fetch when
	// nothing has been fetched for it yet. It never blocks.
	Request(ctx context.Context, ref entity.ResourceRef) entity.CachedResource
	// Load is Request that waits for the outstanding fetch. An errored entry
	// is fetched again.
	Load(ctx context.Context, ref entity.ResourceRef) (entity.CachedResource, error)
	// Mutate invalidates ref and refetches it in the background.
	Mutate(ctx context.Context, ref entity.ResourceRef)
	// Retry refetches ref in the background when its last fetch failed for a
	// reason other than authorization.
	Retry(ctx context.Context, ref entity.ResourceRef)
	// Watch returns a channel closed on the next committed change.
	Watch() <-chan struct{}
}

// ProfileCache exposes the current account, derived from the credential.
type ProfileCache interface {
	Current(ctx context.Context) entity.ProfileState
	Load(ctx context.Context) (entity.ProfileState, error)
	Mutate(ctx context.Context)
	// Revalidate refetches a profile whose last fetch failed.
	Revalidate(ctx context.Context)
	Watch() <-chan struct{}
}

// RouteGuard decides whether a guarded page may render.
type RouteGuard interface {
	// Evaluate returns the decision for the state observed right now.
	Evaluate(ctx context.Context, req entity.RouteRequirement) entity.GuardDecision
	// Resolve re-evaluates on every state change until the decision is no
	// longer pending or the pending bound elapses.
	Resolve(ctx context.Context, req entity.RouteRequirement) entity.GuardDecision
}

// ActionUsecase issues mutating requests on behalf of pages and refreshes
// the cached views they affect.
type ActionUsecase interface {
	Submit(ctx context.Context, action entity.Action) (json.RawMessage, error)
}

// CatalogUsecase serves public pages. Anonymous visitors read straight from
// the backend; logged-in visitors go through the resource cache.
type CatalogUsecase interface {
	Browse(ctx context.Context, ref entity.ResourceRef) (json.RawMessage, error)
}
