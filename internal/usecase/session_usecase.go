// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pabw/internal/domain/entity"
)

// SessionStore owns the credential and the durable login flag. It is the
// only writer of either; other components read snapshots and signal intent.
type SessionStore interface {
	// Login persists the login flag and adopts credential as authoritative.
	Login(ctx context.Context, credential entity.Credential)
	// Logout deletes the login flag and drops the credential.
	Logout(ctx context.Context)
	// CurrentState returns a snapshot without blocking on I/O.
	CurrentState() entity.SessionState
	// Watch returns a channel closed on the next state change.
	Watch() <-chan struct{}

	// BeginRefresh marks the session indeterminate and returns the epoch the
	// refresh outcome must be applied to. ok is false when no login flag is set.
	BeginRefresh() (epoch uint64, ok bool)
	// CompleteRefresh adopts credential if the session is still at epoch.
	CompleteRefresh(ctx context.Context, epoch uint64, credential entity.Credential) bool
	// FailRefresh logs the session out and records kind if it is still at epoch.
	FailRefresh(ctx context.Context, epoch uint64, kind entity.ErrorKind) bool
}

// SessionRefresher turns the durable login flag into a live credential.
type SessionRefresher interface {
	// Ensure dispatches a refresh when the flag is set and no credential is
	// authoritative. Concurrent callers share one request.
	Ensure(ctx context.Context)
	// Invalidate forces a re-check after a 401 seen with the credential of
	// epoch. Only the first call per epoch has an effect.
	Invalidate(ctx context.Context, epoch uint64)
	// Wait blocks until no refresh is outstanding or ctx ends.
	Wait(ctx context.Context) error
}

// AuthUsecase backs the login, register and logout pages.
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password, confirmPassword string) error
	Logout(ctx context.Context)
}
