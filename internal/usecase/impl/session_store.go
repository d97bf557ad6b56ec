// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	"pabw/internal/domain/service"
	"pabw/internal/usecase"

	"go.uber.org/fx"
)

// flagLoadTimeout bounds the read of the durable flag at start up.
const flagLoadTimeout = 5 * time.Second

// sessionStore implements the SessionStore interface.
type sessionStore struct {
	// writeMu serializes mutators so durable writes land in order.
	writeMu sync.Mutex

	mu    sync.RWMutex
	state entity.SessionState

	changes   *changeNotifier
	flags     service.LoginFlagStore
	inspector service.CredentialInspector
	logger    *slog.Logger
}

// SessionStoreParams holds dependencies for the session store, injected by Fx
type SessionStoreParams struct {
	fx.In

	Flags     service.LoginFlagStore
	Inspector service.CredentialInspector
	Logger    *slog.Logger
}

// NewSessionStore is the constructor for sessionStore. A persisted login flag
// leaves the session indeterminate until the refresher settles it.
func NewSessionStore(params SessionStoreParams) usecase.SessionStore {
	store := &sessionStore{
		changes:   newChangeNotifier(),
		flags:     params.Flags,
		inspector: params.Inspector,
		logger:    params.Logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), flagLoadTimeout)
	defer cancel()

	flag, err := params.Flags.Load(ctx)
	if err != nil {
		params.Logger.Warn("Failed to read login flag, starting anonymous", slog.Any("error", err))
		flag = false
	}
	store.state.IsLoginFlagSet = flag
	store.state.IsLoading = flag

	return store
}

func (s *sessionStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Login persists the flag and adopts credential.
func (s *sessionStore) Login(ctx context.Context, credential entity.Credential) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.login(ctx, credential)
}

// Logout deletes the flag and drops the credential.
func (s *sessionStore) Logout(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.logout(ctx, "")
}

// CurrentState returns a snapshot of the session.
func (s *sessionStore) CurrentState() entity.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Watch returns a channel closed on the next state change.
func (s *sessionStore) Watch() <-chan struct{} {
	return s.changes.Watch()
}

// BeginRefresh marks the session indeterminate.
func (s *sessionStore) BeginRefresh() (uint64, bool) {
	s.mu.Lock()
	if !s.state.IsLoginFlagSet {
		s.mu.Unlock()

		return 0, false
	}
	changed := !s.state.IsLoading
	s.state.IsLoading = true
	epoch := s.state.Epoch
	s.mu.Unlock()

	if changed {
		s.changes.Notify()
	}

	return epoch, true
}

// CompleteRefresh adopts credential when nothing replaced the session meanwhile.
func (s *sessionStore) CompleteRefresh(ctx context.Context, epoch uint64, credential entity.Credential) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.CurrentState().Epoch != epoch {
		s.log(ctx).Debug("Dropping stale refresh result", slog.Uint64("epoch", epoch))

		return false
	}
	s.login(ctx, credential)

	return true
}

// FailRefresh logs the session out when nothing replaced it meanwhile.
func (s *sessionStore) FailRefresh(ctx context.Context, epoch uint64, kind entity.ErrorKind) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.CurrentState().Epoch != epoch {
		s.log(ctx).Debug("Dropping stale refresh failure", slog.Uint64("epoch", epoch))

		return false
	}
	s.logout(ctx, kind)

	return true
}

func (s *sessionStore) login(ctx context.Context, credential entity.Credential) {
	if err := s.flags.Save(ctx); err != nil {
		s.log(ctx).Warn("Failed to persist login flag", slog.Any("error", err))
	}

	next := entity.SessionState{
		Credential:     credential,
		IsLoginFlagSet: true,
	}
	if info, ok := s.inspector.Inspect(credential); ok {
		next.Subject = info.Subject
		next.ExpiresAt = info.ExpiresAt
	}

	s.mu.Lock()
	next.Epoch = s.state.Epoch + 1
	s.state = next
	s.mu.Unlock()

	s.log(ctx).Info("Session authenticated", slog.Uint64("epoch", next.Epoch), slog.String("subject", next.Subject))
	s.changes.Notify()
}

func (s *sessionStore) logout(ctx context.Context, kind entity.ErrorKind) {
	if err := s.flags.Clear(ctx); err != nil {
		s.log(ctx).Warn("Failed to clear login flag", slog.Any("error", err))
	}

	s.mu.Lock()
	next := entity.SessionState{
		LastError: kind,
		Epoch:     s.state.Epoch + 1,
	}
	s.state = next
	s.mu.Unlock()

	s.log(ctx).Info("Session cleared", slog.Uint64("epoch", next.Epoch), slog.String("last_error", string(kind)))
	s.changes.Notify()
}
