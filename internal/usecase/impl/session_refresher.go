package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"pabw/config"
	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/domain/service"
	"pabw/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// sessionRefresher implements the SessionRefresher interface.
type sessionRefresher struct {
	store   usecase.SessionStore
	backend service.Backend
	timeout time.Duration
	logger  *slog.Logger

	flights singleflight.Group

	mu sync.Mutex
	// invalidated is the last epoch Invalidate acted on, plus one.
	invalidated uint64
}

// SessionRefresherParams holds dependencies for the refresher, injected by Fx
type SessionRefresherParams struct {
	fx.In

	Config  *config.Config
	Store   usecase.SessionStore
	Backend service.Backend
	Logger  *slog.Logger
}

// NewSessionRefresher is the constructor for sessionRefresher.
func NewSessionRefresher(params SessionRefresherParams) usecase.SessionRefresher {
	return &sessionRefresher{
		store:   params.Store,
		backend: params.Backend,
		timeout: params.Config.Session.RefreshTimeout,
		logger:  params.Logger,
	}
}

func (r *sessionRefresher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Ensure dispatches a refresh when the login flag is set and no credential is authoritative.
func (r *sessionRefresher) Ensure(ctx context.Context) {
	state := r.store.CurrentState()
	if !state.IsLoginFlagSet || state.IsAuthenticated() {
		return
	}

	r.dispatch(ctx)
}

// Invalidate re-checks the session after a 401 seen at epoch.
func (r *sessionRefresher) Invalidate(ctx context.Context, epoch uint64) {
	r.mu.Lock()
	if r.invalidated > epoch {
		r.mu.Unlock()

		return
	}

	state := r.store.CurrentState()
	if state.Epoch != epoch || !state.IsAuthenticated() {
		r.mu.Unlock()
		r.log(ctx).Debug("Ignoring invalidation for superseded credential", slog.Uint64("epoch", epoch))

		return
	}
	r.invalidated = epoch + 1
	r.mu.Unlock()

	r.log(ctx).Info("Credential rejected, refreshing session", slog.Uint64("epoch", epoch))
	r.dispatch(ctx)
}

// Wait blocks until the session is no longer loading.
func (r *sessionRefresher) Wait(ctx context.Context) error {
	r.Ensure(ctx)

	for {
		changed := r.store.Watch()
		if !r.store.CurrentState().IsLoading {
			return nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *sessionRefresher) dispatch(ctx context.Context) {
	epoch, ok := r.store.BeginRefresh()
	if !ok {
		return
	}

	// The request outlives the caller that happened to trigger it.
	refreshCtx := context.WithoutCancel(ctx)
	r.flights.DoChan("refresh@"+strconv.FormatUint(epoch, 10), func() (any, error) {
		r.refresh(refreshCtx, epoch)

		return nil, nil
	})
}

func (r *sessionRefresher) refresh(ctx context.Context, epoch uint64) {
	state := r.store.CurrentState()
	if state.Epoch != epoch || !state.IsLoading {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	credential, err := r.backend.Refresh(ctx)
	if err != nil {
		kind := domainerrors.KindOf(err)
		if kind == "" {
			kind = entity.ErrorKindTransport
		}
		r.log(ctx).Info("Session refresh failed, demoting to anonymous", slog.String("kind", string(kind)), slog.Any("error", err))
		r.store.FailRefresh(ctx, epoch, kind)

		return
	}

	r.store.CompleteRefresh(ctx, epoch, credential)
}
