package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/domain/service"
	"pabw/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// actionService implements the ActionUsecase interface.
type actionService struct {
	store     usecase.SessionStore
	refresher usecase.SessionRefresher
	resources usecase.ResourceCache
	backend   service.Backend
	logger    *slog.Logger
}

// ActionServiceParams holds dependencies for the action service, injected by Fx
type ActionServiceParams struct {
	fx.In

	Store     usecase.SessionStore
	Refresher usecase.SessionRefresher
	Resources usecase.ResourceCache
	Backend   service.Backend
	Logger    *slog.Logger
}

// NewActionService is the constructor for actionService.
func NewActionService(params ActionServiceParams) usecase.ActionUsecase {
	return &actionService{
		store:     params.Store,
		refresher: params.Refresher,
		resources: params.Resources,
		backend:   params.Backend,
		logger:    params.Logger,
	}
}

func (srv *actionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit sends the action with the current credential and, on success,
// revalidates every view it invalidates. Failures are never retried.
func (srv *actionService) Submit(ctx context.Context, action entity.Action) (json.RawMessage, error) {
	if err := srv.refresher.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "session did not settle")
	}

	state := srv.store.CurrentState()
	if state.Credential.IsZero() {
		return nil, domainerrors.ErrNotLoggedIn
	}

	data, err := srv.backend.Send(ctx, action.Method, action.Endpoint, state.Credential, action.Body)
	if err != nil {
		if domainerrors.IsAuthorization(err) {
			srv.refresher.Invalidate(ctx, state.Epoch)
		}
		srv.log(ctx).Info("Action failed",
			slog.String("method", action.Method),
			slog.String("endpoint", action.Endpoint),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(err, "%s %s", action.Method, action.Endpoint)
	}

	for _, ref := range action.Invalidates {
		srv.resources.Mutate(ctx, ref)
	}

	return data, nil
}
