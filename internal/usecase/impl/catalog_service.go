package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	"pabw/internal/domain/service"
	"pabw/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	store     usecase.SessionStore
	refresher usecase.SessionRefresher
	resources usecase.ResourceCache
	backend   service.Backend
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx
type CatalogServiceParams struct {
	fx.In

	Store     usecase.SessionStore
	Refresher usecase.SessionRefresher
	Resources usecase.ResourceCache
	Backend   service.Backend
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		store:     params.Store,
		refresher: params.Refresher,
		resources: params.Resources,
		backend:   params.Backend,
		logger:    params.Logger,
	}
}

// Browse reads a public resource. A logged-in visitor shares the cached
// entry so that actions such as buying refresh what the page shows.
func (srv *catalogService) Browse(ctx context.Context, ref entity.ResourceRef) (json.RawMessage, error) {
	if err := srv.refresher.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "session did not settle")
	}

	if srv.store.CurrentState().IsAuthenticated() {
		res, err := srv.resources.Load(ctx, ref)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", ref.Endpoint())
		}
		if res.HasData() {
			return res.Data, nil
		}
		// The session ended while loading; fall back to an anonymous read.
	}

	data, err := srv.backend.Get(ctx, ref.Endpoint(), "")
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Public read failed",
			slog.String("endpoint", ref.Endpoint()),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(err, "get %s", ref.Endpoint())
	}

	return data, nil
}
