package impl

import (
	"context"
	"log/slog"

	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/service"
	"pabw/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	store   usecase.SessionStore
	backend service.Backend
	logger  *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx
type AuthServiceParams struct {
	fx.In

	Store   usecase.SessionStore
	Backend service.Backend
	Logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		store:   params.Store,
		backend: params.Backend,
		logger:  params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates against the backend and adopts the returned credential.
func (srv *authService) Login(ctx context.Context, email, password string) error {
	credential, err := srv.backend.Login(ctx, service.LoginRequest{Email: email, Password: password})
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.Any("error", err))

		return errors.Wrap(err, "failed to login")
	}

	srv.store.Login(ctx, credential)

	return nil
}

// Register creates the account and then logs in with the same credentials.
func (srv *authService) Register(ctx context.Context, name, email, password, confirmPassword string) error {
	err := srv.backend.Register(ctx, service.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
	if err != nil {
		return errors.Wrap(err, "failed to register")
	}

	return srv.Login(ctx, email, password)
}

// Logout tells the backend, then clears the local session whatever it answered.
func (srv *authService) Logout(ctx context.Context) {
	if err := srv.backend.Logout(ctx); err != nil {
		srv.log(ctx).Warn("Backend logout failed, clearing session anyway", slog.Any("error", err))
	}

	srv.store.Logout(ctx)
}
