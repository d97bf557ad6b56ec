package impl

import (
	"context"
	"testing"

	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(s *session, backend *fakeBackend) *authService {
	return NewAuthService(AuthServiceParams{Store: s.store, Backend: backend, Logger: newTestLogger()}).(*authService)
}

func TestAuthService_LoginAdoptsCredential(t *testing.T) {
	backend := newFakeBackend()
	backend.loginFn = func(_ context.Context, req service.LoginRequest) (entity.Credential, error) {
		assert.Equal(t, "a@example.com", req.Email)

		return "T", nil
	}
	s := newSession(t, false, backend)
	srv := newAuthService(s, backend)

	require.NoError(t, srv.Login(context.Background(), "a@example.com", "secret123"))

	state := s.store.CurrentState()
	assert.Equal(t, entity.Credential("T"), state.Credential)
	assert.True(t, state.IsLoginFlagSet)
}

func TestAuthService_LoginFailureKeepsAnonymous(t *testing.T) {
	backend := newFakeBackend()
	backend.loginFn = func(context.Context, service.LoginRequest) (entity.Credential, error) {
		return "", &domainerrors.TransportError{Status: 401, ServerMessage: "Wrong email or password"}
	}
	s := newSession(t, false, backend)
	srv := newAuthService(s, backend)

	err := srv.Login(context.Background(), "a@example.com", "nope")

	var transportErr *domainerrors.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "Wrong email or password", transportErr.Message())
	assert.False(t, s.store.CurrentState().IsLoginFlagSet)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	var calls []string
	backend := newFakeBackend()
	backend.regFn = func(_ context.Context, req service.RegisterRequest) error {
		calls = append(calls, "register:"+req.Name)

		return nil
	}
	backend.loginFn = func(_ context.Context, req service.LoginRequest) (entity.Credential, error) {
		calls = append(calls, "login:"+req.Email)

		return "T", nil
	}
	s := newSession(t, false, backend)
	srv := newAuthService(s, backend)

	require.NoError(t, srv.Register(context.Background(), "Budi", "b@example.com", "password1", "password1"))

	assert.Equal(t, []string{"register:Budi", "login:b@example.com"}, calls)
	assert.True(t, s.store.CurrentState().IsAuthenticated())
}

func TestAuthService_RegisterFailureSkipsLogin(t *testing.T) {
	backend := newFakeBackend()
	backend.regFn = func(context.Context, service.RegisterRequest) error {
		return &domainerrors.TransportError{Status: 409, ServerMessage: "Email already used"}
	}
	s := newSession(t, false, backend)
	srv := newAuthService(s, backend)

	err := srv.Register(context.Background(), "Budi", "b@example.com", "password1", "password1")

	require.Error(t, err)
	assert.False(t, s.store.CurrentState().IsAuthenticated())
}

func TestAuthService_LogoutIsBestEffort(t *testing.T) {
	backend := newFakeBackend()
	backend.logoutFn = func(context.Context) error { return &domainerrors.TransportError{Err: errors.New("offline")} }
	s := newSession(t, false, backend)
	s.store.Login(context.Background(), "T")
	srv := newAuthService(s, backend)

	srv.Logout(context.Background())

	state := s.store.CurrentState()
	assert.True(t, state.Credential.IsZero())
	assert.False(t, state.IsLoginFlagSet)
}
