package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pabw/config"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/domain/service"
	mockService "pabw/internal/mocks/service"
	"pabw/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// fakeBackend records calls and delegates to per-test functions.
type fakeBackend struct {
	mu       sync.Mutex
	refresh  int
	gets     map[string]int
	getCreds []entity.Credential
	sends    []string

	refreshFn func(ctx context.Context) (entity.Credential, error)
	getFn     func(ctx context.Context, endpoint string, credential entity.Credential) (json.RawMessage, error)
	sendFn    func(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error)
	loginFn   func(ctx context.Context, req service.LoginRequest) (entity.Credential, error)
	regFn     func(ctx context.Context, req service.RegisterRequest) error
	logoutFn  func(ctx context.Context) error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{gets: make(map[string]int)}
}

func (f *fakeBackend) Refresh(ctx context.Context) (entity.Credential, error) {
	f.mu.Lock()
	f.refresh++
	fn := f.refreshFn
	f.mu.Unlock()

	if fn == nil {
		return "", &domainerrors.TransportError{Status: 401, ServerMessage: "Invalid refresh token"}
	}

	return fn(ctx)
}

func (f *fakeBackend) Login(ctx context.Context, req service.LoginRequest) (entity.Credential, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeBackend) Register(ctx context.Context, req service.RegisterRequest) error {
	return f.regFn(ctx, req)
}

func (f *fakeBackend) Logout(ctx context.Context) error {
	if f.logoutFn == nil {
		return nil
	}

	return f.logoutFn(ctx)
}

func (f *fakeBackend) Get(ctx context.Context, endpoint string, credential entity.Credential) (json.RawMessage, error) {
	f.mu.Lock()
	f.gets[endpoint]++
	f.getCreds = append(f.getCreds, credential)
	fn := f.getFn
	f.mu.Unlock()

	return fn(ctx, endpoint, credential)
}

func (f *fakeBackend) Send(ctx context.Context, method, endpoint string, credential entity.Credential, body any) (json.RawMessage, error) {
	f.mu.Lock()
	f.sends = append(f.sends, method+" "+endpoint)
	fn := f.sendFn
	f.mu.Unlock()

	if credential.IsZero() {
		return nil, &domainerrors.TransportError{Status: 401}
	}

	return fn(ctx, method, endpoint, body)
}

func (f *fakeBackend) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.refresh
}

func (f *fakeBackend) getCount(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.gets[endpoint]
}

func (f *fakeBackend) totalGets() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, n := range f.gets {
		total += n
	}

	return total
}

func unauthorized() error {
	return domainerrors.NewAuthorizationError(&domainerrors.TransportError{Status: 401, ServerMessage: "Invalid access token"})
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Guard.PendingTimeout = 2 * time.Second
	cfg.ApplyDefaults()

	return cfg
}

// session wires the session layer the way the application does.
type session struct {
	store     usecase.SessionStore
	refresher usecase.SessionRefresher
	resources usecase.ResourceCache
	profiles  usecase.ProfileCache
	guard     usecase.RouteGuard
	flags     *mockService.MockLoginFlagStore
}

func newSession(t *testing.T, flagSet bool, backend *fakeBackend) *session {
	t.Helper()

	cfg := newTestConfig()
	logger := newTestLogger()

	flags := mockService.NewMockLoginFlagStore(t)
	flags.EXPECT().Load(mock.Anything).Return(flagSet, nil)
	flags.EXPECT().Save(mock.Anything).Return(nil).Maybe()
	flags.EXPECT().Clear(mock.Anything).Return(nil).Maybe()

	inspector := mockService.NewMockCredentialInspector(t)
	inspector.EXPECT().Inspect(mock.Anything).Return(entity.CredentialInfo{}, false).Maybe()

	store := NewSessionStore(SessionStoreParams{Flags: flags, Inspector: inspector, Logger: logger})
	refresher := NewSessionRefresher(SessionRefresherParams{Config: cfg, Store: store, Backend: backend, Logger: logger})
	resources := NewResourceCache(ResourceCacheParams{Store: store, Refresher: refresher, Backend: backend, Logger: logger})
	profiles := NewProfileCache(ProfileCacheParams{Store: store, Resources: resources, Logger: logger})
	guard := NewRouteGuard(RouteGuardParams{Config: cfg, Store: store, Refresher: refresher, Profiles: profiles, Logger: logger})

	return &session{
		store:     store,
		refresher: refresher,
		resources: resources,
		profiles:  profiles,
		guard:     guard,
		flags:     flags,
	}
}

func profileJSON(role entity.Role) json.RawMessage {
	data, _ := json.Marshal(entity.Profile{ID: "u-" + string(role), Name: "Test", Email: "t@example.com", Role: role, Balance: "0"})

	return data
}
