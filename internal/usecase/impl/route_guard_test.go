package impl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

var (
	loginRequired = entity.RouteRequirement{Login: true}
	anonymousOnly = entity.RouteRequirement{Login: false}
	adminOnly     = entity.RouteRequirement{Login: true, Roles: entity.Roles{entity.RoleAdmin}}
	customerOnly  = entity.RouteRequirement{Login: true, Roles: entity.Roles{entity.RoleCustomer}}
)

// Without a remembered login the guard redirects at once and nothing is fetched.
func TestRouteGuard_AnonymousRedirectsWithoutNetwork(t *testing.T) {
	backend := newFakeBackend()
	s := newSession(t, false, backend)
	ctx := context.Background()

	assert.Equal(t, entity.GuardRedirectToLanding, s.guard.Evaluate(ctx, loginRequired))
	assert.Equal(t, entity.GuardRedirectToLanding, s.guard.Evaluate(ctx, adminOnly))
	assert.Equal(t, entity.GuardAdmit, s.guard.Evaluate(ctx, anonymousOnly))

	assert.Equal(t, 0, backend.refreshCount())
	assert.Equal(t, 0, backend.totalGets())
}

func TestRouteGuard_FailedRefreshRedirects(t *testing.T) {
	backend := newFakeBackend()
	s := newSession(t, true, backend)
	ctx := context.Background()

	assert.Equal(t, entity.GuardRedirectToLanding, s.guard.Resolve(ctx, loginRequired))
	assert.False(t, s.store.CurrentState().IsLoginFlagSet)
	assert.Equal(t, entity.GuardAdmit, s.guard.Resolve(ctx, anonymousOnly))
	assert.Equal(t, 1, backend.refreshCount())
}

func TestRouteGuard_RoleResolution(t *testing.T) {
	backend := newFakeBackend()
	backend.refreshFn = func(context.Context) (entity.Credential, error) { return "T", nil }
	backend.getFn = func(_ context.Context, endpoint string, _ entity.Credential) (json.RawMessage, error) {
		return json.RawMessage(`{"id":"1","name":"C","email":"c@example.com","role":"Customer","balance":"0"}`), nil
	}
	s := newSession(t, true, backend)
	ctx := context.Background()

	assert.Equal(t, entity.GuardRedirectToLanding, s.guard.Resolve(ctx, adminOnly))
	assert.Equal(t, entity.GuardAdmit, s.guard.Resolve(ctx, customerOnly))
	assert.Equal(t, entity.GuardAdmit, s.guard.Resolve(ctx, loginRequired))
	assert.Equal(t, entity.GuardRedirectToLanding, s.guard.Resolve(ctx, anonymousOnly))

	assert.Equal(t, 1, backend.refreshCount())
	assert.Equal(t, 1, backend.getCount("/auth/profile"))
}

func TestRouteGuard_PendingWhileRefreshing(t *testing.T) {
	release := make(chan struct{})
	backend := newFakeBackend()
	backend.refreshFn = func(context.Context) (entity.Credential, error) {
		<-release

		return "T", nil
	}
	s := newSession(t, true, backend)
	ctx := context.Background()

	for range 10 {
		assert.Equal(t, entity.GuardPending, s.guard.Evaluate(ctx, loginRequired))
	}
	close(release)

	assert.Equal(t, entity.GuardAdmit, s.guard.Resolve(ctx, loginRequired))
	assert.Equal(t, 1, backend.refreshCount(), "re-entering pending joins the same refresh")
}

func TestRouteGuard_PendingIsBounded(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	backend := newFakeBackend()
	backend.refreshFn = func(context.Context) (entity.Credential, error) {
		<-release

		return "T", nil
	}
	s := newSession(t, true, backend)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	assert.Equal(t, entity.GuardPending, s.guard.Resolve(ctx, loginRequired))
}

func TestRouteGuard_ProfileFailureFailsClosed(t *testing.T) {
	backend := newFakeBackend()
	backend.getFn = func(_ context.Context, _ string, _ entity.Credential) (json.RawMessage, error) {
		return nil, &domainerrors.TransportError{Status: 502}
	}
	s := loggedIn(t, backend)

	assert.Equal(t, entity.GuardRedirectToLanding, s.guard.Resolve(context.Background(), customerOnly))
	assert.Equal(t, entity.GuardAdmit, s.guard.Resolve(context.Background(), loginRequired))
}

func TestRouteGuard_RoleCheckRecoversAfterFailedProfileFetch(t *testing.T) {
	var mu sync.Mutex
	failures := 1
	backend := newFakeBackend()
	backend.getFn = func(_ context.Context, _ string, _ entity.Credential) (json.RawMessage, error) {
		mu.Lock()
		defer mu.Unlock()
		if failures > 0 {
			failures--

			return nil, &domainerrors.TransportError{Status: 502}
		}

		return profileJSON(entity.RoleCustomer), nil
	}
	s := loggedIn(t, backend)
	ctx := context.Background()

	assert.Equal(t, entity.GuardRedirectToLanding, s.guard.Resolve(ctx, customerOnly))
	assert.Equal(t, entity.GuardAdmit, s.guard.Resolve(ctx, customerOnly))
	assert.Equal(t, entity.GuardAdmit, s.guard.Resolve(ctx, customerOnly))
	assert.Equal(t, 2, backend.getCount("/auth/profile"), "a settled profile is not fetched again")
}
