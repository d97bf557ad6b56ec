package impl

import (
	"context"
	"testing"
	"time"

	"pabw/internal/domain/entity"
	mockService "pabw/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, flagSet bool, loadErr error) (*mockService.MockLoginFlagStore, *mockService.MockCredentialInspector, *sessionStore) {
	t.Helper()

	flags := mockService.NewMockLoginFlagStore(t)
	flags.EXPECT().Load(mock.Anything).Return(flagSet, loadErr)
	inspector := mockService.NewMockCredentialInspector(t)

	store := NewSessionStore(SessionStoreParams{Flags: flags, Inspector: inspector, Logger: newTestLogger()})

	return flags, inspector, store.(*sessionStore)
}

func TestSessionStore_LoginLogoutRoundTrip(t *testing.T) {
	flags, inspector, store := newStore(t, false, nil)
	ctx := context.Background()

	flags.EXPECT().Save(mock.Anything).Return(nil).Once()
	flags.EXPECT().Clear(mock.Anything).Return(nil).Once()
	inspector.EXPECT().Inspect(entity.Credential("T")).Return(entity.CredentialInfo{Subject: "u1"}, true)

	store.Login(ctx, "T")
	state := store.CurrentState()

	assert.Equal(t, entity.Credential("T"), state.Credential)
	assert.True(t, state.IsLoginFlagSet)
	assert.False(t, state.IsLoading)
	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, "u1", state.Subject)

	store.Logout(ctx)
	state = store.CurrentState()

	assert.True(t, state.Credential.IsZero())
	assert.False(t, state.IsLoginFlagSet)
	assert.False(t, state.IsAuthenticated())
	assert.Empty(t, state.Subject)
}

func TestSessionStore_InitialStateFollowsDurableFlag(t *testing.T) {
	_, _, anonymous := newStore(t, false, nil)
	assert.False(t, anonymous.CurrentState().IsLoading)
	assert.False(t, anonymous.CurrentState().IsLoginFlagSet)

	_, _, remembered := newStore(t, true, nil)
	state := remembered.CurrentState()
	assert.True(t, state.IsLoginFlagSet)
	assert.True(t, state.IsLoading, "a remembered session is indeterminate until refreshed")
	assert.True(t, state.Credential.IsZero())

	_, _, unreadable := newStore(t, true, errors.New("disk gone"))
	assert.False(t, unreadable.CurrentState().IsLoginFlagSet)
}

func TestSessionStore_StorageFailureStillChangesState(t *testing.T) {
	flags, inspector, store := newStore(t, false, nil)
	flags.EXPECT().Save(mock.Anything).Return(errors.New("read-only"))
	inspector.EXPECT().Inspect(mock.Anything).Return(entity.CredentialInfo{}, false)

	store.Login(context.Background(), "T")

	assert.Equal(t, entity.Credential("T"), store.CurrentState().Credential)
}

func TestSessionStore_EpochAndWatch(t *testing.T) {
	flags, inspector, store := newStore(t, false, nil)
	flags.EXPECT().Save(mock.Anything).Return(nil)
	flags.EXPECT().Clear(mock.Anything).Return(nil)
	inspector.EXPECT().Inspect(mock.Anything).Return(entity.CredentialInfo{}, false)
	ctx := context.Background()

	changed := store.Watch()
	before := store.CurrentState().Epoch

	store.Login(ctx, "A")

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("watch channel not closed on login")
	}

	afterLogin := store.CurrentState().Epoch
	store.Login(ctx, "B")
	afterSecond := store.CurrentState().Epoch
	store.Logout(ctx)

	assert.Greater(t, afterLogin, before)
	assert.Greater(t, afterSecond, afterLogin)
	assert.Greater(t, store.CurrentState().Epoch, afterSecond)
}

func TestSessionStore_RefreshOutcomeAppliesOnlyToItsEpoch(t *testing.T) {
	flags, inspector, store := newStore(t, true, nil)
	flags.EXPECT().Save(mock.Anything).Return(nil)
	flags.EXPECT().Clear(mock.Anything).Return(nil).Maybe()
	inspector.EXPECT().Inspect(mock.Anything).Return(entity.CredentialInfo{}, false)
	ctx := context.Background()

	epoch, ok := store.BeginRefresh()
	require.True(t, ok)

	// A manual login lands while the refresh is out.
	store.Login(ctx, "manual")

	assert.False(t, store.FailRefresh(ctx, epoch, entity.ErrorKindTransport))
	assert.False(t, store.CompleteRefresh(ctx, epoch, "refreshed"))
	assert.Equal(t, entity.Credential("manual"), store.CurrentState().Credential)
}

func TestSessionStore_BeginRefreshNeedsFlag(t *testing.T) {
	_, _, store := newStore(t, false, nil)

	_, ok := store.BeginRefresh()

	assert.False(t, ok)
	assert.False(t, store.CurrentState().IsLoading)
}
