package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pabw/internal/delivery/api/response"
	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	mockUsecase "pabw/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runGuarded(t *testing.T, decision entity.GuardDecision, want entity.RouteRequirement) (*httptest.ResponseRecorder, error, bool) {
	t.Helper()

	guard := mockUsecase.NewMockRouteGuard(t)
	guard.EXPECT().Resolve(mock.Anything, want).Return(decision)

	m := NewGuardMiddleware(guard, discardLogger())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/user/cart", nil), rec)

	called := false
	err := m.RequireLogin(want.Roles...)(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	})(c)

	got, ok := deliverycontext.GetGuardDecision(c)
	assert.True(t, ok)
	assert.Equal(t, decision, got)

	return rec, err, called
}

func TestGuardMiddleware_AdmitRendersPage(t *testing.T) {
	rec, err, called := runGuarded(t, entity.GuardAdmit, entity.RouteRequirement{Login: true, Roles: entity.Roles{entity.RoleCustomer}})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardMiddleware_RedirectGoesToLanding(t *testing.T) {
	rec, err, called := runGuarded(t, entity.GuardRedirectToLanding, entity.RouteRequirement{Login: true})

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LandingPath, rec.Header().Get(echo.HeaderLocation))

	var body struct {
		Data response.RedirectInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, LandingPath, body.Data.Location)
}

func TestGuardMiddleware_PendingRendersNothing(t *testing.T) {
	_, err, called := runGuarded(t, entity.GuardPending, entity.RouteRequirement{Login: true})

	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrSessionPending)
}
