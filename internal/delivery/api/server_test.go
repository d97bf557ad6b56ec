package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pabw/config"
	apimiddleware "pabw/internal/delivery/api/middleware"
	"pabw/internal/delivery/api/router"
	"pabw/internal/delivery/api/router/handler"
	"pabw/internal/infra/auth"
	"pabw/internal/infra/backend"
	"pabw/internal/infra/qrcode"
	"pabw/internal/infra/storage"
	"pabw/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal marketplace API that counts the calls it gets.
type fakeBackend struct {
	mu    sync.Mutex
	hits  map[string]int
	role  string
	allow bool
}

func (f *fakeBackend) count(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hits[route]
}

func (f *fakeBackend) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, v := range f.hits {
		n += v
	}

	return n
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	track := func(route string, fn http.HandlerFunc) {
		mux.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.hits[route]++
			f.mu.Unlock()
			fn(w, r)
		})
	}
	bearer := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer T1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"type":"Unauthorized","message":"Invalid access token"}`))

			return false
		}

		return true
	}

	track("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["password"] != "secret123" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"type":"BadRequest","message":"Wrong email or password"}`))

			return
		}
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "R1", Path: "/"})
		_, _ = w.Write([]byte(`{"access_token":"T1"}`))
	})
	track("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if !f.allow {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"type":"Unauthorized","message":"Invalid refresh token"}`))

			return
		}
		_, _ = w.Write([]byte(`{"access_token":"T1"}`))
	})
	track("GET /api/v1/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if bearer(w, r) {
			_, _ = w.Write([]byte(`{"id":"u1","name":"Ana","email":"ana@x.io","role":"` + f.role + `","balance":"5000"}`))
		}
	})
	track("GET /api/v1/order", func(w http.ResponseWriter, r *http.Request) {
		if bearer(w, r) {
			_, _ = w.Write([]byte(`[{"id":"o1"}]`))
		}
	})
	track("GET /api/v1/product/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"` + r.PathValue("id") + `","name":"Tea"}`))
	})

	return mux
}

type webFront struct {
	e       *echo.Echo
	backend *fakeBackend
}

func newWebFront(t *testing.T, role string, flagSet bool, refreshAllowed bool) *webFront {
	t.Helper()

	fake := &fakeBackend{hits: map[string]int{}, role: role, allow: refreshAllowed}
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL + "/api/v1"
	cfg.Guard.PendingTimeout = 2 * time.Second
	cfg.ApplyDefaults()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	flags, err := storage.NewBlobFlagStore(ctx, "mem://", cfg.Storage.Key, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = flags.Close() })
	if flagSet {
		require.NoError(t, flags.Save(ctx))
	}

	b, err := backend.NewHTTPBackend(backend.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)
	qr, err := qrcode.NewQRCodeService(cfg)
	require.NoError(t, err)

	store := impl.NewSessionStore(impl.SessionStoreParams{Flags: flags, Inspector: auth.NewJWTInspector(), Logger: logger})
	refresher := impl.NewSessionRefresher(impl.SessionRefresherParams{Config: cfg, Store: store, Backend: b, Logger: logger})
	resources := impl.NewResourceCache(impl.ResourceCacheParams{Store: store, Refresher: refresher, Backend: b, Logger: logger})
	profiles := impl.NewProfileCache(impl.ProfileCacheParams{Store: store, Resources: resources, Logger: logger})
	guard := impl.NewRouteGuard(impl.RouteGuardParams{Config: cfg, Store: store, Refresher: refresher, Profiles: profiles, Logger: logger})
	authUsecase := impl.NewAuthService(impl.AuthServiceParams{Store: store, Backend: b, Logger: logger})
	actions := impl.NewActionService(impl.ActionServiceParams{Store: store, Refresher: refresher, Resources: resources, Backend: b, Logger: logger})
	catalog := impl.NewCatalogService(impl.CatalogServiceParams{Store: store, Refresher: refresher, Resources: resources, Backend: b, Logger: logger})

	e := NewEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:     handler.NewAuthHandler(authUsecase, store, profiles, logger),
			ProductHandler:  handler.NewProductHandler(catalog, resources, actions, qr, logger),
			CartHandler:     handler.NewCartHandler(resources, actions),
			OrderHandler:    handler.NewOrderHandler(resources, actions),
			DeliveryHandler: handler.NewDeliveryHandler(resources, actions, logger),
			AccountHandler:  handler.NewAccountHandler(resources, actions),
			GuardMiddleware: apimiddleware.NewGuardMiddleware(guard, logger),
		},
	})

	return &webFront{e: e, backend: fake}
}

func (w *webFront) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	w.e.ServeHTTP(rec, req)

	return rec
}

func TestWebFront_AnonymousVisitorIsSentToLandingWithoutNetwork(t *testing.T) {
	w := newWebFront(t, "Customer", false, false)

	rec := w.do(http.MethodGet, "/user/cart", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Zero(t, w.backend.total())
}

func TestWebFront_RejectedRefreshDemotesToAnonymous(t *testing.T) {
	w := newWebFront(t, "Customer", true, false)

	rec := w.do(http.MethodGet, "/user/order", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, 1, w.backend.count("POST /api/v1/auth/refresh"))

	rec = w.do(http.MethodGet, "/session", "")
	var body struct {
		Data handler.SessionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Data.Session.IsLoginFlagSet)
	assert.False(t, body.Data.Session.IsLoading)
	assert.Nil(t, body.Data.Profile.User)
}

func TestWebFront_RestoredSessionAdmitsByRole(t *testing.T) {
	w := newWebFront(t, "Customer", true, true)

	assert.Equal(t, http.StatusFound, w.do(http.MethodGet, "/admin/account/customer", "").Code)

	rec := w.do(http.MethodGet, "/user/order", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"o1"`)
	assert.Equal(t, 1, w.backend.count("POST /api/v1/auth/refresh"))
	assert.Equal(t, 1, w.backend.count("GET /api/v1/auth/profile"))
}

func TestWebFront_LoginThenBrowse(t *testing.T) {
	w := newWebFront(t, "Courier", false, false)

	rec := w.do(http.MethodPost, "/login", `{"email":"ana@x.io","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wrong email or password")

	rec = w.do(http.MethodPost, "/login", `{"email":"ana@x.io","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Couriers have no orders page.
	assert.Equal(t, http.StatusFound, w.do(http.MethodGet, "/user/order", "").Code)
	// Logged-in visitors do not see the login page.
	assert.Equal(t, http.StatusFound, w.do(http.MethodGet, "/login", "").Code)

	rec = w.do(http.MethodGet, "/session", "")
	var body struct {
		Data handler.SessionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Session.IsLoginFlagSet)
	require.NotNil(t, body.Data.Profile.User)
	assert.Equal(t, "Courier", string(body.Data.Profile.User.Role))
	assert.Zero(t, w.backend.count("GET /api/v1/order"))
}

func TestWebFront_PublicProductPage(t *testing.T) {
	w := newWebFront(t, "Customer", false, false)

	rec := w.do(http.MethodGet, "/m1/9", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Tea"`)

	rec = w.do(http.MethodGet, "/m1/9/qr", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = w.do(http.MethodPost, "/m1/9/buy", `{"quantity":1}`)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestWebFront_HealthCheck(t *testing.T) {
	w := newWebFront(t, "Customer", false, false)

	rec := w.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
