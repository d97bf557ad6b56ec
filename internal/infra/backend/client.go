// Package backend talks to the marketplace REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"pabw/config"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/publicsuffix"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// httpBackend implements service.Backend over HTTPS/JSON. The refresh token
// is an HttpOnly cookie set by the backend on login; it stays in the
// client's cookie jar and is never read by this package.
type httpBackend struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the backend client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewHTTPBackend creates the REST backend client
func NewHTTPBackend(params Params) (service.Backend, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cookie jar")
	}

	return &httpBackend{
		baseURL: strings.TrimSuffix(params.Config.Backend.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: params.Config.Backend.Timeout,
			Jar:     jar,
		},
		logger: params.Logger,
	}, nil
}

// Refresh exchanges the refresh cookie for a new access credential
func (b *httpBackend) Refresh(ctx context.Context) (entity.Credential, error) {
	raw, err := b.do(ctx, http.MethodPost, "/auth/refresh", "", nil)
	if err != nil {
		return "", err
	}

	return decodeToken(raw)
}

// Login authenticates with email and password
func (b *httpBackend) Login(ctx context.Context, req service.LoginRequest) (entity.Credential, error) {
	raw, err := b.do(ctx, http.MethodPost, "/auth/login", "", req)
	if err != nil {
		return "", err
	}

	return decodeToken(raw)
}

// Register creates a customer account
func (b *httpBackend) Register(ctx context.Context, req service.RegisterRequest) error {
	_, err := b.do(ctx, http.MethodPost, "/auth/register", "", req)

	return err
}

// Logout asks the backend to drop the refresh token
func (b *httpBackend) Logout(ctx context.Context) error {
	_, err := b.do(ctx, http.MethodPost, "/auth/logout", "", nil)

	return err
}

// Get fetches endpoint with the credential as bearer
func (b *httpBackend) Get(ctx context.Context, endpoint string, credential entity.Credential) (json.RawMessage, error) {
	return b.do(ctx, http.MethodGet, endpoint, credential, nil)
}

// Send issues a mutating request with an optional JSON body
func (b *httpBackend) Send(ctx context.Context, method, endpoint string, credential entity.Credential, body any) (json.RawMessage, error) {
	return b.do(ctx, method, endpoint, credential, body)
}

func (b *httpBackend) do(ctx context.Context, method, endpoint string, credential entity.Credential, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+endpoint, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !credential.IsZero() {
		req.Header.Set("Authorization", "Bearer "+string(credential))
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, &domainerrors.TransportError{Err: errors.Wrapf(err, "%s %s", method, endpoint)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domainerrors.TransportError{Status: resp.StatusCode, Err: errors.Wrap(err, "failed to read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		transportErr := newTransportError(resp.StatusCode, raw)
		b.logger.Debug("Backend request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
		)
		if resp.StatusCode == http.StatusUnauthorized && !credential.IsZero() {
			return nil, domainerrors.NewAuthorizationError(transportErr)
		}

		return nil, transportErr
	}

	return json.RawMessage(raw), nil
}

func newTransportError(status int, raw []byte) *domainerrors.TransportError {
	transportErr := &domainerrors.TransportError{
		Status: status,
		Body:   strings.TrimSpace(string(raw)),
	}

	var parsed errorBody
	if json.Unmarshal(raw, &parsed) == nil {
		transportErr.ServerMessage = parsed.Message
	}

	return transportErr
}

func decodeToken(raw json.RawMessage) (entity.Credential, error) {
	var token tokenResponse
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", &domainerrors.TransportError{Status: http.StatusOK, Err: errors.Wrap(err, "invalid token response")}
	}
	if token.AccessToken == "" {
		return "", &domainerrors.TransportError{Status: http.StatusOK, Err: errors.New("token response missing access_token")}
	}

	return entity.Credential(token.AccessToken), nil
}
