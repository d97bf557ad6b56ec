package handler

import (
	"log/slog"
	"net/http"

	"pabw/internal/delivery/api/response"
	"pabw/internal/domain/entity"
	"pabw/internal/domain/service"
	"pabw/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the login, register and logout pages and the session view.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	store    usecase.SessionStore
	profiles usecase.ProfileCache
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, store usecase.SessionStore, profiles usecase.ProfileCache, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		store:    store,
		profiles: profiles,
		logger:   logger,
	}
}

// SessionView is the client's own view of who is logged in.
type SessionView struct {
	Session entity.SessionState `json:"session"`
	Profile entity.ProfileState `json:"profile"`
}

// LoginPage renders an empty login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, service.LoginRequest{})
}

// RegisterPage renders an empty registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, service.RegisterRequest{})
}

// Login handles the login form.
func (h *AuthHandler) Login(c echo.Context) error {
	var form service.LoginRequest
	if err := bindForm(c, &form); err != nil {
		return err
	}

	if err := h.auth.Login(c.Request().Context(), form.Email, form.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, Completed{Location: "/"}, "Login successful")
}

// Register handles the registration form. The new account is logged in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form service.RegisterRequest
	if err := bindForm(c, &form); err != nil {
		return err
	}

	err := h.auth.Register(c.Request().Context(), form.Name, form.Email, form.Password, form.ConfirmPassword)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, Completed{Location: "/"}, "Registration successful")
}

// Logout ends the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.auth.Logout(c.Request().Context())

	return response.SuccessWithMessage(c, http.StatusOK, Completed{Location: "/"}, "Logged out")
}

// Session shows the current session and profile without waiting on either.
func (h *AuthHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, SessionView{
		Session: h.store.CurrentState(),
		Profile: h.profiles.Current(c.Request().Context()),
	})
}

// Landing is the public home page. It reflects the app bar: who is logged
// in, once that is known.
func (h *AuthHandler) Landing(c echo.Context) error {
	return h.Session(c)
}
