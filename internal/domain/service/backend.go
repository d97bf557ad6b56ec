package service

import (
	"context"
	"encoding/json"

	"pabw/internal/domain/entity"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name            string `json:"name" form:"name" validate:"required,min=1,max=124"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
}

// Backend is the marketplace REST API as seen by the client.
//
// Every method returns a *TransportError for network failures and non-2xx
// responses, and an *AuthorizationError for a 401 on a bearer-authenticated
// call (both from internal/domain/errors).
type Backend interface {
	// Refresh exchanges the refresh cookie for a new access credential.
	Refresh(ctx context.Context) (entity.Credential, error)

	// Login authenticates with email and password.
	Login(ctx context.Context, req LoginRequest) (entity.Credential, error)

	// Register creates a customer account. The caller logs in afterwards.
	Register(ctx context.Context, req RegisterRequest) error

	// Logout asks the backend to drop the refresh token. Best effort.
	Logout(ctx context.Context) error

	// Get fetches endpoint with the credential as bearer.
	Get(ctx context.Context, endpoint string, credential entity.Credential) (json.RawMessage, error)

	// Send issues a mutating request (POST, PUT, DELETE) with an optional JSON body.
	Send(ctx context.Context, method, endpoint string, credential entity.Credential, body any) (json.RawMessage, error)
}
