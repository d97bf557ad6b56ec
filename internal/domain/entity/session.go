package entity

import "time"

// Credential is an opaque bearer token. It only ever lives in memory.
type Credential string

// IsZero reports whether no credential is held.
func (c Credential) IsZero() bool {
	return c == ""
}

// ErrorKind classifies failures surfaced by the client.
type ErrorKind string

const (
	// ErrorKindTransport is a network failure or a non-2xx response.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindAuthorization is an HTTP 401 on an authenticated call.
	ErrorKindAuthorization ErrorKind = "authorization"
	// ErrorKindValidation is a local form error produced before dispatch.
	ErrorKindValidation ErrorKind = "validation"
)

// SessionState is a snapshot of the running client's session.
//
// A non-empty Credential implies IsLoginFlagSet. While IsLoading is true the
// credential is not authoritative. Epoch changes every time the credential
// does and is part of every cache key.
type SessionState struct {
	Credential     Credential `json:"-"`
	IsLoginFlagSet bool       `json:"is_login"`
	IsLoading      bool       `json:"is_loading"`
	LastError      ErrorKind  `json:"last_error,omitempty"`
	Epoch          uint64     `json:"epoch"`

	// Subject and ExpiresAt are read from the credential when it is a JWT.
	Subject   string    `json:"subject,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// IsAuthenticated reports whether the session holds an authoritative credential.
func (s SessionState) IsAuthenticated() bool {
	return !s.IsLoading && !s.Credential.IsZero()
}

// CredentialInfo is what can be read from a credential without verifying it.
type CredentialInfo struct {
	Subject   string
	ExpiresAt time.Time
}
