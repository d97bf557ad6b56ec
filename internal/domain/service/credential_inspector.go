package service

import "pabw/internal/domain/entity"

// CredentialInspector reads informational claims from a credential without
// verifying it. The client never trusts these for authorization.
type CredentialInspector interface {
	Inspect(credential entity.Credential) (entity.CredentialInfo, bool)
}
