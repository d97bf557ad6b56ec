package service

import "context"

// LoginFlagStore persists the single "was previously logged in" flag.
// Nothing else about the session survives a restart.
type LoginFlagStore interface {
	Load(ctx context.Context) (bool, error)
	Save(ctx context.Context) error
	Clear(ctx context.Context) error

	// Close releases any resources held by the store
	Close() error
}
