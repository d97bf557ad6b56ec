package storage

import (
	"context"
	"log/slog"
	"time"

	"pabw/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 3 * time.Second

// redisFlagStore keeps the flag as one redis key.
type redisFlagStore struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRedisClient returns a configured go-redis client from URL (e.g., redis://localhost:6379/0).
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("empty redis url")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "failed to reach redis")
	}

	return client, nil
}

// NewRedisFlagStore stores the flag under key using client
func NewRedisFlagStore(client *redis.Client, key string, logger *slog.Logger) service.LoginFlagStore {
	return &redisFlagStore{client: client, key: key, logger: logger}
}

func (s *redisFlagStore) Load(ctx context.Context) (bool, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read login flag")
	}

	return value == string(flagValue), nil
}

func (s *redisFlagStore) Save(ctx context.Context) error {
	return errors.Wrap(s.client.Set(ctx, s.key, flagValue, 0).Err(), "failed to write login flag")
}

func (s *redisFlagStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.client.Del(ctx, s.key).Err(), "failed to delete login flag")
}

func (s *redisFlagStore) Close() error {
	return errors.WithStack(s.client.Close())
}
