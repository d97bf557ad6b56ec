// Package storage keeps the durable login flag.
package storage

import (
	"context"
	"log/slog"

	"pabw/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// flagValue is what a set flag contains. Absence of the object means unset.
var flagValue = []byte("true")

// blobFlagStore keeps the flag as one object in a gocloud bucket.
type blobFlagStore struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// NewBlobFlagStore opens bucketURL and stores the flag under key
func NewBlobFlagStore(ctx context.Context, bucketURL, key string, logger *slog.Logger) (service.LoginFlagStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobFlagStore{bucket: bucket, key: key, logger: logger}, nil
}

func (s *blobFlagStore) Load(ctx context.Context) (bool, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read login flag")
	}

	return string(data) == string(flagValue), nil
}

func (s *blobFlagStore) Save(ctx context.Context) error {
	if err := s.bucket.WriteAll(ctx, s.key, flagValue, nil); err != nil {
		return errors.Wrap(err, "failed to write login flag")
	}

	return nil
}

func (s *blobFlagStore) Clear(ctx context.Context) error {
	err := s.bucket.Delete(ctx, s.key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete login flag")
	}

	return nil
}

func (s *blobFlagStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
