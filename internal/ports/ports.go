package ports

import (
	"context"
	"errors"

	"forgescan/report-importer/internal/model"
)

type IdentityResolver interface {
	Resolve(ctx context.Context) (model.Identity, error)
}

// ArchiveStore persists raw events and returns a link to the stored object.
type ArchiveStore interface {
	Put(ctx context.Context, obj model.ArchiveObject) (sourceURL string, err error)
}

var ErrNotFound = errors.New("not found")

// ArchiveReader serves archived events back; not every store supports it.
type ArchiveReader interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
}
