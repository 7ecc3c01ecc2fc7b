package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/ports"
)

// Archive keeps raw events in report_archive. Rows are never updated.
type Archive struct {
	db        *DB
	publicURL string
}

func NewArchive(db *DB, publicURL string) *Archive {
	return &Archive{db: db, publicURL: strings.TrimRight(publicURL, "/")}
}

func (a *Archive) Put(ctx context.Context, obj model.ArchiveObject) (string, error) {
	_, err := a.db.Pool.Exec(ctx, `
        INSERT INTO report_archive (bucket, object_key, region, payload, encrypted)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (bucket, object_key) DO NOTHING
    `, obj.Bucket, obj.Key, obj.Region, obj.Body, obj.Encrypt)
	if err != nil {
		return "", fmt.Errorf("archive %s/%s: %w", obj.Bucket, obj.Key, err)
	}
	return a.URL(obj.Bucket, obj.Key), nil
}

func (a *Archive) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	var payload []byte
	err := a.db.Pool.QueryRow(ctx, `
        SELECT payload FROM report_archive WHERE bucket = $1 AND object_key = $2
    `, bucket, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	return payload, err
}

// URL is served by the HTTP host under /archive.
func (a *Archive) URL(bucket, key string) string {
	return fmt.Sprintf("%s/archive/%s/%s", a.publicURL, url.PathEscape(bucket), key)
}
