package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/ports"
)

// Findings stores findings keyed like the aggregation service does
// (product ARN and id). Re-importing an id replaces the stored finding.
type Findings struct {
	db *DB
}

func NewFindings(db *DB) *Findings { return &Findings{db: db} }

func (s *Findings) BatchImport(ctx context.Context, findings []model.SecurityFinding) (ports.ImportResult, error) {
	var res ports.ImportResult
	for _, f := range findings {
		payload, err := json.Marshal(f)
		if err != nil {
			return res, fmt.Errorf("encode finding %s: %w", f.ID, err)
		}
		created, cerr := time.Parse(time.RFC3339Nano, f.CreatedAt)
		updated, uerr := time.Parse(time.RFC3339Nano, f.UpdatedAt)
		if cerr != nil || uerr != nil {
			res.FailedCount++
			res.Failed = append(res.Failed, ports.FailedFinding{ID: f.ID, ErrorCode: "InvalidInput", ErrorMessage: "timestamps must be RFC3339"})
			continue
		}
		_, err = s.db.Pool.Exec(ctx, `
            INSERT INTO findings (id, product_arn, generator_id, severity, title, payload, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            ON CONFLICT (product_arn, id) DO UPDATE SET
                generator_id = EXCLUDED.generator_id,
                severity     = EXCLUDED.severity,
                title        = EXCLUDED.title,
                payload      = EXCLUDED.payload,
                updated_at   = EXCLUDED.updated_at
        `, f.ID, f.ProductArn, f.GeneratorID, f.Severity.Normalized, f.Title, payload, created, updated)

		// Constraint and data errors reject the item; anything else is a transport failure.
		var pgErr *pgconn.PgError
		switch {
		case err == nil:
			res.SuccessCount++
		case errors.As(err, &pgErr):
			res.FailedCount++
			res.Failed = append(res.Failed, ports.FailedFinding{ID: f.ID, ErrorCode: pgErr.Code, ErrorMessage: pgErr.Message})
		default:
			return res, fmt.Errorf("import finding %s: %w", f.ID, err)
		}
	}
	return res, nil
}
