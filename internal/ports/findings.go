package ports

import (
	"context"

	"forgescan/report-importer/internal/model"
)

type FailedFinding struct {
	ID           string
	ErrorCode    string
	ErrorMessage string
}

type ImportResult struct {
	SuccessCount int
	FailedCount  int
	Failed       []FailedFinding
}

type FindingImporter interface {
	BatchImport(ctx context.Context, findings []model.SecurityFinding) (ImportResult, error)
}
