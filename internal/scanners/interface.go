package scanners

import (
	"time"

	"forgescan/report-importer/internal/model"
)

type Parser interface {
	Parse(ev model.ReportEvent, now func() time.Time) ([]model.Finding, error)
}

type ParserFunc func(ev model.ReportEvent, now func() time.Time) ([]model.Finding, error)

func (f ParserFunc) Parse(ev model.ReportEvent, now func() time.Time) ([]model.Finding, error) {
	return f(ev, now)
}
