package publish

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/ports"
)

const (
	SchemaVersion     = "2018-10-08"
	ResourceType      = "CodeBuild"
	ResourcePartition = "aws"

	// DefaultProductPartition is the partition of the product ARN the
	// pipeline was first deployed to.
	DefaultProductPartition = "aws-us-gov"

	typeNamespace = "Software and Configuration Checks/AWS Security Best Practices/"
)

// FindingImportError is returned when the service rejects part of a batch.
type FindingImportError struct {
	FindingID   string
	FailedCount int
	Failed      []ports.FailedFinding
}

func (e *FindingImportError) Error() string {
	return fmt.Sprintf("failed to import finding %s: %d failed", e.FindingID, e.FailedCount)
}

type Publisher struct {
	importer  ports.FindingImporter
	partition string
	log       *zap.SugaredLogger
}

func New(importer ports.FindingImporter, productPartition string, log *zap.SugaredLogger) *Publisher {
	if productPartition == "" {
		productPartition = DefaultProductPartition
	}
	return &Publisher{importer: importer, partition: productPartition, log: log}
}

// Publish submits one finding as a single-item batch. Any failed item is an error.
func (p *Publisher) Publish(ctx context.Context, id model.Identity, ev model.ReportEvent, f model.Finding) error {
	if !model.ValidSeverity(f.Severity) {
		return fmt.Errorf("finding %s: severity %d outside [%d,%d]", f.ID, f.Severity, model.MinSeverity, model.MaxSeverity)
	}
	sf := p.Assemble(id, ev, f)

	res, err := p.importer.BatchImport(ctx, []model.SecurityFinding{sf})
	if err != nil {
		return fmt.Errorf("import finding %s: %w", f.ID, err)
	}
	if res.FailedCount > 0 {
		p.log.Errorw("finding import rejected", "finding_id", f.ID, "failed_count", res.FailedCount, "failures", res.Failed)
		return &FindingImportError{FindingID: f.ID, FailedCount: res.FailedCount, Failed: res.Failed}
	}
	p.log.Debugw("finding imported", "finding_id", f.ID, "severity", f.Severity)
	return nil
}

func (p *Publisher) Assemble(id model.Identity, ev model.ReportEvent, f model.Finding) model.SecurityFinding {
	ts := f.CreatedAt.UTC().Format(time.RFC3339Nano)
	return model.SecurityFinding{
		SchemaVersion: SchemaVersion,
		ID:            f.ID,
		ProductArn:    fmt.Sprintf("arn:%s:securityhub:%s:%s:product/%s/default", p.partition, id.Region, id.AccountID, id.AccountID),
		GeneratorID:   f.GeneratorID,
		AwsAccountID:  id.AccountID,
		Types:         []string{typeNamespace + f.Type},
		CreatedAt:     ts,
		UpdatedAt:     ts,
		Severity:      model.FindingSeverity{Normalized: f.Severity},
		Title:         fmt.Sprintf("%d-%s", f.Index, f.Title),
		Description:   f.Description,
		Remediation: model.FindingRemedy{
			Recommendation: model.Recommendation{Text: f.Remediation.Text, URL: f.Remediation.URL},
		},
		SourceURL: f.SourceURL,
		Resources: []model.FindingResource{{
			ID:        ev.BuildID,
			Type:      ResourceType,
			Partition: ResourcePartition,
			Region:    id.Region,
		}},
	}
}
