package awsadapter

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	shtypes "github.com/aws/aws-sdk-go-v2/service/securityhub/types"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/ports"
)

type securityHubAPI interface {
	BatchImportFindings(ctx context.Context, in *securityhub.BatchImportFindingsInput, optFns ...func(*securityhub.Options)) (*securityhub.BatchImportFindingsOutput, error)
}

type SecurityHub struct {
	client securityHubAPI
}

func NewSecurityHub(cfg aws.Config) *SecurityHub {
	return &SecurityHub{client: securityhub.NewFromConfig(cfg)}
}

func (s *SecurityHub) BatchImport(ctx context.Context, findings []model.SecurityFinding) (ports.ImportResult, error) {
	in := &securityhub.BatchImportFindingsInput{Findings: make([]shtypes.AwsSecurityFinding, 0, len(findings))}
	for _, f := range findings {
		in.Findings = append(in.Findings, toASFF(f))
	}
	out, err := s.client.BatchImportFindings(ctx, in)
	if err != nil {
		return ports.ImportResult{}, fmt.Errorf("batch import findings: %w", err)
	}

	res := ports.ImportResult{
		SuccessCount: int(aws.ToInt32(out.SuccessCount)),
		FailedCount:  int(aws.ToInt32(out.FailedCount)),
	}
	for _, ff := range out.FailedFindings {
		res.Failed = append(res.Failed, ports.FailedFinding{
			ID:           aws.ToString(ff.Id),
			ErrorCode:    aws.ToString(ff.ErrorCode),
			ErrorMessage: aws.ToString(ff.ErrorMessage),
		})
	}
	return res, nil
}

func toASFF(f model.SecurityFinding) shtypes.AwsSecurityFinding {
	resources := make([]shtypes.Resource, 0, len(f.Resources))
	for _, r := range f.Resources {
		resources = append(resources, shtypes.Resource{
			Id:        aws.String(r.ID),
			Type:      aws.String(r.Type),
			Partition: shtypes.Partition(r.Partition),
			Region:    aws.String(r.Region),
		})
	}
	return shtypes.AwsSecurityFinding{
		SchemaVersion: aws.String(f.SchemaVersion),
		Id:            aws.String(f.ID),
		ProductArn:    aws.String(f.ProductArn),
		GeneratorId:   aws.String(f.GeneratorID),
		AwsAccountId:  aws.String(f.AwsAccountID),
		Types:         f.Types,
		CreatedAt:     aws.String(f.CreatedAt),
		UpdatedAt:     aws.String(f.UpdatedAt),
		Severity:      &shtypes.Severity{Normalized: aws.Int32(int32(f.Severity.Normalized))},
		Title:         aws.String(f.Title),
		Description:   aws.String(f.Description),
		Remediation: &shtypes.Remediation{
			Recommendation: &shtypes.Recommendation{
				Text: aws.String(f.Remediation.Recommendation.Text),
				Url:  aws.String(f.Remediation.Recommendation.URL),
			},
		},
		SourceUrl: aws.String(f.SourceURL),
		Resources: resources,
	}
}
