package awsadapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"forgescan/report-importer/internal/model"
)

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, in *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type Identity struct {
	client stsAPI
	region string
}

func NewIdentity(cfg aws.Config) *Identity {
	return &Identity{client: sts.NewFromConfig(cfg), region: cfg.Region}
}

func (i *Identity) Resolve(ctx context.Context) (model.Identity, error) {
	if i.region == "" {
		return model.Identity{}, errors.New("no AWS region configured")
	}
	out, err := i.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return model.Identity{}, fmt.Errorf("get caller identity: %w", err)
	}
	account := aws.ToString(out.Account)
	if account == "" {
		return model.Identity{}, errors.New("get caller identity: empty account")
	}
	return model.Identity{AccountID: account, Region: i.region}, nil
}
