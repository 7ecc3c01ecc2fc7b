package static

import (
	"context"

	"forgescan/report-importer/internal/model"
)

// Identity returns a fixed account and region, for deployments without STS.
type Identity model.Identity

func (i Identity) Resolve(context.Context) (model.Identity, error) {
	return model.Identity(i), nil
}
