package app

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"forgescan/report-importer/internal/config"
)

func TestBuildStaticIdentityAWSStores(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	var cfg config.Config
	cfg.Region = "eu-west-1"
	cfg.Identity.Backend = config.IdentityStatic
	cfg.Identity.AccountID = "111122223333"
	cfg.Archive.Backend = config.ArchiveS3
	cfg.Findings.Backend = config.FindingsSecurityHub

	a, err := Build(context.Background(), cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer a.Close()

	if a.Dispatcher == nil || a.Archive == nil {
		t.Fatal("dispatcher and archive must be wired")
	}
	if a.Reader != nil {
		t.Error("S3 archive is not readable over HTTP")
	}
	if a.DB != nil {
		t.Error("no database expected")
	}
}
