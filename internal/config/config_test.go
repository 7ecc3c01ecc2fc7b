package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "importer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("IMPORTER_CONFIG", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9001" {
		t.Errorf("listen addr = %s", cfg.ListenAddr)
	}
	if cfg.Identity.Backend != IdentitySTS || cfg.Archive.Backend != ArchiveS3 || cfg.Findings.Backend != FindingsSecurityHub {
		t.Errorf("unexpected default backends: %+v", cfg)
	}
	if cfg.Archive.BucketPrefix != "pipeline-artifact-bucket-" {
		t.Errorf("bucket prefix = %s", cfg.Archive.BucketPrefix)
	}
	if cfg.Findings.ProductPartition != "aws-us-gov" {
		t.Errorf("product partition = %s", cfg.Findings.ProductPartition)
	}
	if !cfg.UsesAWS() || cfg.UsesPostgres() {
		t.Error("defaults should only use AWS")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":8080"
region: eu-west-1
database_url: postgres://importer@localhost/importer
identity:
  backend: static
  account_id: "111122223333"
archive:
  backend: postgres
findings:
  backend: postgres
  product_partition: aws
`)
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("IMPORTER_DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("env should override file, got %s", cfg.ListenAddr)
	}
	if !cfg.Debug {
		t.Error("IMPORTER_DEBUG not applied")
	}
	if cfg.Identity.AccountID != "111122223333" || cfg.Region != "eu-west-1" {
		t.Errorf("identity = %+v region = %s", cfg.Identity, cfg.Region)
	}
	if !cfg.UsesPostgres() || cfg.UsesAWS() {
		t.Error("file selects postgres only")
	}
	if cfg.Archive.BucketPrefix != "pipeline-artifact-bucket-" {
		t.Error("unset file keys should keep defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"unknown_archive", func(c *Config) { c.Archive.Backend = "gcs" }, "unknown archive backend"},
		{"unknown_findings", func(c *Config) { c.Findings.Backend = "jira" }, "unknown findings backend"},
		{"unknown_identity", func(c *Config) { c.Identity.Backend = "iam" }, "unknown identity backend"},
		{"static_without_account", func(c *Config) { c.Identity.Backend = IdentityStatic }, "static identity"},
		{"postgres_without_url", func(c *Config) { c.Archive.Backend = ArchivePostgres }, "DATABASE_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadBadFile(t *testing.T) {
	if _, err := Load(writeConfig(t, "listen_addr: [")); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}
