package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/publish"
)

const (
	IdentitySTS    = "sts"
	IdentityStatic = "static"

	ArchiveS3       = "s3"
	ArchivePostgres = "postgres"

	FindingsSecurityHub = "securityhub"
	FindingsPostgres    = "postgres"
)

type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	Debug       bool   `yaml:"debug"`
	Region      string `yaml:"region"`
	DatabaseURL string `yaml:"database_url"`

	Identity struct {
		Backend   string `yaml:"backend"`
		AccountID string `yaml:"account_id"`
	} `yaml:"identity"`

	Archive struct {
		Backend      string `yaml:"backend"`
		BucketPrefix string `yaml:"bucket_prefix"`
		PublicURL    string `yaml:"public_url"`
	} `yaml:"archive"`

	Findings struct {
		Backend          string `yaml:"backend"`
		ProductPartition string `yaml:"product_partition"`
	} `yaml:"findings"`
}

func defaults() Config {
	var cfg Config
	cfg.ListenAddr = "127.0.0.1:9001"
	cfg.Identity.Backend = IdentitySTS
	cfg.Archive.Backend = ArchiveS3
	cfg.Archive.BucketPrefix = model.DefaultBucketPrefix
	cfg.Archive.PublicURL = "http://127.0.0.1:9001"
	cfg.Findings.Backend = FindingsSecurityHub
	cfg.Findings.ProductPartition = publish.DefaultProductPartition
	return cfg
}

// Load reads the optional YAML file at path, then applies environment
// overrides. An empty path falls back to IMPORTER_CONFIG.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path == "" {
		path = os.Getenv("IMPORTER_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) {
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.Debug = getenvBool("IMPORTER_DEBUG", cfg.Debug)
	cfg.Region = getenv("AWS_REGION", cfg.Region)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.Identity.Backend = getenv("IMPORTER_IDENTITY_BACKEND", cfg.Identity.Backend)
	cfg.Identity.AccountID = getenv("IMPORTER_ACCOUNT_ID", cfg.Identity.AccountID)
	cfg.Archive.Backend = getenv("IMPORTER_ARCHIVE_BACKEND", cfg.Archive.Backend)
	cfg.Archive.BucketPrefix = getenv("IMPORTER_BUCKET_PREFIX", cfg.Archive.BucketPrefix)
	cfg.Archive.PublicURL = getenv("IMPORTER_PUBLIC_URL", cfg.Archive.PublicURL)
	cfg.Findings.Backend = getenv("IMPORTER_FINDINGS_BACKEND", cfg.Findings.Backend)
	cfg.Findings.ProductPartition = getenv("IMPORTER_PRODUCT_PARTITION", cfg.Findings.ProductPartition)
}

func (c Config) Validate() error {
	var errs []error
	switch c.Identity.Backend {
	case IdentitySTS:
	case IdentityStatic:
		if c.Identity.AccountID == "" || c.Region == "" {
			errs = append(errs, errors.New("static identity needs account_id and region"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown identity backend %q", c.Identity.Backend))
	}
	switch c.Archive.Backend {
	case ArchiveS3, ArchivePostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown archive backend %q", c.Archive.Backend))
	}
	switch c.Findings.Backend {
	case FindingsSecurityHub, FindingsPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown findings backend %q", c.Findings.Backend))
	}
	if c.UsesPostgres() && c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required for postgres backends"))
	}
	return errors.Join(errs...)
}

func (c Config) UsesPostgres() bool {
	return c.Archive.Backend == ArchivePostgres || c.Findings.Backend == FindingsPostgres
}

func (c Config) UsesAWS() bool {
	return c.Identity.Backend == IdentitySTS || c.Archive.Backend == ArchiveS3 || c.Findings.Backend == FindingsSecurityHub
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
