package app

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/zap"

	awsadapter "forgescan/report-importer/internal/adapters/aws"
	pg "forgescan/report-importer/internal/adapters/postgres"
	"forgescan/report-importer/internal/adapters/static"
	"forgescan/report-importer/internal/config"
	"forgescan/report-importer/internal/dispatch"
	"forgescan/report-importer/internal/ports"
	"forgescan/report-importer/internal/publish"
)

type App struct {
	Dispatcher *dispatch.Dispatcher
	Archive    ports.ArchiveStore
	// Reader is set when the archive can be read back over HTTP.
	Reader ports.ArchiveReader
	DB     *pg.DB
}

func Build(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) (*App, error) {
	a := &App{}

	var awsCfg aws.Config
	if cfg.UsesAWS() {
		var err error
		awsCfg, err = awsadapter.LoadConfig(ctx, cfg.Region)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
	}
	if cfg.UsesPostgres() {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		a.DB = db
	}

	var identity ports.IdentityResolver
	switch cfg.Identity.Backend {
	case config.IdentityStatic:
		identity = static.Identity{AccountID: cfg.Identity.AccountID, Region: cfg.Region}
	default:
		identity = awsadapter.NewIdentity(awsCfg)
	}

	switch cfg.Archive.Backend {
	case config.ArchivePostgres:
		store := pg.NewArchive(a.DB, cfg.Archive.PublicURL)
		a.Archive, a.Reader = store, store
	default:
		a.Archive = awsadapter.NewArchive(awsCfg)
	}

	var importer ports.FindingImporter
	switch cfg.Findings.Backend {
	case config.FindingsPostgres:
		importer = pg.NewFindings(a.DB)
	default:
		importer = awsadapter.NewSecurityHub(awsCfg)
	}

	publisher := publish.New(importer, cfg.Findings.ProductPartition, log)
	a.Dispatcher = dispatch.New(identity, a.Archive, publisher, log,
		dispatch.WithBucketPrefix(cfg.Archive.BucketPrefix))

	log.Infow("importer wired",
		"identity", cfg.Identity.Backend, "archive", cfg.Archive.Backend, "findings", cfg.Findings.Backend)
	return a, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
