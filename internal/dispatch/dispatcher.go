package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/ports"
	"forgescan/report-importer/internal/publish"
	"forgescan/report-importer/internal/scanners"
	"forgescan/report-importer/internal/security"
)

type Dispatcher struct {
	identity     ports.IdentityResolver
	archive      ports.ArchiveStore
	publisher    *publish.Publisher
	parsers      scanners.Registry
	bucketPrefix string
	now          func() time.Time
	log          *zap.SugaredLogger
}

type Option func(*Dispatcher)

func WithBucketPrefix(prefix string) Option {
	return func(d *Dispatcher) { d.bucketPrefix = prefix }
}

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func WithParsers(r scanners.Registry) Option {
	return func(d *Dispatcher) { d.parsers = r }
}

func New(identity ports.IdentityResolver, archive ports.ArchiveStore, publisher *publish.Publisher, log *zap.SugaredLogger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		identity:     identity,
		archive:      archive,
		publisher:    publisher,
		parsers:      scanners.Default(),
		bucketPrefix: model.DefaultBucketPrefix,
		now:          time.Now,
		log:          log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle processes one event: archive, parse, publish. Unsupported message
// and report types are logged and dropped without error.
func (d *Dispatcher) Handle(ctx context.Context, ev model.ReportEvent) error {
	log := d.log.With("invocation_id", uuid.NewString(), "report_type", ev.ReportType, "build_id", ev.BuildID)

	if ev.MessageType != model.MessageTypeCodeScanReport {
		log.Errorw("message type not supported", "message_type", ev.MessageType)
		return nil
	}
	if err := security.ValidateEvent(ev); err != nil {
		return err
	}

	id, err := d.identity.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("resolve identity: %w", err)
	}

	body, err := ev.Payload()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	obj := model.NewArchiveObject(d.bucketPrefix, id, ev, body)
	sourceURL, err := d.archive.Put(ctx, obj)
	if err != nil {
		return fmt.Errorf("archive %s: %w", obj.Key, err)
	}
	log.Infow("report archived", "bucket", obj.Bucket, "key", obj.Key)

	parser, ok := d.parsers.Lookup(ev.ReportType)
	if !ok {
		log.Warnw("invalid report type", "supported", d.parsers.Types())
		return nil
	}

	findings, err := parser.Parse(ev, d.now)
	if err != nil {
		return err
	}
	log.Infow("report normalized", "findings", len(findings))

	for _, f := range findings {
		f.SourceURL = sourceURL
		if err := d.publisher.Publish(ctx, id, ev, f); err != nil {
			return err
		}
	}
	log.Infow("findings published", "count", len(findings))
	return nil
}
