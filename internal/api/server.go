package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/ports"
)

type EventHandler interface {
	Handle(ctx context.Context, ev model.ReportEvent) error
}

type Server struct {
	events  EventHandler
	archive ports.ArchiveReader
	log     *zap.SugaredLogger
}

// New builds the HTTP host. archive may be nil when the store cannot be read back.
func New(events EventHandler, archive ports.ArchiveReader, log *zap.SugaredLogger) *Server {
	return &Server{events: events, archive: archive, log: log}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	r.Post("/events", s.IngestHandler)
	if s.archive != nil {
		r.Get("/archive/{bucket}/*", s.ArchiveHandler)
	}
	return r
}
