package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/publish"
)

func (s *Server) IngestHandler(w http.ResponseWriter, r *http.Request) {
	var ev model.ReportEvent
	if err := render.DecodeJSON(r.Body, &ev); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "invalid json"})
		return
	}

	if err := s.events.Handle(r.Context(), ev); err != nil {
		status := statusFor(err)
		s.log.Errorw("event processing failed", "request_id", middleware.GetReqID(r.Context()),
			"report_type", ev.ReportType, "build_id", ev.BuildID, "status", status, "error", err)
		render.Status(r, status)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}

	render.JSON(w, r, map[string]string{"status": "processed"})
}

func statusFor(err error) int {
	var importErr *publish.FindingImportError
	switch {
	case errors.Is(err, model.ErrMalformedReport), errors.Is(err, model.ErrInvalidEvent):
		return http.StatusUnprocessableEntity
	case errors.As(err, &importErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
