package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"forgescan/report-importer/internal/ports"
)

func (s *Server) ArchiveHandler(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	key := chi.URLParam(r, "*")

	payload, err := s.archive.Get(r.Context(), bucket, key)
	if errors.Is(err, ports.ErrNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": "not found"})
		return
	}
	if err != nil {
		s.log.Errorw("archive read failed", "bucket", bucket, "key", key, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": "archive unavailable"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}
