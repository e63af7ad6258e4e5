package web

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/boydsigns/proposalgen/internal/estimate"
	"github.com/boydsigns/proposalgen/internal/logging"
	"github.com/boydsigns/proposalgen/internal/proposal"
)

// maxRequestSize caps estimate payloads (4MB).
const maxRequestSize = 4 * 1024 * 1024

// generateRequest is the payload for POST /generate_proposal. The
// estimate rides under a "body" key.
type generateRequest struct {
	Body *estimate.Estimate `json:"body"`
}

// handleGenerate renders a proposal workbook from the posted estimate
// and streams it back as a download. The workbook is also saved to the
// output directory so it can be fetched again via /download.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	dec := json.NewDecoder(r.Body)

	var req generateRequest
	if err := dec.Decode(&req); err != nil {
		respondError(w, r, err, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Body == nil {
		writeError(w, r, http.StatusBadRequest, "estimate body is required")
		return
	}

	f, err := s.assembler.Render(r.Context(), req.Body)
	if err != nil {
		if proposal.IsConfigError(err) {
			respondError(w, r, err, http.StatusInternalServerError, "service misconfigured")
		} else {
			respondError(w, r, err, http.StatusInternalServerError, "proposal generation failed")
		}
		return
	}
	defer f.Close()

	art, err := s.store.Save(f)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError, "could not save proposal")
		return
	}

	logger.Info("proposal generated",
		"artifact", art.Name,
		"sign_types", len(req.Body.SignTypes),
	)

	w.Header().Set("Content-Type", s.store.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+art.Name+`"`)
	if err := f.Write(w); err != nil {
		logger.Error("stream proposal", "artifact", art.Name, "error", err)
	}
}

// handleDownload streams a previously generated proposal by name.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rc, err := s.store.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, r, http.StatusNotFound, "proposal not found")
			return
		}
		respondError(w, r, err, http.StatusInternalServerError, "could not read proposal")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", s.store.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if _, err := io.Copy(w, rc); err != nil {
		logging.FromContext(r.Context()).Error("stream artifact", "artifact", name, "error", err)
	}
}

// handleHealth reports service health. The template file must be
// readable for the service to do any useful work, so its absence
// degrades the check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(s.cfg.Template.Path); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"reason": "template unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
