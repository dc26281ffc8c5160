package imports

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taberna-labs/daybook/internal/importer"
	"github.com/taberna-labs/daybook/internal/upload"
)

// Handler exposes the three collaborator calls: start an import, poll its
// status, reprocess. Import errors never surface here; they land on the
// job record.
type Handler struct {
	uploads   *upload.Service
	importSvc *importer.Service
}

func NewHandler(uploads *upload.Service, importSvc *importer.Service) *Handler {
	return &Handler{uploads: uploads, importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.startImport)
	r.Get("/{id}", h.status)
	r.Post("/{id}/reprocess", h.reprocess)
}

type startRequest struct {
	FilePath string `json:"file_path"`
}

type startResponse struct {
	UploadID uuid.UUID `json:"upload_id"`
}

type statusResponse struct {
	Status        upload.Status `json:"status"`
	ProcessedRows int           `json:"processed_rows"`
	TotalRows     int           `json:"total_rows"`
	Errors        []string      `json:"errors"`
}

func (h *Handler) startImport(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.FilePath == "" {
		http.Error(w, "file_path is required", http.StatusBadRequest)
		return
	}

	u, err := h.uploads.Create(r.Context(), filepath.Base(req.FilePath), req.FilePath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Fire and forget; the caller polls the job for everything else.
	h.importSvc.Start(u.ID, u.SourcePath)

	respond(w, http.StatusAccepted, startResponse{UploadID: u.ID})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid upload id", http.StatusBadRequest)
		return
	}

	u, err := h.uploads.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			http.Error(w, "upload not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	errs := u.Errors
	if errs == nil {
		errs = []string{}
	}

	respond(w, http.StatusOK, statusResponse{
		Status:        u.Status,
		ProcessedRows: u.ProcessedRows,
		TotalRows:     u.TotalRows,
		Errors:        errs,
	})
}

func (h *Handler) reprocess(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid upload id", http.StatusBadRequest)
		return
	}

	if err := h.importSvc.Reprocess(r.Context(), id); err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			http.Error(w, "upload not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
