package handlers

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/vmunteanu/contaflow/internal/api/middleware"
	"github.com/vmunteanu/contaflow/internal/pipeline"
)

// maxUploadBytes caps the multipart form size.
const maxUploadBytes = 20 << 20

// allowedMIMETypes is the upload whitelist. Anything else is rejected
// before a placeholder record is created.
var allowedMIMETypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// UploadsHandler handles upload intake and cancellation.
type UploadsHandler struct {
	pipeline *pipeline.Service
	log      zerolog.Logger
}

func NewUploadsHandler(p *pipeline.Service, log zerolog.Logger) *UploadsHandler {
	return &UploadsHandler{pipeline: p, log: log}
}

// Upload handles POST /api/uploads. The file is classified by name and
// queued for analysis; the response carries the placeholder entity id.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Cererea nu este un formular multipart valid")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Câmpul 'file' lipsește")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !allowedMIMETypes[mimeType] {
		middleware.WriteError(w, http.StatusBadRequest, "Tip de fișier neacceptat: "+mimeType)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Str("file", header.Filename).Msg("Failed to read upload")
		middleware.WriteError(w, http.StatusInternalServerError, "Fișierul nu a putut fi citit")
		return
	}

	receipt, err := h.pipeline.Ingest(r.Context(), header.Filename, mimeType, header.Size, data)
	if err != nil {
		h.log.Error().Err(err).Str("file", header.Filename).Msg("Failed to enqueue analysis")
		middleware.WriteError(w, http.StatusInternalServerError, "Analiza nu a putut fi pornită")
		return
	}

	middleware.WriteJSON(w, http.StatusAccepted, receipt)
}

// CancelUpload handles POST /api/uploads/{entityId}/cancel. It aborts an
// in-flight analysis; the placeholder flips to its failure status.
func (h *UploadsHandler) CancelUpload(w http.ResponseWriter, r *http.Request, entityID string) {
	if !h.pipeline.Cancel(entityID) {
		middleware.WriteError(w, http.StatusNotFound, "Nu există o analiză în curs pentru această încărcare")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"entityId":  entityID,
		"cancelled": true,
	})
}
