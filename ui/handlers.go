package ui

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/atreyakamat/VistaraBI-sub002/adapters/extract"
	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/internal/errors"
	"github.com/atreyakamat/VistaraBI-sub002/internal/profile"
	"github.com/atreyakamat/VistaraBI-sub002/internal/schema"
)

// extractResponse is the upload endpoint's payload: one file's records,
// provenance metadata and, for tabular formats, the inferred schema and
// column profiles.
type extractResponse struct {
	ID          string                           `json:"id"`
	FileName    string                           `json:"fileName"`
	Format      extract.Format                   `json:"format"`
	RecordCount int                              `json:"recordCount"`
	Records     []record.Record                  `json:"records"`
	Metadata    record.Metadata                  `json:"metadata"`
	Schema      record.Schema                    `json:"schema,omitempty"`
	Profile     map[string]profile.ColumnProfile `json:"profile,omitempty"`
}

// handleHealth reports service liveness.
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract accepts a multipart upload, runs the matching extractor and
// returns records plus schema. A failed extraction fails this file only.
func (a *App) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.Limits.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	format, err := extract.Detect(header.Filename)
	if err != nil {
		a.respondError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	doc, format, err := extract.FromReader(r.Context(), format, file)
	if err != nil {
		a.logger.Warn("[Extract] %s: %v", header.Filename, err)
		a.respondError(w, statusForError(err), err.Error())
		return
	}

	resp := extractResponse{
		ID:          uuid.NewString(),
		FileName:    header.Filename,
		Format:      format,
		RecordCount: len(doc.Records),
		Records:     doc.Records,
		Metadata:    doc.Metadata,
	}
	if extract.Tabular(format) {
		resp.Schema = schema.Infer(doc.Records)
		resp.Profile = profile.Columns(doc.Records, resp.Schema, a.cfg.Limits.ProfileSampleSize)
	}

	a.logger.Info("[Extract] %s (%s): %d records", header.Filename, format, resp.RecordCount)
	a.respondJSON(w, http.StatusOK, resp)
}

// statusForError maps the extraction error taxonomy to HTTP statuses.
func statusForError(err error) int {
	switch errors.CodeOf(err) {
	case errors.CodeUnreadableInput, errors.CodeMalformedContent:
		return http.StatusUnprocessableEntity
	case errors.CodeUnsupportedLegacy:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

func (a *App) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("[Extract] encoding response: %v", err)
	}
}

func (a *App) respondError(w http.ResponseWriter, status int, message string) {
	a.respondJSON(w, status, map[string]string{"error": message})
}
