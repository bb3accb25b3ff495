package handlers

import (
	"encoding/json"
	"net/http"

	"mynotes-backend/application/notes"
	"mynotes-backend/pkg/auth"
	apperrors "mynotes-backend/pkg/errors"
	"mynotes-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FileHandler handles attachment upload and download requests. Content
// never flows through this service; clients get presigned URLs and talk
// to the blob store directly.
type FileHandler struct {
	service  *notes.Service
	errorOut *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(service *notes.Service, errorOut *apperrors.ErrorHandler, logger *zap.Logger) *FileHandler {
	return &FileHandler{
		service:  service,
		errorOut: errorOut,
		logger:   logger,
	}
}

// UploadRequest represents the request body for requesting an upload URL
type UploadRequest struct {
	Name string `json:"name" validate:"required,excludes=/"`
}

// SignedURLResponse carries a presigned URL back to the client
type SignedURLResponse struct {
	URL string `json:"url"`
}

// RequestUpload handles POST /api/files
func (h *FileHandler) RequestUpload(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorOut.Handle(w, r, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorOut.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	url, err := h.service.RequestUpload(r.Context(), userID, req.Name)
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, SignedURLResponse{URL: url})
}

// RequestDownload handles GET /api/files/{id}
func (h *FileHandler) RequestDownload(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		h.errorOut.Handle(w, r, apperrors.NewValidationError("note id is required"))
		return
	}

	url, err := h.service.RequestDownload(r.Context(), userID, noteID)
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, SignedURLResponse{URL: url})
}

func (h *FileHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
