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

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	service  *notes.Service
	errorOut *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(service *notes.Service, errorOut *apperrors.ErrorHandler, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		service:  service,
		errorOut: errorOut,
		logger:   logger,
	}
}

// NoteRequest represents the request body for creating or updating a
// text note
type NoteRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Text  string `json:"text" validate:"required"`
}

// CreateNote handles POST /api/notes
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorOut.Handle(w, r, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorOut.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	summary, err := h.service.CreateText(r.Context(), userID, req.Title, req.Text)
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// UpdateNote handles PUT /api/notes/{id}
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
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

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorOut.Handle(w, r, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorOut.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	summary, err := h.service.UpdateText(r.Context(), userID, noteID, req.Title, req.Text)
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// DeleteNote handles DELETE /api/notes/{id}
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteNote(r.Context(), userID, noteID); err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"noteId": noteID})
}

// ListNotes handles GET /api/notes
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	cursor := r.URL.Query().Get("cursor")

	page, err := h.service.ListNotes(r.Context(), userID, cursor)
	if err != nil {
		h.errorOut.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

func (h *NoteHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
