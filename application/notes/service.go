// Package notes holds the note lifecycle coordinator: the one place that
// decides where a note's content lives, wires enrichment into writes, and
// keeps metadata and blob storage consistent on delete.
package notes

import (
	"context"
	"strings"

	"mynotes-backend/application/ports"
	"mynotes-backend/domain/note"
	apperrors "mynotes-backend/pkg/errors"

	"go.uber.org/zap"
)

// Page is one page of a user's notes.
type Page struct {
	Elements []note.Summary `json:"elements"`
	HasNext  bool           `json:"hasNext"`
}

// Service orchestrates the note lifecycle operations. Each call is an
// independent stateless unit of work; all downstream calls are synchronous
// and the service issues no retries of its own.
type Service struct {
	repo          ports.NoteRepository
	blobs         ports.BlobStore
	textAnalyzer  ports.TextAnalyzer
	imageAnalyzer ports.ImageAnalyzer
	events        ports.EventPublisher
	metrics       ports.OperationMetrics
	logger        *zap.Logger
}

// NewService creates a note lifecycle service. events and metrics may be
// nil; both are best-effort concerns.
func NewService(
	repo ports.NoteRepository,
	blobs ports.BlobStore,
	textAnalyzer ports.TextAnalyzer,
	imageAnalyzer ports.ImageAnalyzer,
	events ports.EventPublisher,
	metrics ports.OperationMetrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:          repo,
		blobs:         blobs,
		textAnalyzer:  textAnalyzer,
		imageAnalyzer: imageAnalyzer,
		events:        events,
		metrics:       metrics,
		logger:        logger,
	}
}

// CreateText creates a new text note with a freshly generated id.
func (s *Service) CreateText(ctx context.Context, userID, title, text string) (note.Summary, error) {
	if err := validateTextNote(title, text); err != nil {
		s.record(ctx, "CreateText", false)
		return note.Summary{}, err
	}

	labels, err := s.textAnalyzer.AnalyzeText(ctx, text)
	if err != nil {
		s.record(ctx, "CreateText", false)
		return note.Summary{}, apperrors.Wrap(err, "text analysis failed")
	}

	n := note.NewText(userID, title, text, labels)
	if err := s.repo.Put(ctx, n); err != nil {
		s.record(ctx, "CreateText", false)
		return note.Summary{}, apperrors.Wrap(err, "failed to persist note")
	}

	s.logger.Info("Note created",
		zap.String("userID", userID),
		zap.String("noteID", n.NoteID),
		zap.Int("labelCount", len(n.Labels)),
	)

	s.publish(ctx, ports.NoteEvent{
		Action:   ports.EventNoteCreated,
		UserID:   userID,
		NoteID:   n.NoteID,
		NoteType: n.Type,
	})
	s.record(ctx, "CreateText", true)

	return n.ToSummary(), nil
}

// UpdateText overwrites the note at noteID with new text content. The
// write is a full replace: if the target previously held an attachment,
// it becomes a text note and the old blob is orphaned. No cascade delete
// happens here; only explicit DeleteNote removes blobs.
func (s *Service) UpdateText(ctx context.Context, userID, noteID, title, text string) (note.Summary, error) {
	if noteID == "" {
		s.record(ctx, "UpdateText", false)
		return note.Summary{}, apperrors.NewValidationError("note id is required")
	}
	if err := validateTextNote(title, text); err != nil {
		s.record(ctx, "UpdateText", false)
		return note.Summary{}, err
	}

	labels, err := s.textAnalyzer.AnalyzeText(ctx, text)
	if err != nil {
		s.record(ctx, "UpdateText", false)
		return note.Summary{}, apperrors.Wrap(err, "text analysis failed")
	}

	n := note.UpdatedText(userID, noteID, title, text, labels)
	if err := s.repo.Put(ctx, n); err != nil {
		s.record(ctx, "UpdateText", false)
		return note.Summary{}, apperrors.Wrap(err, "failed to persist note")
	}

	s.logger.Info("Note updated",
		zap.String("userID", userID),
		zap.String("noteID", noteID),
	)

	s.publish(ctx, ports.NoteEvent{
		Action:   ports.EventNoteUpdated,
		UserID:   userID,
		NoteID:   noteID,
		NoteType: n.Type,
	})
	s.record(ctx, "UpdateText", true)

	return n.ToSummary(), nil
}

// DeleteNote removes the note's metadata and, for blob-backed notes, its
// stored content. The blob delete is best-effort: a failure is logged but
// does not roll back the metadata delete.
func (s *Service) DeleteNote(ctx context.Context, userID, noteID string) error {
	if noteID == "" {
		s.record(ctx, "DeleteNote", false)
		return apperrors.NewValidationError("note id is required")
	}

	deleted, err := s.repo.Delete(ctx, userID, noteID)
	if err != nil {
		s.record(ctx, "DeleteNote", false)
		return err
	}

	if note.RequiresBlob(deleted.Type) {
		if err := s.blobs.Delete(ctx, deleted.StorageKey); err != nil {
			s.logger.Warn("Blob delete failed, object orphaned",
				zap.String("userID", userID),
				zap.String("noteID", noteID),
				zap.String("storageKey", deleted.StorageKey),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Note deleted",
		zap.String("userID", userID),
		zap.String("noteID", noteID),
		zap.String("type", string(deleted.Type)),
	)

	s.publish(ctx, ports.NoteEvent{
		Action:   ports.EventNoteDeleted,
		UserID:   userID,
		NoteID:   noteID,
		NoteType: deleted.Type,
	})
	s.record(ctx, "DeleteNote", true)

	return nil
}

// ListNotes returns one page of the user's notes.
func (s *Service) ListNotes(ctx context.Context, userID, cursor string) (Page, error) {
	summaries, next, err := s.repo.QueryByUser(ctx, userID, cursor)
	if err != nil {
		s.record(ctx, "ListNotes", false)
		return Page{}, apperrors.Wrap(err, "failed to list notes")
	}

	s.record(ctx, "ListNotes", true)
	return Page{Elements: summaries, HasNext: next != ""}, nil
}

// RequestUpload issues a presigned PUT URL for a new attachment. The
// metadata item is not created here; FinalizeUpload creates it once the
// blob store reports the object.
func (s *Service) RequestUpload(ctx context.Context, userID, fileName string) (string, error) {
	if fileName == "" {
		s.record(ctx, "RequestUpload", false)
		return "", apperrors.NewValidationError("file name is required")
	}
	// The compound key joins segments with '/', so the name must not
	// contain one.
	if strings.Contains(fileName, "/") {
		s.record(ctx, "RequestUpload", false)
		return "", apperrors.NewValidationError("file name must not contain '/'")
	}

	key := note.EncodeKey(userID, note.NewID(), fileName)
	url, err := s.blobs.PresignPut(ctx, key)
	if err != nil {
		s.record(ctx, "RequestUpload", false)
		return "", apperrors.Wrap(err, "failed to presign upload")
	}

	s.logger.Info("Upload URL issued",
		zap.String("userID", userID),
		zap.String("storageKey", key),
	)
	s.record(ctx, "RequestUpload", true)

	return url, nil
}

// RequestDownload issues a presigned GET URL for an existing blob-backed
// note.
func (s *Service) RequestDownload(ctx context.Context, userID, noteID string) (string, error) {
	if noteID == "" {
		s.record(ctx, "RequestDownload", false)
		return "", apperrors.NewValidationError("note id is required")
	}

	n, err := s.repo.Get(ctx, userID, noteID)
	if err != nil {
		s.record(ctx, "RequestDownload", false)
		return "", err
	}
	if n.StorageKey == "" {
		s.record(ctx, "RequestDownload", false)
		return "", apperrors.NewNotFoundError("attachment for note " + noteID)
	}

	url, err := s.blobs.PresignGet(ctx, n.StorageKey)
	if err != nil {
		s.record(ctx, "RequestDownload", false)
		return "", apperrors.Wrap(err, "failed to presign download")
	}

	s.record(ctx, "RequestDownload", true)
	return url, nil
}

// FinalizeUpload creates the metadata item for an uploaded object. It is
// the only producer of IMAGE and FILE notes: identity and title come from
// the storage key, not from a client body.
func (s *Service) FinalizeUpload(ctx context.Context, storageKey string, size int64) error {
	decoded, err := note.DecodeKey(storageKey)
	if err != nil {
		s.record(ctx, "FinalizeUpload", false)
		return err
	}

	noteType := note.Classify(decoded.FileName)

	var labels []string
	if noteType == note.TypeImage {
		labels, err = s.imageAnalyzer.AnalyzeImage(ctx, storageKey)
		if err != nil {
			s.record(ctx, "FinalizeUpload", false)
			return apperrors.Wrap(err, "image analysis failed")
		}
	}

	n := note.NewStored(decoded.UserID, decoded.NoteID, decoded.FileName, storageKey, size, noteType, labels)
	if err := s.repo.Put(ctx, n); err != nil {
		s.record(ctx, "FinalizeUpload", false)
		return apperrors.Wrap(err, "failed to persist note")
	}

	s.logger.Info("Attachment filed",
		zap.String("userID", decoded.UserID),
		zap.String("noteID", decoded.NoteID),
		zap.String("type", string(noteType)),
		zap.Int64("size", size),
	)

	s.publish(ctx, ports.NoteEvent{
		Action:   ports.EventAttachmentFiled,
		UserID:   decoded.UserID,
		NoteID:   decoded.NoteID,
		NoteType: noteType,
	})
	s.record(ctx, "FinalizeUpload", true)

	return nil
}

func validateTextNote(title, text string) error {
	if title == "" {
		return apperrors.NewValidationError("title is required")
	}
	if text == "" {
		return apperrors.NewValidationError("text is required")
	}
	return nil
}

func (s *Service) publish(ctx context.Context, event ports.NoteEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("Event publish failed",
			zap.String("action", event.Action),
			zap.String("noteID", event.NoteID),
			zap.Error(err),
		)
	}
}

func (s *Service) record(ctx context.Context, operation string, success bool) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperation(ctx, operation, success)
}
