// Package ports defines the interfaces the note lifecycle coordinator
// depends on. Implementations live under infrastructure/.
package ports

import (
	"context"

	"mynotes-backend/domain/note"
)

// NoteRepository is the persistence boundary for note metadata, keyed by
// (userId, noteId). Put has full-replace semantics: it overwrites every
// attribute of an existing item, never merges.
type NoteRepository interface {
	Put(ctx context.Context, n note.Note) error

	// Get returns the note or a NotFound error.
	Get(ctx context.Context, userID, noteID string) (note.Note, error)

	// Delete removes the note and returns its prior attributes, or a
	// NotFound error if no item existed.
	Delete(ctx context.Context, userID, noteID string) (note.Note, error)

	// QueryByUser returns one page of the user's notes. The cursor is
	// opaque; pass the returned value back verbatim to continue. An empty
	// next cursor means no further pages.
	QueryByUser(ctx context.Context, userID, cursor string) ([]note.Summary, string, error)
}

// BlobStore issues presigned URLs for attachment content and removes
// objects. Delete is idempotent: a missing object is not an error.
type BlobStore interface {
	PresignPut(ctx context.Context, key string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// TextAnalyzer extracts entity labels from note text.
type TextAnalyzer interface {
	AnalyzeText(ctx context.Context, text string) ([]string, error)
}

// ImageAnalyzer detects labels on a stored image.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, storageKey string) ([]string, error)
}

// NoteEvent describes a lifecycle change for downstream consumers.
type NoteEvent struct {
	Action   string    `json:"action"`
	UserID   string    `json:"userId"`
	NoteID   string    `json:"noteId"`
	NoteType note.Type `json:"noteType"`
}

// Lifecycle event actions.
const (
	EventNoteCreated     = "NoteCreated"
	EventNoteUpdated     = "NoteUpdated"
	EventNoteDeleted     = "NoteDeleted"
	EventAttachmentFiled = "AttachmentFiled"
)

// EventPublisher publishes note lifecycle events. Publishing is
// best-effort; callers log failures and move on.
type EventPublisher interface {
	Publish(ctx context.Context, event NoteEvent) error
}

// OperationMetrics records coordinator operation outcomes.
type OperationMetrics interface {
	RecordOperation(ctx context.Context, operation string, success bool)
}
