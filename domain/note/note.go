package note

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies where a note's content lives: inline text in the
// metadata item, or an object in the blob store.
type Type string

const (
	TypeText  Type = "TEXT"
	TypeImage Type = "IMAGE"
	TypeFile  Type = "FILE"
)

// RequiresBlob reports whether notes of the given type keep their content
// in the blob store. This is the single place the storage-routing decision
// is made.
func RequiresBlob(t Type) bool {
	switch t {
	case TypeImage, TypeFile:
		return true
	default:
		return false
	}
}

// Valid reports whether t is a known note type.
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeImage, TypeFile:
		return true
	}
	return false
}

// Note is the persisted record for a single note. Exactly one of Text or
// (Size, StorageKey) is set, governed by Type.
type Note struct {
	UserID     string
	NoteID     string
	Title      string
	Text       string
	Timestamp  int64
	Type       Type
	Size       *int64
	StorageKey string
	Labels     []string
}

// Summary is the client-facing subset of a Note. UserID is implied by the
// caller's identity and StorageKey is never exposed directly.
type Summary struct {
	NoteID    string   `json:"noteId"`
	Title     string   `json:"title"`
	Text      string   `json:"text,omitempty"`
	Timestamp int64    `json:"timestamp"`
	Type      Type     `json:"type"`
	Size      *int64   `json:"size,omitempty"`
	Labels    []string `json:"labels,omitempty"`
}

// NewID returns a fresh collision-improbable note identifier.
func NewID() string {
	return uuid.New().String()
}

// NewText builds a text note with a freshly generated id, stamped now.
func NewText(userID, title, text string, labels []string) Note {
	return Note{
		UserID:    userID,
		NoteID:    NewID(),
		Title:     title,
		Text:      text,
		Timestamp: nowMillis(),
		Type:      TypeText,
		Labels:    dedupe(labels),
	}
}

// UpdatedText builds a text note reusing an existing id, stamped now.
// The write is a full replace: any previous attachment attributes at the
// same key are dropped.
func UpdatedText(userID, noteID, title, text string, labels []string) Note {
	return Note{
		UserID:    userID,
		NoteID:    noteID,
		Title:     title,
		Text:      text,
		Timestamp: nowMillis(),
		Type:      TypeText,
		Labels:    dedupe(labels),
	}
}

// NewStored builds a blob-backed note from an uploaded object, stamped now.
// The title is the uploaded file name.
func NewStored(userID, noteID, fileName, storageKey string, size int64, t Type, labels []string) Note {
	return Note{
		UserID:     userID,
		NoteID:     noteID,
		Title:      fileName,
		Timestamp:  nowMillis(),
		Type:       t,
		Size:       &size,
		StorageKey: storageKey,
		Labels:     dedupe(labels),
	}
}

// ToSummary projects the note into its client-facing form.
func (n Note) ToSummary() Summary {
	return Summary{
		NoteID:    n.NoteID,
		Title:     n.Title,
		Text:      n.Text,
		Timestamp: n.Timestamp,
		Type:      n.Type,
		Size:      n.Size,
		Labels:    n.Labels,
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// dedupe removes duplicate labels, keeping first occurrence order.
func dedupe(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
