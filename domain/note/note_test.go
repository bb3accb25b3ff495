package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiresBlob(t *testing.T) {
	assert.False(t, RequiresBlob(TypeText))
	assert.True(t, RequiresBlob(TypeImage))
	assert.True(t, RequiresBlob(TypeFile))
	assert.False(t, RequiresBlob(Type("BOGUS")))
}

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeText.Valid())
	assert.True(t, TypeImage.Valid())
	assert.True(t, TypeFile.Valid())
	assert.False(t, Type("").Valid())
	assert.False(t, Type("text").Valid())
}

func TestNewText(t *testing.T) {
	before := time.Now().UnixMilli()
	n := NewText("u1", "groceries", "milk, eggs", []string{"food", "food", "list"})
	after := time.Now().UnixMilli()

	assert.Equal(t, "u1", n.UserID)
	assert.NotEmpty(t, n.NoteID)
	assert.Equal(t, "groceries", n.Title)
	assert.Equal(t, "milk, eggs", n.Text)
	assert.Equal(t, TypeText, n.Type)
	assert.GreaterOrEqual(t, n.Timestamp, before)
	assert.LessOrEqual(t, n.Timestamp, after)
	assert.Equal(t, []string{"food", "list"}, n.Labels)
	assert.Nil(t, n.Size)
	assert.Empty(t, n.StorageKey)

	other := NewText("u1", "groceries", "milk, eggs", nil)
	assert.NotEqual(t, n.NoteID, other.NoteID, "every text note gets its own id")
}

func TestUpdatedText(t *testing.T) {
	n := UpdatedText("u1", "n1", "title", "body", nil)

	assert.Equal(t, "n1", n.NoteID)
	assert.Equal(t, TypeText, n.Type)
	assert.Nil(t, n.Size)
	assert.Empty(t, n.StorageKey)
	assert.Nil(t, n.Labels)
}

func TestNewStored(t *testing.T) {
	n := NewStored("u1", "n1", "cat.jpg", "u1/n1/cat.jpg", 1024, TypeImage, []string{"Cat", "Pet", "Cat"})

	assert.Equal(t, "cat.jpg", n.Title, "title is the uploaded file name")
	assert.Equal(t, "u1/n1/cat.jpg", n.StorageKey)
	require.NotNil(t, n.Size)
	assert.Equal(t, int64(1024), *n.Size)
	assert.Equal(t, TypeImage, n.Type)
	assert.Empty(t, n.Text)
	assert.Equal(t, []string{"Cat", "Pet"}, n.Labels)
}

func TestToSummary(t *testing.T) {
	size := int64(42)
	n := Note{
		UserID:     "u1",
		NoteID:     "n1",
		Title:      "doc.pdf",
		Timestamp:  1700000000000,
		Type:       TypeFile,
		Size:       &size,
		StorageKey: "u1/n1/doc.pdf",
	}

	s := n.ToSummary()
	assert.Equal(t, "n1", s.NoteID)
	assert.Equal(t, "doc.pdf", s.Title)
	assert.Equal(t, int64(1700000000000), s.Timestamp)
	assert.Equal(t, TypeFile, s.Type)
	assert.Equal(t, &size, s.Size)
}

func TestDedupe(t *testing.T) {
	assert.Nil(t, dedupe(nil))
	assert.Nil(t, dedupe([]string{}))
	assert.Equal(t, []string{"a", "b", "c"}, dedupe([]string{"a", "b", "a", "c", "b"}))
}
