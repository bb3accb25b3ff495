package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKey(t *testing.T) {
	key := EncodeKey("u1", "n1", "cat.jpg")
	assert.Equal(t, "u1/n1/cat.jpg", key)
}

func TestDecodeKey(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		decoded, err := DecodeKey("u1/n1/cat.jpg")
		require.NoError(t, err)
		assert.Equal(t, "u1", decoded.UserID)
		assert.Equal(t, "n1", decoded.NoteID)
		assert.Equal(t, "cat.jpg", decoded.FileName)
	})

	t.Run("roundtrip", func(t *testing.T) {
		decoded, err := DecodeKey(EncodeKey("user-a", "note-b", "report.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "user-a", decoded.UserID)
		assert.Equal(t, "note-b", decoded.NoteID)
		assert.Equal(t, "report.pdf", decoded.FileName)
	})

	t.Run("malformed keys", func(t *testing.T) {
		for _, key := range []string{"", "u1", "u1/n1", "u1/n1/dir/cat.jpg"} {
			_, err := DecodeKey(key)
			assert.Error(t, err, "key %q should not decode", key)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		fileName string
		want     Type
	}{
		{"cat.jpg", TypeImage},
		{"A.JPG", TypeImage},
		{"photo.jpeg", TypeImage},
		{"icon.PNG", TypeImage},
		{"anim.gif", TypeImage},
		{"scan.bmp", TypeImage},
		{"a.jpgx", TypeFile},
		{"report.pdf", TypeFile},
		{"archive.tar.gz", TypeFile},
		{"notes.txt.png", TypeImage},
		{"noextension", TypeFile},
		{"trailingdot.", TypeFile},
		{".hidden", TypeFile},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.fileName))
		})
	}
}
