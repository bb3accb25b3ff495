package note

import (
	"strings"

	apperrors "mynotes-backend/pkg/errors"
)

// Storage keys are compound: userId/noteId/fileName. The segments must not
// themselves contain the separator; RequestUpload rejects offending file
// names before a key is ever composed.

const keySeparator = "/"

// imageExtensions are the file extensions classified as IMAGE. Matching is
// case-insensitive on the whole trailing extension.
var imageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"bmp":  {},
}

// EncodeKey composes the blob-store key for an attachment.
func EncodeKey(userID, noteID, fileName string) string {
	return userID + keySeparator + noteID + keySeparator + fileName
}

// DecodedKey holds the three segments of a compound storage key.
type DecodedKey struct {
	UserID   string
	NoteID   string
	FileName string
}

// DecodeKey splits a compound storage key into its segments. A key with
// anything other than exactly three segments is malformed.
func DecodeKey(key string) (DecodedKey, error) {
	parts := strings.Split(key, keySeparator)
	if len(parts) != 3 {
		return DecodedKey{}, apperrors.NewNotFoundError("note for key " + key)
	}
	return DecodedKey{UserID: parts[0], NoteID: parts[1], FileName: parts[2]}, nil
}

// Classify derives the note type from an uploaded file name. Names ending
// in a known image extension are IMAGE, everything else is FILE.
// Directory-like prefixes in the name are tolerated.
func Classify(fileName string) Type {
	idx := strings.LastIndexByte(fileName, '.')
	if idx < 0 || idx == len(fileName)-1 {
		return TypeFile
	}
	ext := strings.ToLower(fileName[idx+1:])
	if _, ok := imageExtensions[ext]; ok {
		return TypeImage
	}
	return TypeFile
}
