package dynamodb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mynotes-backend/domain/note"
	apperrors "mynotes-backend/pkg/errors"
)

func TestNoteItemMarshalling(t *testing.T) {
	t.Run("text note omits blob attributes", func(t *testing.T) {
		n := note.Note{
			UserID:    "u1",
			NoteID:    "n1",
			Title:     "groceries",
			Text:      "milk",
			Type:      note.TypeText,
			Timestamp: 1700000000000,
		}

		av, err := attributevalue.MarshalMap(toItem(n))
		require.NoError(t, err)

		assert.NotContains(t, av, "size")
		assert.NotContains(t, av, "storageKey")
		assert.NotContains(t, av, "labels")
		assert.Equal(t, &types.AttributeValueMemberS{Value: "milk"}, av["text"])
	})

	t.Run("stored note omits text and keeps labels as a string set", func(t *testing.T) {
		size := int64(1024)
		n := note.Note{
			UserID:     "u1",
			NoteID:     "n1",
			Title:      "cat.jpg",
			Type:       note.TypeImage,
			Size:       &size,
			StorageKey: "u1/n1/cat.jpg",
			Labels:     []string{"Cat", "Pet"},
			Timestamp:  1700000000000,
		}

		av, err := attributevalue.MarshalMap(toItem(n))
		require.NoError(t, err)

		assert.NotContains(t, av, "text")
		labels, ok := av["labels"].(*types.AttributeValueMemberSS)
		require.True(t, ok, "labels must persist as a string set")
		assert.ElementsMatch(t, []string{"Cat", "Pet"}, labels.Value)
	})

	t.Run("roundtrip preserves the note", func(t *testing.T) {
		size := int64(7)
		n := note.Note{
			UserID:     "u1",
			NoteID:     "n1",
			Title:      "doc.pdf",
			Type:       note.TypeFile,
			Size:       &size,
			StorageKey: "u1/n1/doc.pdf",
			Timestamp:  42,
		}

		av, err := attributevalue.MarshalMap(toItem(n))
		require.NoError(t, err)

		var item noteItem
		require.NoError(t, attributevalue.UnmarshalMap(av, &item))
		assert.Equal(t, n, fromItem(item))
	})
}

func TestCursorRoundtrip(t *testing.T) {
	lastKey := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: "u1"},
		"noteId": &types.AttributeValueMemberS{Value: "n1"},
	}

	cursor, err := encodeCursor(lastKey)
	require.NoError(t, err)
	assert.NotEmpty(t, cursor)

	startKey, err := decodeCursor(cursor)
	require.NoError(t, err)
	assert.Equal(t, lastKey, startKey)
}

func TestDecodeCursorRejectsTamperedTokens(t *testing.T) {
	for _, cursor := range []string{
		"not base64 ???",
		"bm90IGpzb24", // base64 of "not json"
		"e30",         // base64 of "{}"
	} {
		_, err := decodeCursor(cursor)
		require.Error(t, err, "cursor %q should not decode", cursor)
		assert.True(t, apperrors.IsValidation(err))
	}
}
