package dynamodb

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	apperrors "mynotes-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// cursorKey is the serializable form of a query continuation point. The
// table key is (userId, noteId), so that is all a cursor carries.
type cursorKey struct {
	UserID string `json:"userId"`
	NoteID string `json:"noteId"`
}

// encodeCursor turns a LastEvaluatedKey into an opaque token.
func encodeCursor(lastKey map[string]types.AttributeValue) (string, error) {
	var key cursorKey
	if err := attributevalue.UnmarshalMap(lastKey, &key); err != nil {
		return "", fmt.Errorf("failed to unmarshal continuation key: %w", err)
	}

	raw, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// decodeCursor turns an opaque token back into an ExclusiveStartKey.
// A token the client tampered with is an invalid request, not a server
// fault.
func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, apperrors.NewValidationError("malformed cursor")
	}

	var key cursorKey
	if err := json.Unmarshal(raw, &key); err != nil {
		return nil, apperrors.NewValidationError("malformed cursor")
	}
	if key.UserID == "" || key.NoteID == "" {
		return nil, apperrors.NewValidationError("malformed cursor")
	}

	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: key.UserID},
		"noteId": &types.AttributeValueMemberS{Value: key.NoteID},
	}, nil
}
