// Package dynamodb persists note metadata in a table partitioned by
// userId with noteId as the sort key.
package dynamodb

import (
	"context"
	"fmt"

	"mynotes-backend/application/ports"
	"mynotes-backend/domain/note"
	apperrors "mynotes-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// NoteRepository implements ports.NoteRepository using DynamoDB
type NoteRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.NoteRepository {
	return &NoteRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// noteItem represents the DynamoDB item structure for a note. Optional
// attributes are omitted entirely, never written as null or empty; labels
// persist as a string set and are dropped when empty.
type noteItem struct {
	UserID     string   `dynamodbav:"userId"`
	NoteID     string   `dynamodbav:"noteId"`
	Title      string   `dynamodbav:"title"`
	Text       string   `dynamodbav:"text,omitempty"`
	Type       string   `dynamodbav:"type"`
	Size       *int64   `dynamodbav:"size,omitempty"`
	StorageKey string   `dynamodbav:"storageKey,omitempty"`
	Labels     []string `dynamodbav:"labels,stringset,omitempty"`
	Timestamp  int64    `dynamodbav:"timestamp"`
}

func toItem(n note.Note) noteItem {
	return noteItem{
		UserID:     n.UserID,
		NoteID:     n.NoteID,
		Title:      n.Title,
		Text:       n.Text,
		Type:       string(n.Type),
		Size:       n.Size,
		StorageKey: n.StorageKey,
		Labels:     n.Labels,
		Timestamp:  n.Timestamp,
	}
}

func fromItem(item noteItem) note.Note {
	return note.Note{
		UserID:     item.UserID,
		NoteID:     item.NoteID,
		Title:      item.Title,
		Text:       item.Text,
		Type:       note.Type(item.Type),
		Size:       item.Size,
		StorageKey: item.StorageKey,
		Labels:     item.Labels,
		Timestamp:  item.Timestamp,
	}
}

// Put writes the note unconditionally, replacing any existing item with
// the same (userId, noteId).
func (r *NoteRepository) Put(ctx context.Context, n note.Note) error {
	av, err := attributevalue.MarshalMap(toItem(n))
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to put note",
			zap.Error(err),
			zap.String("userID", n.UserID),
			zap.String("noteID", n.NoteID),
		)
		return fmt.Errorf("failed to put note: %w", err)
	}

	r.logger.Debug("Note persisted",
		zap.String("userID", n.UserID),
		zap.String("noteID", n.NoteID),
		zap.String("type", string(n.Type)),
	)

	return nil
}

// Get retrieves a note by its composite key.
func (r *NoteRepository) Get(ctx context.Context, userID, noteID string) (note.Note, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
			"noteId": &types.AttributeValueMemberS{Value: noteID},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return note.Note{}, fmt.Errorf("failed to get note: %w", err)
	}

	if len(result.Item) == 0 {
		return note.Note{}, apperrors.NewNotFoundError("note " + noteID)
	}

	var item noteItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return note.Note{}, fmt.Errorf("failed to unmarshal note: %w", err)
	}

	return fromItem(item), nil
}

// Delete removes a note and returns its prior attributes. Callers need
// them to decide whether a cascaded blob delete is required.
func (r *NoteRepository) Delete(ctx context.Context, userID, noteID string) (note.Note, error) {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
			"noteId": &types.AttributeValueMemberS{Value: noteID},
		},
		ReturnValues: types.ReturnValueAllOld,
	}

	result, err := r.client.DeleteItem(ctx, input)
	if err != nil {
		return note.Note{}, fmt.Errorf("failed to delete note: %w", err)
	}

	if len(result.Attributes) == 0 {
		return note.Note{}, apperrors.NewNotFoundError("note " + noteID)
	}

	var item noteItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &item); err != nil {
		return note.Note{}, fmt.Errorf("failed to unmarshal deleted note: %w", err)
	}

	r.logger.Debug("Note removed",
		zap.String("userID", userID),
		zap.String("noteID", noteID),
	)

	return fromItem(item), nil
}

// QueryByUser returns one page of the user's notes, bounded by the
// table's default page size. The returned cursor is opaque and must be
// passed back verbatim to continue.
func (r *NoteRepository) QueryByUser(ctx context.Context, userID, cursor string) ([]note.Summary, string, error) {
	keyCond := expression.Key("userId").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if cursor != "" {
		startKey, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		input.ExclusiveStartKey = startKey
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		r.logger.Error("Failed to query notes",
			zap.Error(err),
			zap.String("userID", userID),
		)
		return nil, "", fmt.Errorf("failed to query notes: %w", err)
	}

	summaries := make([]note.Summary, 0, len(result.Items))
	for _, raw := range result.Items {
		var item noteItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal note item, skipping", zap.Error(err))
			continue
		}
		summaries = append(summaries, fromItem(item).ToSummary())
	}

	next := ""
	if len(result.LastEvaluatedKey) > 0 {
		next, err = encodeCursor(result.LastEvaluatedKey)
		if err != nil {
			return nil, "", err
		}
	}

	return summaries, next, nil
}
