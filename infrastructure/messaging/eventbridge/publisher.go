// Package eventbridge publishes note lifecycle events for downstream
// consumers. Publishing is best-effort; the coordinator never fails a
// request over a lost event.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"mynotes-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

const eventSource = "mynotes.notes"

// eventBridgeAPI is the subset of the EventBridge client this publisher uses.
type eventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Publisher implements ports.EventPublisher using EventBridge
type Publisher struct {
	client  eventBridgeAPI
	busName string
	logger  *zap.Logger
}

// NewPublisher creates an EventBridge publisher for the given bus.
func NewPublisher(client *eventbridge.Client, busName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{client: client, busName: busName, logger: logger}
}

// Publish emits one lifecycle event entry.
func (p *Publisher) Publish(ctx context.Context, event ports.NoteEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	entry := types.PutEventsRequestEntry{
		Source:     aws.String(eventSource),
		DetailType: aws.String(event.Action),
		Detail:     aws.String(string(detail)),
	}
	if p.busName != "" {
		entry.EventBusName = aws.String(p.busName)
	}

	resp, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{entry},
	})
	if err != nil {
		return fmt.Errorf("failed to put event: %w", err)
	}
	if resp.FailedEntryCount > 0 {
		return fmt.Errorf("event entry rejected by bus")
	}

	p.logger.Debug("Event published",
		zap.String("action", event.Action),
		zap.String("noteID", event.NoteID),
	)

	return nil
}
