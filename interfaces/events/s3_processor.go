// Package events adapts blob-store notifications into finalize-upload
// calls on the note lifecycle service.
package events

import (
	"context"
	"net/url"

	"mynotes-backend/application/notes"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// S3Processor turns object-created notifications into note metadata.
type S3Processor struct {
	service *notes.Service
	logger  *zap.Logger
}

// NewS3Processor creates a new S3 notification processor.
func NewS3Processor(service *notes.Service, logger *zap.Logger) *S3Processor {
	return &S3Processor{service: service, logger: logger}
}

// HandleEvent processes each notification record independently. A record
// that fails is logged and dropped; the rest of the batch still runs.
// There is no retry and no dead-letter path, so a persistent failure
// loses that attachment's metadata.
func (p *S3Processor) HandleEvent(ctx context.Context, event events.S3Event) error {
	for _, record := range event.Records {
		// Object keys arrive URL-encoded in the notification.
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			p.logger.Error("Undecodable object key in notification",
				zap.String("rawKey", record.S3.Object.Key),
				zap.Error(err),
			)
			continue
		}

		if err := p.service.FinalizeUpload(ctx, key, record.S3.Object.Size); err != nil {
			p.logger.Error("Failed to process uploaded object",
				zap.String("key", key),
				zap.Int64("size", record.S3.Object.Size),
				zap.Error(err),
			)
			continue
		}
	}

	return nil
}
