// Package rekognition derives labels for image attachments via label
// detection over the stored object.
package rekognition

import (
	"context"
	"fmt"

	"mynotes-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"go.uber.org/zap"
)

const (
	maxLabels     = 10
	minConfidence = 75.0
)

// rekognitionAPI is the subset of the Rekognition client this analyzer uses.
type rekognitionAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// ImageAnalyzer implements ports.ImageAnalyzer using Amazon Rekognition
type ImageAnalyzer struct {
	client rekognitionAPI
	bucket string
	logger *zap.Logger
}

// NewImageAnalyzer creates a Rekognition-backed image analyzer reading
// from the given bucket.
func NewImageAnalyzer(client *rekognition.Client, bucket string, logger *zap.Logger) ports.ImageAnalyzer {
	return &ImageAnalyzer{client: client, bucket: bucket, logger: logger}
}

// AnalyzeImage runs label detection against the stored image, requesting
// at most 10 labels with confidence of at least 75%, and returns the label
// names in the order the backend reported them.
func (a *ImageAnalyzer) AnalyzeImage(ctx context.Context, storageKey string) ([]string, error) {
	resp, err := a.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(a.bucket),
				Name:   aws.String(storageKey),
			},
		},
		MaxLabels:     aws.Int32(maxLabels),
		MinConfidence: aws.Float32(minConfidence),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect labels for %s: %w", storageKey, err)
	}

	labels := make([]string, 0, len(resp.Labels))
	for _, label := range resp.Labels {
		labels = append(labels, aws.ToString(label.Name))
	}

	a.logger.Debug("Image labels detected",
		zap.String("storageKey", storageKey),
		zap.Int("count", len(labels)),
	)

	return labels, nil
}
