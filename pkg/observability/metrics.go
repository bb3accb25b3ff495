// Package observability records operational telemetry. Metrics are
// fire-and-forget: a failed publish is logged, never surfaced.
package observability

import (
	"context"

	"mynotes-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// cloudWatchAPI is the subset of the CloudWatch client metrics use.
type cloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics implements ports.OperationMetrics on CloudWatch
type Metrics struct {
	client    cloudWatchAPI
	namespace string
	logger    *zap.Logger
}

// NewMetrics creates a CloudWatch metrics recorder.
func NewMetrics(client *cloudwatch.Client, namespace string, logger *zap.Logger) ports.OperationMetrics {
	return &Metrics{client: client, namespace: namespace, logger: logger}
}

// RecordOperation counts one coordinator operation outcome.
func (m *Metrics) RecordOperation(ctx context.Context, operation string, success bool) {
	outcome := "Success"
	if !success {
		outcome = "Failure"
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("OperationCount"),
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
				Dimensions: []types.Dimension{
					{Name: aws.String("Operation"), Value: aws.String(operation)},
					{Name: aws.String("Outcome"), Value: aws.String(outcome)},
				},
			},
		},
	})
	if err != nil {
		m.logger.Debug("Failed to record metric",
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
}
