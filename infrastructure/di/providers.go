package di

import (
	"context"

	"mynotes-backend/application/notes"
	"mynotes-backend/application/ports"
	"mynotes-backend/infrastructure/config"
	"mynotes-backend/infrastructure/enrichment/comprehend"
	"mynotes-backend/infrastructure/enrichment/rekognition"
	"mynotes-backend/infrastructure/messaging/eventbridge"
	dynamodbrepo "mynotes-backend/infrastructure/persistence/dynamodb"
	s3store "mynotes-backend/infrastructure/storage/s3"
	"mynotes-backend/interfaces/http/rest"
	"mynotes-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awscomprehend "github.com/aws/aws-sdk-go-v2/service/comprehend"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	awsrekognition "github.com/aws/aws-sdk-go-v2/service/rekognition"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}

	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideS3Client creates an S3 client
func ProvideS3Client(awsCfg aws.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg)
}

// ProvideComprehendClient creates a Comprehend client
func ProvideComprehendClient(awsCfg aws.Config) *awscomprehend.Client {
	return awscomprehend.NewFromConfig(awsCfg)
}

// ProvideRekognitionClient creates a Rekognition client
func ProvideRekognitionClient(awsCfg aws.Config) *awsrekognition.Client {
	return awsrekognition.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideNoteRepository creates the note metadata repository
func ProvideNoteRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.NoteRepository {
	return dynamodbrepo.NewNoteRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideBlobStore creates the attachment blob store
func ProvideBlobStore(client *awss3.Client, cfg *config.Config, logger *zap.Logger) ports.BlobStore {
	return s3store.NewBlobStore(client, cfg.BucketName, cfg.PresignExpiry, logger)
}

// ProvideTextAnalyzer creates the text enrichment adapter
func ProvideTextAnalyzer(client *awscomprehend.Client, logger *zap.Logger) ports.TextAnalyzer {
	return comprehend.NewTextAnalyzer(client, logger)
}

// ProvideImageAnalyzer creates the image enrichment adapter
func ProvideImageAnalyzer(client *awsrekognition.Client, cfg *config.Config, logger *zap.Logger) ports.ImageAnalyzer {
	return rekognition.NewImageAnalyzer(client, cfg.BucketName, logger)
}

// ProvideEventPublisher creates the lifecycle event publisher. Without a
// configured bus, events are disabled.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return nil
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the operation metrics recorder when enabled.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) ports.OperationMetrics {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewMetrics(client, cfg.MetricsNamespace, logger)
}

// ProvideNoteService creates the note lifecycle service
func ProvideNoteService(
	repo ports.NoteRepository,
	blobs ports.BlobStore,
	textAnalyzer ports.TextAnalyzer,
	imageAnalyzer ports.ImageAnalyzer,
	events ports.EventPublisher,
	metrics ports.OperationMetrics,
	logger *zap.Logger,
) *notes.Service {
	return notes.NewService(repo, blobs, textAnalyzer, imageAnalyzer, events, metrics, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(cfg *config.Config, service *notes.Service, logger *zap.Logger) *rest.Router {
	return rest.NewRouter(cfg, service, logger)
}
