package main

import (
	"context"
	"log"

	"mynotes-backend/infrastructure/config"
	"mynotes-backend/infrastructure/di"
	"mynotes-backend/interfaces/events"

	"github.com/aws/aws-lambda-go/lambda"
)

var processor *events.S3Processor

// init runs during cold start
func init() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	processor = events.NewS3Processor(container.NoteService, container.Logger)
}

// main is the entry point for the object-created Lambda function
func main() {
	lambda.Start(processor.HandleEvent)
}
