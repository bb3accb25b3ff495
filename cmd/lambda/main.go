package main

import (
	"context"
	"log"
	"time"

	"mynotes-backend/infrastructure/config"
	"mynotes-backend/infrastructure/di"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"go.uber.org/zap"
)

// Lambda lifecycle state, initialized once per cold start
var (
	chiLambda *chiadapter.ChiLambda
	container *di.Container
)

// init runs during cold start
func init() {
	start := time.Now()
	log.Println("Lambda cold start initiated")

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	chiLambda = chiadapter.New(container.Router.Setup())

	log.Printf("Lambda cold start completed in %v", time.Since(start))
}

// Handler is the Lambda function handler. The gateway authorizer has
// already verified the caller's token; its claims travel in the request
// context, never in client-controlled headers. The verified identity is
// re-issued as a header for the in-process router, after discarding any
// identity header the client may have sent.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.Headers == nil {
		req.Headers = make(map[string]string)
	}
	delete(req.Headers, "X-User-ID")
	delete(req.Headers, "x-user-id")

	if userID := authorizerUserID(req); userID != "" {
		req.Headers["X-User-ID"] = userID
	} else {
		container.Logger.Warn("Request without authorizer claims",
			zap.String("path", req.Path),
			zap.String("method", req.HTTPMethod),
		)
	}

	return chiLambda.ProxyWithContext(ctx, req)
}

// authorizerUserID extracts the verified user id from the gateway
// authorizer context.
func authorizerUserID(req events.APIGatewayProxyRequest) string {
	claims, ok := req.RequestContext.Authorizer["claims"].(map[string]interface{})
	if !ok || len(claims) == 0 {
		return ""
	}

	if username, ok := claims["cognito:username"].(string); ok && username != "" {
		return username
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub
	}
	return ""
}

// main is the entry point for the Lambda function
func main() {
	lambda.Start(Handler)
}
