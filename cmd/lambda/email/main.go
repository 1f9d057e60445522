package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"send-email-api/internal/handlers"
	"send-email-api/internal/logging"
	"send-email-api/pkg/lambda"
	"send-email-api/pkg/server"
)

func init() {
	// Build the container during the cold start so the first invocation does
	// not pay for it. Failures are retried per invocation.
	if _, err := server.GetConnectionManager().GetContainer(context.Background()); err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := server.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Configuration error")
		return internalError(handlers.ErrMessageServerConfig), nil
	}

	req := lambda.FromAPIGateway(event)

	fields := logrus.Fields{"api_request_id": req.RequestID}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields["aws_request_id"] = lc.AwsRequestID
	}
	ctx = logging.WithContext(ctx, logrus.WithFields(fields))

	resp, err := container.EmailHandler.HandleSendEmail(ctx, req)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Error("Unhandled error")
		return internalError(handlers.ErrMessageInternal), nil
	}

	return resp.ToAPIGateway(), nil
}

func internalError(message string) events.APIGatewayProxyResponse {
	return handlers.NewErrorResponse(http.StatusInternalServerError, message).ToAPIGateway()
}

func main() {
	awslambda.Start(handler)
}
