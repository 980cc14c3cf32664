// Command refresh is the Lambda function that exchanges a refresh token for new tokens.
package main

import (
	"context"

	"github.com/kbukum/cognito-gateway/bootstrap"
	"github.com/kbukum/cognito-gateway/handler"
	"github.com/kbukum/cognito-gateway/logger"
)

func main() {
	app, err := bootstrap.Load(context.Background(), handler.NameRefresh)
	if err != nil {
		logger.NewFromEnv(handler.NameRefresh).Fatal("Failed to initialize", logger.ErrorFields("bootstrap", err))
	}
	if err := app.RunLambda(handler.NameRefresh); err != nil {
		app.Logger.Fatal("Lambda handler stopped", logger.ErrorFields("run", err))
	}
}
