// Command signup is the Lambda function that registers users, falling back to the existing account.
package main

import (
	"context"

	"github.com/kbukum/cognito-gateway/bootstrap"
	"github.com/kbukum/cognito-gateway/handler"
	"github.com/kbukum/cognito-gateway/logger"
)

func main() {
	app, err := bootstrap.Load(context.Background(), handler.NameSignUp)
	if err != nil {
		logger.NewFromEnv(handler.NameSignUp).Fatal("Failed to initialize", logger.ErrorFields("bootstrap", err))
	}
	if err := app.RunLambda(handler.NameSignUp); err != nil {
		app.Logger.Fatal("Lambda handler stopped", logger.ErrorFields("run", err))
	}
}
