// Command forgot-password is the Lambda function that starts the forgot-password flow.
package main

import (
	"context"

	"github.com/kbukum/cognito-gateway/bootstrap"
	"github.com/kbukum/cognito-gateway/handler"
	"github.com/kbukum/cognito-gateway/logger"
)

func main() {
	app, err := bootstrap.Load(context.Background(), handler.NameForgotPassword)
	if err != nil {
		logger.NewFromEnv(handler.NameForgotPassword).Fatal("Failed to initialize", logger.ErrorFields("bootstrap", err))
	}
	if err := app.RunLambda(handler.NameForgotPassword); err != nil {
		app.Logger.Fatal("Lambda handler stopped", logger.ErrorFields("run", err))
	}
}
