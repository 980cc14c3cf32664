// Command change-password is the Lambda function that changes a signed-in user's password.
package main

import (
	"context"

	"github.com/kbukum/cognito-gateway/bootstrap"
	"github.com/kbukum/cognito-gateway/handler"
	"github.com/kbukum/cognito-gateway/logger"
)

func main() {
	app, err := bootstrap.Load(context.Background(), handler.NameChangePassword)
	if err != nil {
		logger.NewFromEnv(handler.NameChangePassword).Fatal("Failed to initialize", logger.ErrorFields("bootstrap", err))
	}
	if err := app.RunLambda(handler.NameChangePassword); err != nil {
		app.Logger.Fatal("Lambda handler stopped", logger.ErrorFields("run", err))
	}
}
