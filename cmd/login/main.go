// Command login is the Lambda function that authenticates users with username and password.
package main

import (
	"context"

	"github.com/kbukum/cognito-gateway/bootstrap"
	"github.com/kbukum/cognito-gateway/handler"
	"github.com/kbukum/cognito-gateway/logger"
)

func main() {
	app, err := bootstrap.Load(context.Background(), handler.NameLogin)
	if err != nil {
		logger.NewFromEnv(handler.NameLogin).Fatal("Failed to initialize", logger.ErrorFields("bootstrap", err))
	}
	if err := app.RunLambda(handler.NameLogin); err != nil {
		app.Logger.Fatal("Lambda handler stopped", logger.ErrorFields("run", err))
	}
}
