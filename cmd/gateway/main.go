// Command gateway serves every auth handler over plain HTTP for local
// development, translating requests into API Gateway proxy events.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/cognito-gateway/bootstrap"
	"github.com/kbukum/cognito-gateway/logger"
)

const serviceName = "gateway"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Load(ctx, serviceName)
	if err != nil {
		logger.NewFromEnv(serviceName).Fatal("Failed to initialize", logger.ErrorFields("bootstrap", err))
	}
	if err := app.RunServer(ctx); err != nil {
		app.Logger.Fatal("Server stopped", logger.ErrorFields("serve", err))
	}
}
