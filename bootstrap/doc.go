// Package bootstrap wires a cognito-gateway binary from its configuration.
//
// It loads the typed Config, initializes logging and telemetry, builds the
// Cognito client and the handlers, then runs either one handler on the
// Lambda runtime or all of them behind the local HTTP server.
//
// # Lambda
//
//	func main() {
//	    app, err := bootstrap.Load(context.Background(), "login")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    app.RunLambda(handler.NameLogin)
//	}
//
// # Local server
//
//	app, _ := bootstrap.Load(ctx, "gateway")
//	if err := app.RunServer(ctx); err != nil {
//	    log.Fatal(err)
//	}
package bootstrap
