// Package version reports the build of the running binary.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/cognito-gateway/version.Version=1.4.0" ./cmd/login
//
// Values left empty are filled from the module's VCS build settings.
package version
