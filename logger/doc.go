// Package logger provides structured logging on top of zerolog.
//
// Lambda functions log JSON to stdout so records land in CloudWatch as
// structured events; the local gateway defaults to the console format.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("cognito")
//	log.Info("sign up accepted", logger.Fields("request_id", id))
package logger
