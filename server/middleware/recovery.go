package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/kbukum/cognito-gateway/errors"
	"github.com/kbukum/cognito-gateway/logger"
)

// Recovery returns middleware that recovers from panics, logs the stack and
// answers 500 with the {Error, Reference} body.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				reference := r.Header.Get(HeaderRequestID)
				log.Error("Panic recovered", map[string]interface{}{
					logger.FieldError:     fmt.Sprintf("%v", rec),
					logger.FieldRequestID: reference,
					"stack":               string(debug.Stack()),
					"path":                r.URL.Path,
					"method":              r.Method,
				})

				body, _ := json.Marshal(errors.Internal(nil).ToResponse(reference))
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
