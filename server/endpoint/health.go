package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/cognito-gateway/observability"
	"github.com/kbukum/cognito-gateway/version"
)

// Health returns a handler that reports service health including component
// statuses. A down component answers 503.
func Health(serviceName string, checkers ...observability.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		sh := observability.Check(c.Request.Context(), serviceName, version.GetShortVersion(), checkers...)

		status := http.StatusOK
		if sh.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, sh)
	}
}
