package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/cognito-gateway/errors"
	"github.com/kbukum/cognito-gateway/response"
	"github.com/kbukum/cognito-gateway/server/middleware"
)

// RespondWithError writes err as the {Error, Reference} body. The status is
// taken from the *errors.AppError in err's chain, else 500.
func RespondWithError(c *gin.Context, err error) {
	appErr := errors.Wrap(err)
	if appErr == nil {
		appErr = errors.Internal(nil)
	}
	for k, v := range response.Headers() {
		c.Header(k, v)
	}
	c.AbortWithStatusJSON(appErr.Status(), appErr.ToResponse(c.GetHeader(middleware.HeaderRequestID)))
}

// RespondNotFound answers requests for unknown routes.
func RespondNotFound(c *gin.Context) {
	RespondWithError(c, errors.NotFound(c.Request.Method+" "+c.Request.URL.Path))
}

// RespondMethodNotAllowed answers requests whose path exists under another
// method.
func RespondMethodNotAllowed(c *gin.Context) {
	RespondWithError(c, errors.New("METHOD_NOT_ALLOWED", "Method Not Allowed.", http.StatusMethodNotAllowed))
}
