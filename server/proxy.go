package server

import (
	"encoding/base64"
	stderrors "errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"

	"github.com/kbukum/cognito-gateway/errors"
	"github.com/kbukum/cognito-gateway/handler"
	"github.com/kbukum/cognito-gateway/server/middleware"
)

// LocalStage is the stage reported in proxy events built by the server.
const LocalStage = "local"

// AuthRoutes maps handler names to the paths they are served on.
var AuthRoutes = map[string]string{
	handler.NameSignUp:         "/auth/signup",
	handler.NameLogin:          "/auth/login",
	handler.NameForgotPassword: "/auth/forgot-password",
	handler.NameChangePassword: "/auth/change-password",
	handler.NameRefresh:        "/auth/refresh",
}

// MountHandlers registers every auth handler as POST on its route.
func (s *Server) MountHandlers(h *handler.Handlers) {
	for _, name := range handler.Names() {
		fn, ok := h.Lookup(name)
		if !ok {
			continue
		}
		s.engine.POST(AuthRoutes[name], Proxy(fn))
	}
}

// Proxy adapts a proxy-event handler into a Gin handler.
func Proxy(fn handler.Func) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := ProxyRequest(c)
		if err != nil {
			RespondWithError(c, err)
			return
		}
		resp, err := fn(c.Request.Context(), req)
		if err != nil {
			RespondWithError(c, err)
			return
		}
		if err := WriteProxyResponse(c, resp); err != nil {
			RespondWithError(c, err)
		}
	}
}

// ProxyRequest builds the API Gateway proxy event for the current request.
// Bodies that are not valid UTF-8 are base64 encoded.
func ProxyRequest(c *gin.Context) (events.APIGatewayProxyRequest, error) {
	var body []byte
	if c.Request.Body != nil {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if stderrors.As(err, &tooLarge) {
				return events.APIGatewayProxyRequest{}, errors.New(errors.ErrCodeBadRequest,
					"Request body too large", http.StatusRequestEntityTooLarge).WithCause(err)
			}
			return events.APIGatewayProxyRequest{}, errors.BadRequest("Unreadable request body").WithCause(err)
		}
		body = b
	}

	req := events.APIGatewayProxyRequest{
		Resource:                        c.FullPath(),
		Path:                            c.Request.URL.Path,
		HTTPMethod:                      c.Request.Method,
		Headers:                         lastValues(c.Request.Header),
		MultiValueHeaders:               c.Request.Header,
		QueryStringParameters:           lastValues(c.Request.URL.Query()),
		MultiValueQueryStringParameters: c.Request.URL.Query(),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:    c.GetHeader(middleware.HeaderRequestID),
			Stage:        LocalStage,
			ResourcePath: c.FullPath(),
			HTTPMethod:   c.Request.Method,
			Path:         c.Request.URL.Path,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
			},
		},
	}
	if utf8.Valid(body) {
		req.Body = string(body)
	} else {
		req.Body = base64.StdEncoding.EncodeToString(body)
		req.IsBase64Encoded = true
	}
	return req, nil
}

// WriteProxyResponse writes a proxy response to the client. A response
// without a status code is answered with 502.
func WriteProxyResponse(c *gin.Context, resp events.APIGatewayProxyResponse) error {
	body := []byte(resp.Body)
	if resp.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			return errors.Internal(err)
		}
		body = decoded
	}

	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			c.Writer.Header().Add(k, v)
		}
	}
	for k, v := range resp.Headers {
		c.Header(k, v)
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusBadGateway
	}
	contentType := c.Writer.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(status, contentType, body)
	return nil
}

// lastValues flattens multi-value maps the way API Gateway fills its
// single-value fields. Empty input yields nil.
func lastValues(m map[string][]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, vs := range m {
		if len(vs) > 0 {
			out[k] = vs[len(vs)-1]
		}
	}
	return out
}
