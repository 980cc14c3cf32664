package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/kbukum/cognito-gateway/logger"
	"github.com/kbukum/cognito-gateway/observability"
	"github.com/kbukum/cognito-gateway/server/endpoint"
	"github.com/kbukum/cognito-gateway/server/middleware"
)

// Route describes one registered route.
type Route struct {
	Method string
	Path   string
}

// Server is the local HTTP server backed by Gin.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	h2s        *http2.Server
	handler    http.Handler
	config     Config
	log        *logger.Logger
}

// New creates a new Server. No middleware is applied until ApplyMiddleware.
func New(cfg Config, log *logger.Logger) *Server {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) { RespondNotFound(c) })
	engine.NoMethod(func(c *gin.Context) { RespondMethodNotAllowed(c) })

	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}

	s := &Server{
		engine: engine,
		h2s:    h2s,
		config: cfg,
		log:    log.WithComponent("server"),
	}
	s.handler = h2c.NewHandler(engine, h2s)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ApplyMiddleware wraps the engine with the standard stack: recovery,
// request ID, CORS, body-size limit and request logging.
func (s *Server) ApplyMiddleware() {
	chain := middleware.Chain(
		middleware.Recovery(s.log),
		middleware.RequestID(),
		middleware.CORS(&s.config.CORS),
		middleware.BodySizeLimit(s.config.MaxBodyBytes),
		middleware.RequestLogger(s.log),
	)
	s.handler = h2c.NewHandler(chain(s.engine), s.h2s)
}

// RegisterDefaultEndpoints registers GET /health and GET /version.
func (s *Server) RegisterDefaultEndpoints(serviceName string, checkers ...observability.HealthChecker) {
	s.engine.GET("/health", endpoint.Health(serviceName, checkers...))
	s.engine.GET("/version", endpoint.Version())
}

// Routes returns the registered routes sorted by path, then method.
func (s *Server) Routes() []Route {
	info := s.engine.Routes()
	routes := make([]Route, 0, len(info))
	for _, r := range info {
		routes = append(routes, Route{Method: r.Method, Path: r.Path})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

// Start binds the port and begins serving. It returns once the listener is
// bound; serving continues in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer.Handler = s.handler

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", map[string]interface{}{
				logger.FieldError: err.Error(),
			})
		}
	}()

	s.log.Info("HTTP server started", map[string]interface{}{
		"addr": listener.Addr().String(),
	})
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
