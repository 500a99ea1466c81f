package server

import (
	"context"
	"errors"
	"flight-parser/auth"
	"flight-parser/contract"
	"flight-parser/infrastructure/http/middleware"
	"flight-parser/observability"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the flight parser over HTTP.
type Server struct {
	log        *slog.Logger
	router     *gin.Engine
	httpServer *http.Server
	parser     contract.FlightParser
}

func NewServer(
	log *slog.Logger,
	address string,
	parser contract.FlightParser,
	tokens *auth.TokenIssuer,
	metrics *observability.Metrics,
	gatherer prometheus.Gatherer,
) *Server {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		middleware.RequestID(),
		gin.CustomRecovery(recoverPanic(log)),
		middleware.Logger(log),
		middleware.CORS(),
		middleware.Metrics(metrics),
	)

	s := &Server{
		log:    log,
		router: router,
		parser: parser,
		httpServer: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	s.setupRoutes(tokens, gatherer)
	return s
}

func (s *Server) setupRoutes(tokens *auth.TokenIssuer, gatherer prometheus.Gatherer) {
	s.router.GET("/", s.health)
	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	parse := []gin.HandlerFunc{s.parse}
	if tokens.Enabled() {
		s.log.Info("Bearer authentication enabled on /parse")
		parse = append([]gin.HandlerFunc{middleware.BearerAuth(s.log, subjectOf(tokens))}, parse...)
	}
	s.router.POST("/parse", parse...)

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no route for %s %s", c.Request.Method, c.Request.URL.Path)})
	})
	s.router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": fmt.Sprintf("method %s not allowed on %s", c.Request.Method, c.Request.URL.Path)})
	})
}

// recoverPanic turns a panic into the JSON error envelope.
func recoverPanic(log *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Error("Panic while serving request", "request_id", middleware.GetRequestID(c),
			"method", c.Request.Method, "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func subjectOf(tokens *auth.TokenIssuer) func(string) (string, error) {
	return func(token string) (string, error) {
		claims, err := tokens.Validate(token)
		if err != nil {
			return "", err
		}
		return claims.Subject, nil
	}
}

// Handler is the root handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the server stops. A graceful Shutdown returns nil.
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server", "address", s.httpServer.Addr, "at", time.Now().UTC())
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
