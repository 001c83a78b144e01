// Package web serves the browser dashboard and the JSON API.
package web

import (
	"context"
	"crypto/tls"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/newslens/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Options configures the HTTP server.
type Options struct {
	Addr           string
	GinMode        string
	TLSConfig      *tls.Config
	CORSOrigins    []string
	RequestTimeout time.Duration
	ShutdownGrace  time.Duration
}

// Server is the dashboard HTTP server.
type Server struct {
	analyzer service.Analyzer
	logger   *slog.Logger
	router   *gin.Engine
	opts     Options
}

// NewServer builds the router over analyzer.
func NewServer(analyzer service.Analyzer, opts Options, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	if opts.ShutdownGrace == 0 {
		opts.ShutdownGrace = 5 * time.Second
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"percent": formatPercent,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	router.Use(cors.New(corsCfg))
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		analyzer: analyzer,
		logger:   logger,
		router:   router,
		opts:     opts,
	}
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/analyze", s.handleAnalyzeForm)
	s.router.GET("/model", s.handleModelTab)
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.POST("/analyze", s.handleAPIAnalyze)
		api.GET("/model", s.handleAPIModel)
	}
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		TLSConfig:         s.opts.TLSConfig,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting dashboard server", "addr", s.opts.Addr, "tls", srv.TLSConfig != nil)
		var err error
		if srv.TLSConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down dashboard server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Dashboard server exited")
	return nil
}
