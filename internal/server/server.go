// Package server assembles the echo application: HTML pages under the site
// base path, the JSON API, the OpenAPI document, the MCP transport and the
// shared middleware stack.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"virtual-team-planner/backend/internal/api"
	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/config"
	"virtual-team-planner/backend/internal/logging"
	"virtual-team-planner/backend/internal/mcp"
	"virtual-team-planner/backend/internal/observability"
	"virtual-team-planner/backend/internal/pages"
	"virtual-team-planner/backend/internal/tls"
	"virtual-team-planner/backend/internal/views"
)

const serviceName = "virtual-team-planner"

// Options are the dependencies of a Server. Logger and Metrics default to
// no-op implementations.
type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Logger  *logging.Logger
	Metrics *observability.Metrics
	Version string
}

// Server is the assembled HTTP application.
type Server struct {
	cfg    *config.Config
	echo   *echo.Echo
	pages  *pages.Handler
	mcp    *mcp.SSETransport
	logger *logging.Logger
}

// New builds the echo application for opts.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if opts.Catalog == nil {
		return nil, errors.New("server: catalog is required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewNop()
	}
	cfg := opts.Config
	base := cfg.Site.BasePath

	renderer, err := views.New(views.Site{
		Title:     cfg.Site.Title,
		BasePath:  base,
		SourceURL: cfg.Site.SourceURL,
	})
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	s := &Server{
		cfg:    cfg,
		echo:   e,
		pages:  pages.NewHandler(opts.Catalog, base, opts.Metrics, opts.Logger),
		logger: opts.Logger,
	}
	e.HTTPErrorHandler = s.handleError

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(observability.Tracing(serviceName))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	if base != "" {
		e.GET("/", func(c echo.Context) error {
			return c.Redirect(http.StatusFound, base)
		})
	}

	apiServer := api.NewServer(opts.Catalog, opts.Metrics, opts.Version)
	e.GET(base+"/healthz", apiServer.HandleHealth)
	api.RegisterHandlers(e.Group(base+"/api/v1"), apiServer)
	e.GET(base+"/api/openapi.yaml", api.SpecHandler(base))
	e.GET(base+"/api/docs", api.SwaggerHandler(base+"/api/openapi.yaml"))
	// Keeps unknown API paths away from the page catch-all.
	apiNotFound := func(echo.Context) error { return echo.ErrNotFound }
	e.Any(base+"/api", apiNotFound)
	e.Any(base+"/api/*", apiNotFound)

	if cfg.MCP.Enabled {
		mcpServer := mcp.NewServer(opts.Catalog, opts.Metrics, opts.Version)
		mux := http.NewServeMux()
		s.mcp = mcp.MountHTTPHandlers(mux, mcpServer.GetMCPServer(), base)
		e.Any(base+"/mcp", echo.WrapHandler(mux))
		e.Any(base+"/mcp/*", echo.WrapHandler(mux))
	}

	s.pages.Register(e.Group(base))

	return s, nil
}

// Handler returns the application as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) isAPI(path string) bool {
	prefix := s.cfg.Site.BasePath + "/api"
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// handleError answers API paths with problem JSON and everything else with
// the site's 404 and 500 pages.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", c.Request().URL.Path,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
	}

	var renderErr error
	switch {
	case s.isAPI(c.Request().URL.Path):
		detail := http.StatusText(code)
		if he != nil && code < http.StatusInternalServerError {
			detail = fmt.Sprint(he.Message)
		}
		renderErr = api.WriteProblem(c, code, detail)
	case code == http.StatusNotFound:
		renderErr = s.pages.NotFound(c)
	case code >= http.StatusInternalServerError:
		renderErr = s.pages.Error(c)
	default:
		s.echo.DefaultHTTPErrorHandler(err, c)
	}
	if renderErr != nil {
		s.logger.Error("error page failed", "error", renderErr)
		if !c.Response().Committed {
			_ = c.String(code, http.StatusText(code))
		}
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured shutdown timeout. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	cfg := s.cfg
	srv := &http.Server{
		Handler:      s.echo,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	if s.mcp != nil {
		// Open MCP streams only end when the transport shuts down.
		srv.RegisterOnShutdown(func() {
			if err := s.mcp.Shutdown(context.Background()); err != nil {
				s.logger.Error("MCP transport shutdown error", "error", err)
			}
		})
	}

	if cfg.TLS.Enable {
		created, err := tls.EnsureDevCert(cfg.TLS.CertFile, cfg.TLS.KeyFile, cfg.TLS.Hostnames)
		if err != nil {
			ln.Close()
			return fmt.Errorf("prepare TLS certificate: %w", err)
		}
		if created {
			s.logger.Warn("Generated self-signed certificate", "cert", cfg.TLS.CertFile)
		}
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting",
			"address", ln.Addr().String(),
			"tls", cfg.TLS.Enable,
			"base_path", cfg.Site.BasePath,
		)
		if cfg.TLS.Enable {
			serverErrors <- srv.ServeTLS(ln, cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			serverErrors <- srv.Serve(ln)
		}
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server shutdown error", "error", err)
		if err := srv.Close(); err != nil {
			s.logger.Error("Server close error", "error", err)
		}
		return err
	}
	if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("Server stopped gracefully")
	return nil
}
