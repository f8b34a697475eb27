package server

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/grachmannico95/hexboard-api/internal/config"
	"github.com/grachmannico95/hexboard-api/internal/handler"
	"github.com/grachmannico95/hexboard-api/internal/middleware"
	"github.com/grachmannico95/hexboard-api/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

var ErrStaticDirNotFound = errors.New("static directory not found")

type Server struct {
	echo        *echo.Echo
	cfg         *config.Config
	logger      *logger.Logger
	timeHandler *handler.TimeHandler
}

// New builds the HTTP server. The static mount is decided here, once, from cfg.Static.
func New(
	cfg *config.Config,
	log *logger.Logger,
	timeHandler *handler.TimeHandler,
) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:        e,
		cfg:         cfg,
		logger:      log,
		timeHandler: timeHandler,
	}

	s.setupMiddleware()
	if err := s.setupStatic(); err != nil {
		return nil, err
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
		"static_enabled", s.cfg.Static.Enabled,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	api.GET("/get-time", s.timeHandler.GetTime)
}

// setupStatic mounts the prebuilt web client at the root. The mount is a
// wildcard route, so registered routes such as /api/get-time take precedence.
func (s *Server) setupStatic() error {
	if !s.cfg.Static.Enabled {
		return nil
	}

	dir := s.cfg.Static.Dir
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStaticDirNotFound, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrStaticDirNotFound, dir)
	}

	// Directory requests are answered with their index.html.
	s.echo.Static("/", dir)

	s.logger.Info(context.Background(), "Serving static files",
		"dir", dir,
	)

	return nil
}
