// Package api is the HTTP surface over the relationship store: routing,
// request decoding, and the mapping of store errors onto status codes.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ensgraph/internal/config"
	"ensgraph/internal/logger"
	"ensgraph/internal/store"
)

type Server struct {
	echo *echo.Echo
	cfg  *config.Config
	log  *slog.Logger
}

func NewServer(cfg *config.Config, st store.Store, log *slog.Logger) *Server {
	log = log.With(logger.Scope("api"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(log)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		}),
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: func(c echo.Context) bool {
				return c.Request().URL.Path == "/health"
			},
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogError:     true,
			LogMethod:    true,
			LogRequestID: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				attrs := []any{
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
					slog.String("request_id", v.RequestID),
				}
				if v.Error != nil {
					attrs = append(attrs, logger.Error(v.Error))
					log.Error("request failed", attrs...)
				} else {
					log.Info("request", attrs...)
				}
				return nil
			},
		}),
		middleware.RecoverWithConfig(middleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				log.Error("panic recovered",
					logger.Error(err),
					slog.String("stack", string(stack)),
				)
				return nil
			},
		}),
	)

	h := newHandler(st)
	registerRoutes(e, h)

	return &Server{echo: e, cfg: cfg, log: log}
}

// Start serves HTTP until ctx is canceled, then drains within the
// configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Address, s.cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", slog.String("address", addr))
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("starting server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

func registerRoutes(e *echo.Echo, h *handler) {
	e.GET("/health", h.Health)
	e.GET("/api/relationships", h.List)
	e.GET("/api/relationships/:ens_name", h.GetByName)
	e.POST("/api/relationships", h.Create)
	e.DELETE("/api/relationships/delete-by-names", h.DeleteByNamesQuery)
	e.DELETE("/api/relationships/by-names", h.DeleteByNames)
	e.DELETE("/api/relationships/:id", h.DeleteByID)
}
