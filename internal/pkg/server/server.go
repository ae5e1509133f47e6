package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peacelink/peacelink/internal/pkg/logger"
)

const drainTimeout = 30 * time.Second

// Server runs an Echo instance and coordinates shutdown of its backing
// resources when the process receives an interrupt or SIGTERM.
type Server struct {
	echo     *echo.Echo
	log      *logger.ZapLogger
	port     int
	cleanups []func(context.Context) error
}

func New(e *echo.Echo, log *logger.ZapLogger, port int) *Server {
	return &Server{echo: e, log: log, port: port}
}

// OnShutdown registers a cleanup to run after the HTTP listener drains.
// Cleanups run in registration order; a failing cleanup is logged and
// does not stop the rest.
func (s *Server) OnShutdown(fn func(context.Context) error) {
	s.cleanups = append(s.cleanups, fn)
}

// Run serves until a termination signal arrives, then drains in-flight
// requests and runs the registered cleanups.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.log.Info("listening", logger.String("address", addr))
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.log.Error("server exited", logger.Err(err))
		return err
	case sig := <-quit:
		s.log.Info("shutdown signal received", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.log.Error("listener drain failed", logger.Err(err))
		return err
	}

	for _, fn := range s.cleanups {
		if err := fn(ctx); err != nil {
			s.log.Error("cleanup failed during shutdown", logger.Err(err))
		}
	}

	s.log.Info("shutdown complete")
	return nil
}
