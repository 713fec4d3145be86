package server

import (
	"context"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/handler"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
)

// ShutdownTimeout bounds the drain of in-flight requests.
const ShutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err := <-errCh
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
