package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shoppa/internal/middleware"
	"shoppa/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Deps struct {
	Logger   *zap.Logger
	Tokens   middleware.SessionTokenParser
	Sessions repository.SessionRepository
	Handlers Handlers
}

// New はミドルウェアとルートを組んだechoを返す。
func New(d Deps) *echo.Echo {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	auth := []echo.MiddlewareFunc{
		middleware.SessionJWT(d.Tokens),
		middleware.SessionGuard(d.Sessions),
	}
	registerRoutes(e, d.Handlers, auth...)

	return e
}

// Run はctxがキャンセルされるまでサーブし、その後 shutdownTimeout 以内に止める。
func Run(ctx context.Context, e *echo.Echo, addr string, shutdownTimeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
