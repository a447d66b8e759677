package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe/cmd"
	httpadapter "cafe/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("cafe: %v", err)
	}
}

// run owns every resource it opens, so each one is released on the way out
// whether startup fails or the server stops.
func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		return err
	}
	publisher, err := cmd.OpenPublisher(configs, logger)
	if err != nil {
		return errors.Join(fmt.Errorf("connect to message broker: %w", err), cmd.CloseDatabase(db))
	}

	app := cmd.NewCompositionRoot(configs, db, publisher, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to release resources", "error", err)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewRouter(app.CreateServer(), logger)
	if err != nil {
		return fmt.Errorf("create router: %w", err)
	}
	return serve(e, configs.HTTPPort, logger)
}

func serve(e *echo.Echo, port string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
