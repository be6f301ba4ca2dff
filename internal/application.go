package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/internal/valuetable"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	server, err := Build(ctx, logger, conf)
	if err != nil {
		return err
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := server.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		return server.Shutdown(shutdownCtx)
	}
}

// Build - loads the value tables and wires the HTTP server. Tables are fully loaded before it returns.
func Build(ctx context.Context, logger *slog.Logger, conf *config.Config) (*rest.Server, error) {
	log := logger.With("component", "app")

	encoder, err := valuetable.EncoderByName(conf.ValueTables.Encoding)
	if err != nil {
		return nil, fmt.Errorf("invalid value table config: %w", err)
	}

	var tableRepo repository.TableRepository
	if conf.ValueTables.UsesRedis() {
		if conf.Redis.Host == "" {
			return nil, ErrAddrNotFound
		}

		var redisStorage *redis.Client
		redisStorage, err = storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		// tables are copied into memory by Load, the connection is not needed afterwards
		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		tableRepo = repository.NewTableRepository(redisStorage)
	}

	tableService := service.NewTableService(logger, conf.ValueTables, tableRepo)

	tables, err := tableService.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load value tables: %w", err)
	}

	moveUseCase := usecase.NewMoveManager(logger, tables, encoder, conf.ValueTables.MissingValue)

	return rest.New(logger, moveUseCase), nil
}
