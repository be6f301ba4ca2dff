package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/valuetable"
)

var ErrUnknownSource = errors.New("unknown value table source")

type tableRepo interface {
	CreateOrUpdate(ctx context.Context, mark entity.Mark, table *valuetable.Table) error
	GetByMark(ctx context.Context, mark entity.Mark) (*valuetable.Table, error)
}

// TableService - provisions the value tables of both players once, before traffic is served.
type TableService struct {
	logger *slog.Logger
	conf   config.ValueTables
	repo   tableRepo
}

// NewTableService - repo may be nil when the tables are neither read from nor published to redis.
func NewTableService(logger *slog.Logger, conf config.ValueTables, repo tableRepo) *TableService {
	return &TableService{
		logger: logger.With("component", "tables"),
		conf:   conf,
		repo:   repo,
	}
}

func (that *TableService) Load(ctx context.Context) (*valuetable.Set, error) {
	log := that.logger.With("method", "Load", "source", that.conf.Source)

	var (
		tableX, tableO *valuetable.Table
		err            error
	)

	switch that.conf.Source {
	case config.SourceFile:
		tableX, tableO, err = that.loadFiles()
	case config.SourceRedis:
		tableX, tableO, err = that.loadRedis(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, that.conf.Source)
	}

	if err != nil {
		return nil, err
	}

	set, err := valuetable.NewSet(tableX, tableO)
	if err != nil {
		return nil, fmt.Errorf("failed to build table set: %w", err)
	}

	log.Info("value tables loaded", "x_entries", tableX.Len(), "o_entries", tableO.Len())

	if that.conf.Publish && that.conf.Source == config.SourceFile {
		if err = that.publish(ctx, tableX, tableO); err != nil {
			return nil, fmt.Errorf("failed to publish tables: %w", err)
		}

		log.Info("value tables published to redis")
	}

	return set, nil
}

func (that *TableService) loadFiles() (*valuetable.Table, *valuetable.Table, error) {
	tableX, err := valuetable.LoadNPY(filepath.Join(that.conf.Dir, that.conf.XFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load table for X: %w", err)
	}

	tableO, err := valuetable.LoadNPY(filepath.Join(that.conf.Dir, that.conf.OFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load table for O: %w", err)
	}

	return tableX, tableO, nil
}

func (that *TableService) loadRedis(ctx context.Context) (*valuetable.Table, *valuetable.Table, error) {
	if that.repo == nil {
		return nil, nil, fmt.Errorf("%w: redis storage is not configured", apperror.ErrTableUnavailable)
	}

	tableX, err := that.repo.GetByMark(ctx, entity.MarkX)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get table for X: %w", err)
	}

	tableO, err := that.repo.GetByMark(ctx, entity.MarkO)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get table for O: %w", err)
	}

	return tableX, tableO, nil
}

func (that *TableService) publish(ctx context.Context, tableX, tableO *valuetable.Table) error {
	if that.repo == nil {
		return fmt.Errorf("%w: redis storage is not configured", apperror.ErrTableUnavailable)
	}

	if err := that.repo.CreateOrUpdate(ctx, entity.MarkX, tableX); err != nil {
		return fmt.Errorf("failed to save table for X: %w", err)
	}

	if err := that.repo.CreateOrUpdate(ctx, entity.MarkO, tableO); err != nil {
		return fmt.Errorf("failed to save table for O: %w", err)
	}

	return nil
}
