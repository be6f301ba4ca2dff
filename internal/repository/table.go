package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/valuetable"
)

var ErrTableNotFound = fmt.Errorf("%w: not found in storage", apperror.ErrTableUnavailable)

type TableRepository interface {
	CreateOrUpdate(ctx context.Context, mark entity.Mark, table *valuetable.Table) error
	GetByMark(ctx context.Context, mark entity.Mark) (*valuetable.Table, error)
	DeleteByMark(ctx context.Context, mark entity.Mark) error
}

type dbTable struct {
	Values map[uint32]float64 `json:"values"`
}

type redisTable struct {
	client *redis.Client
}

func NewTableRepository(client *redis.Client) TableRepository {
	return &redisTable{
		client: client,
	}
}

func tableKey(mark entity.Mark) string {
	return "valuetable:" + mark.String()
}

func (that *redisTable) CreateOrUpdate(ctx context.Context, mark entity.Mark, table *valuetable.Table) error {
	tableJSON, err := json.Marshal(dbTable{Values: table.Entries()})
	if err != nil {
		return fmt.Errorf("could not marshal table: %w", err)
	}

	if err = that.client.Set(ctx, tableKey(mark), tableJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set table: %w", err)
	}

	return nil
}

func (that *redisTable) GetByMark(ctx context.Context, mark entity.Mark) (*valuetable.Table, error) {
	response, err := that.client.Get(ctx, tableKey(mark)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: player %s", ErrTableNotFound, mark)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to get table: %w", apperror.ErrTableUnavailable, err)
	}

	var stored dbTable
	if err = json.Unmarshal(response, &stored); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal table: %w", apperror.ErrTableUnavailable, err)
	}

	return valuetable.NewSparse(stored.Values), nil
}

func (that *redisTable) DeleteByMark(ctx context.Context, mark entity.Mark) error {
	if err := that.client.Del(ctx, tableKey(mark)).Err(); err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	return nil
}
