package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/valuetable"
)

type tableSet interface {
	For(mark entity.Mark) (*valuetable.Table, error)
}

type MoveUseCase interface {
	Recommend(ctx context.Context, board *entity.Board, mark entity.Mark) (*Recommendation, error)
	Evaluate(ctx context.Context, board *entity.Board) entity.GameState
}

// Recommendation - chosen move and the board after it was played.
type Recommendation struct {
	Move  entity.Move
	Board *entity.Board
	State entity.GameState
}

type MoveManager struct {
	logger *slog.Logger

	tables       tableSet
	encoder      valuetable.Encoder
	missingValue float64
}

func NewMoveManager(logger *slog.Logger, tables tableSet, encoder valuetable.Encoder, missingValue float64) *MoveManager {
	return &MoveManager{
		logger: logger,

		tables:       tables,
		encoder:      encoder,
		missingValue: missingValue,
	}
}

func (that *MoveManager) Recommend(ctx context.Context, board *entity.Board, mark entity.Mark) (*Recommendation, error) {
	log := that.logger.With("method", "Recommend", "player", mark.String())

	if board.Clone().GameOver() {
		return nil, apperror.ErrGameFinished
	}

	if len(board.LegalMoves()) == 0 {
		return nil, apperror.ErrNoLegalMoves
	}

	table, err := that.tables.For(mark)
	if err != nil {
		return nil, fmt.Errorf("failed to get value table: %w", err)
	}

	player, err := agent.New(mark, table, that.encoder,
		agent.WithMissingValue(that.missingValue),
		agent.WithLogger(that.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	move, err := player.TakeAction(board)
	if err != nil {
		return nil, fmt.Errorf("failed to take action: %w", err)
	}

	updated := board.Clone()
	if err = updated.ApplyMove(move, mark); err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	state := updated.State()
	log.DebugContext(ctx, "move recommended", "row", move.Row, "col", move.Col, "is_over", state.IsOver)

	return &Recommendation{
		Move:  move,
		Board: updated,
		State: state,
	}, nil
}

func (that *MoveManager) Evaluate(_ context.Context, board *entity.Board) entity.GameState {
	return board.Clone().State()
}
