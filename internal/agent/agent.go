package agent

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/valuetable"
)

var ErrNoEncoder = errors.New("state encoder is required")

// Agent - picks moves for one player by one-ply lookahead against that player's value table.
type Agent struct {
	logger *slog.Logger

	mark         entity.Mark
	table        *valuetable.Table
	encoder      valuetable.Encoder
	missingValue float64
}

type Option func(*Agent)

// WithMissingValue - value used for states the table does not know. Zero by default.
func WithMissingValue(value float64) Option {
	return func(agent *Agent) {
		agent.missingValue = value
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(agent *Agent) {
		agent.logger = logger
	}
}

func New(mark entity.Mark, table *valuetable.Table, encoder valuetable.Encoder, opts ...Option) (*Agent, error) {
	if !mark.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if table == nil {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrTableUnavailable, mark)
	}

	if encoder == nil {
		return nil, ErrNoEncoder
	}

	agent := &Agent{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		mark:    mark,
		table:   table,
		encoder: encoder,
	}

	for _, opt := range opts {
		opt(agent)
	}

	agent.logger = agent.logger.With("component", "agent", "player", mark.String())

	return agent, nil
}

func (that *Agent) Mark() entity.Mark {
	return that.mark
}

// TakeAction - returns the legal move whose resulting state has the highest value.
// Ties go to the first move in row-major order. The board is not modified.
func (that *Agent) TakeAction(board *entity.Board) (entity.Move, error) {
	if board.Clone().GameOver() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoLegalMoves
	}

	best := moves[0]
	bestValue := math.Inf(-1)

	for _, move := range moves {
		next := board.Clone()
		if err := next.ApplyMove(move, that.mark); err != nil {
			return entity.Move{}, fmt.Errorf("failed to try move: %w", err)
		}

		if value := that.value(next.Grid()); value > bestValue {
			best, bestValue = move, value
		}
	}

	that.logger.Debug("move selected", "row", best.Row, "col", best.Col, "value", bestValue)

	return best, nil
}

func (that *Agent) value(grid entity.Grid) float64 {
	key := that.encoder.Encode(grid)

	value, ok := that.table.Lookup(key)
	if !ok {
		that.logger.Debug("using fallback value", "key", key, "error", apperror.ErrMissingEntry)

		return that.missingValue
	}

	return value
}
