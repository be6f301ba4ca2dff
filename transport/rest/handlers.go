package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type moveUseCase interface {
	Recommend(ctx context.Context, board *entity.Board, mark entity.Mark) (*usecase.Recommendation, error)
	Evaluate(ctx context.Context, board *entity.Board) entity.GameState
}

type moveResponse struct {
	Move      entity.Move      `json:"move"`
	Board     [][]string       `json:"board"`
	GameState entity.GameState `json:"game_state"`
}

type gameStateResponse struct {
	GameState entity.GameState `json:"game_state"`
	Board     any              `json:"board"`
}

type errorResponse struct {
	Error     string            `json:"error"`
	GameState *entity.GameState `json:"game_state,omitempty"`
}

type handlers struct {
	logger *slog.Logger
	moves  moveUseCase
}

func newHandlers(logger *slog.Logger, moves moveUseCase) *handlers {
	return &handlers{
		logger: logger,
		moves:  moves,
	}
}

func (that *handlers) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (that *handlers) MakeMove(ctx echo.Context) error {
	log := that.logger.With("method", "MakeMove")

	data, err := decodeRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	board, err := parseBoard(data)
	if err != nil {
		return badRequest(ctx, err)
	}

	mark, err := parsePlayer(data)
	if err != nil {
		return badRequest(ctx, err)
	}

	reqCtx := ctx.Request().Context()

	if state := that.moves.Evaluate(reqCtx, board); state.IsOver {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error:     "Game is already over",
			GameState: &state,
		})
	}

	result, err := that.moves.Recommend(reqCtx, board, mark)
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindLogicViolation:
			state := that.moves.Evaluate(reqCtx, board)
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Error:     "No valid moves available",
				GameState: &state,
			})
		case apperror.KindMalformedInput:
			return badRequest(ctx, err)
		default:
			log.Error("failed to recommend move", "error", err, "kind", apperror.KindOf(err).String())
			return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
	}

	return ctx.JSON(http.StatusOK, moveResponse{
		Move:      result.Move,
		Board:     result.Board.Rows(),
		GameState: result.State,
	})
}

func (that *handlers) CheckGameState(ctx echo.Context) error {
	data, err := decodeRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	board, err := parseBoard(data)
	if err != nil {
		return badRequest(ctx, err)
	}

	return ctx.JSON(http.StatusOK, gameStateResponse{
		GameState: that.moves.Evaluate(ctx.Request().Context(), board),
		Board:     data["board"],
	})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func decodeRequest(ctx echo.Context) (map[string]any, error) {
	var data map[string]any
	if err := json.NewDecoder(ctx.Request().Body).Decode(&data); err != nil || len(data) == 0 {
		return nil, apperror.Malformed("No data provided")
	}

	return data, nil
}

func parseBoard(data map[string]any) (*entity.Board, error) {
	raw := data["board"]
	if isBlank(raw) {
		return nil, apperror.Malformed("Board state is required")
	}

	rows, ok := raw.([]any)
	if !ok {
		return nil, apperror.Malformed("Board must be a 3x3 array")
	}

	return entity.ParseBoard(rows)
}

func parsePlayer(data map[string]any) (entity.Mark, error) {
	raw := data["player"]
	if isBlank(raw) {
		return entity.EmptyCell, apperror.Malformed("Player turn is required")
	}

	symbol, ok := raw.(string)
	if !ok {
		return entity.EmptyCell, apperror.Malformed("Player must be 'X' or 'O'")
	}

	return entity.ParseMark(symbol)
}

// isBlank - absent, null, false, zero or empty values.
func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
