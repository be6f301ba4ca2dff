package entity

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// ParseBoard - converts a decoded JSON board (rows of "X", "O", "" or null) into a Board.
func ParseBoard(rows []any) (*Board, error) {
	if len(rows) != Size {
		return nil, apperror.Malformed("Board must be a 3x3 array")
	}

	var grid Grid
	for i, raw := range rows {
		row, ok := raw.([]any)
		if !ok || len(row) != Size {
			return nil, apperror.Malformed("Each row must be a list of 3 elements")
		}

		for j, value := range row {
			mark, err := parseCell(value)
			if err != nil {
				return nil, err
			}

			grid[i][j] = mark
		}
	}

	board := NewBoard(grid)
	if board.hasLine(MarkX) && board.hasLine(MarkO) {
		return nil, apperror.Malformed("Board has winning lines for both players")
	}

	return board, nil
}

func parseCell(value any) (Mark, error) {
	switch value {
	case nil, "":
		return EmptyCell, nil
	case PlayerX:
		return MarkX, nil
	case PlayerO:
		return MarkO, nil
	default:
		return EmptyCell, apperror.Malformed("Invalid board value: %v", value)
	}
}

// Rows - inverse of ParseBoard, empty cells become "".
func (that *Board) Rows() [][]string {
	rows := make([][]string, Size)
	for i := 0; i < Size; i++ {
		rows[i] = make([]string, Size)
		for j := 0; j < Size; j++ {
			rows[i][j] = that.grid[i][j].String()
		}
	}

	return rows
}
