package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const Size = 3

// WinCombos - every line that wins the game: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Grid [Size][Size]Mark

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) inBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// GameState - terminal status of a board as reported to clients.
type GameState struct {
	IsOver bool `json:"is_over"`
	Winner Mark `json:"winner"`
	IsDraw bool `json:"is_draw"`
}

// Board - 3x3 game state. The zero value is an empty board.
type Board struct {
	grid   Grid
	winner Mark
}

func NewBoard(grid Grid) *Board {
	board := &Board{}
	board.SetState(grid)

	return board
}

// SetState - replaces the grid wholesale. Cell values are not validated.
func (that *Board) SetState(grid Grid) {
	that.grid = grid
	that.winner = EmptyCell
}

func (that *Board) Grid() Grid {
	return that.grid
}

func (that *Board) Cell(row, col int) Mark {
	return that.grid[row][col]
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.grid[row][col] == EmptyCell
}

// LegalMoves - empty cells in row-major order.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.IsEmpty(row, col) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.IsEmpty(row, col) {
				return false
			}
		}
	}

	return true
}

// GameOver - checks every winning line, keeps the winner and reports whether the game has ended.
func (that *Board) GameOver() bool {
	that.winner = that.determineWinner()

	return that.winner != EmptyCell || that.IsFull()
}

// Winner - the mark found by the last GameOver call, EmptyCell if none.
func (that *Board) Winner() Mark {
	return that.winner
}

func (that *Board) IsDraw() bool {
	return that.determineWinner() == EmptyCell && that.IsFull()
}

func (that *Board) State() GameState {
	isOver := that.GameOver()

	return GameState{
		IsOver: isOver,
		Winner: that.winner,
		IsDraw: that.IsDraw(),
	}
}

// ApplyMove - places mark on an empty cell.
func (that *Board) ApplyMove(move Move, mark Mark) error {
	if !move.inBounds() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if !that.IsEmpty(move.Row, move.Col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, move.Row, move.Col)
	}

	that.grid[move.Row][move.Col] = mark

	return nil
}

// Clone - independent copy, mutations on it never reach the original.
func (that *Board) Clone() *Board {
	clone := *that

	return &clone
}

// determineWinner - first complete line in WinCombos order. A board where both players
// have a line is rejected by callers; here the earliest line simply wins.
func (that *Board) determineWinner() Mark {
	for _, combo := range WinCombos {
		a := that.grid[combo[0].Row][combo[0].Col]
		b := that.grid[combo[1].Row][combo[1].Col]
		c := that.grid[combo[2].Row][combo[2].Col]

		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Board) hasLine(mark Mark) bool {
	for _, combo := range WinCombos {
		if that.grid[combo[0].Row][combo[0].Col] == mark &&
			that.grid[combo[1].Row][combo[1].Col] == mark &&
			that.grid[combo[2].Row][combo[2].Col] == mark {
			return true
		}
	}

	return false
}
