package entity

import (
	"encoding/json"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark - content of a single cell. The numeric values are the ones the value tables were trained with.
type Mark int8

const (
	EmptyCell Mark = 0
	MarkX     Mark = -1
	MarkO     Mark = 1
)

const (
	PlayerX = "X"
	PlayerO = "O"
)

// ParseMark - converts a player symbol (case-insensitive) to a mark.
func ParseMark(symbol string) (Mark, error) {
	switch strings.ToUpper(symbol) {
	case PlayerX:
		return MarkX, nil
	case PlayerO:
		return MarkO, nil
	default:
		return EmptyCell, apperror.Malformed("Player must be 'X' or 'O'")
	}
}

func (m Mark) IsPlayer() bool {
	return m == MarkX || m == MarkO
}

func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return EmptyCell
	}
}

func (m Mark) String() string {
	switch m {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return ""
	}
}

// MarshalJSON - players are encoded as "X" / "O", an empty cell as null.
func (m Mark) MarshalJSON() ([]byte, error) {
	if !m.IsPlayer() {
		return []byte("null"), nil
	}

	return json.Marshal(m.String())
}
