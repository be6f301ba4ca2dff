package valuetable

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Encoder - maps a grid to the key its value is stored under. It has to be the same
// function that was used when the tables were produced.
type Encoder interface {
	Encode(grid entity.Grid) uint32
}

type EncoderFunc func(grid entity.Grid) uint32

func (f EncoderFunc) Encode(grid entity.Grid) uint32 {
	return f(grid)
}

const EncodingBase3 = "base3"

var ErrUnknownEncoding = errors.New("unknown state encoding")

var encoders = map[string]Encoder{
	EncodingBase3: Base3{Empty: 0, X: 1, O: 2},
}

// EncoderByName - resolves the encoding configured for the tables.
func EncoderByName(name string) (Encoder, error) {
	encoder, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	return encoder, nil
}

// Base3 - reads the grid row-major as a base-3 number, least significant digit first.
// Each field is the digit written for that cell content.
type Base3 struct {
	Empty uint32
	X     uint32
	O     uint32
}

func (that Base3) Encode(grid entity.Grid) uint32 {
	var (
		key   uint32
		power uint32 = 1
	)

	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			key += that.digit(grid[row][col]) * power
			power *= 3
		}
	}

	return key
}

func (that Base3) digit(mark entity.Mark) uint32 {
	switch mark {
	case entity.MarkX:
		return that.X
	case entity.MarkO:
		return that.O
	default:
		return that.Empty
	}
}
