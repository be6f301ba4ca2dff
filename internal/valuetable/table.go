package valuetable

import (
	"fmt"
	"maps"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Table - read-only mapping from an encoded state to the value of that state for one player.
type Table struct {
	values map[uint32]float64
}

// NewDense - table where the slice index is the state key.
func NewDense(values []float64) *Table {
	table := &Table{values: make(map[uint32]float64, len(values))}
	for key, value := range values {
		table.values[uint32(key)] = value //nolint: gosec // tables never exceed 3^9 entries
	}

	return table
}

// NewSparse - table from explicit key/value pairs. The map is copied.
func NewSparse(values map[uint32]float64) *Table {
	return &Table{values: maps.Clone(values)}
}

func (that *Table) Lookup(key uint32) (float64, bool) {
	value, ok := that.values[key]

	return value, ok
}

func (that *Table) Len() int {
	return len(that.values)
}

// Entries - copy of the table contents.
func (that *Table) Entries() map[uint32]float64 {
	return maps.Clone(that.values)
}

// Set - the value tables of both players, loaded once and shared by every request.
type Set struct {
	tables map[entity.Mark]*Table
}

func NewSet(x, o *Table) (*Set, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrTableUnavailable, entity.PlayerX)
	}

	if o == nil {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrTableUnavailable, entity.PlayerO)
	}

	return &Set{
		tables: map[entity.Mark]*Table{
			entity.MarkX: x,
			entity.MarkO: o,
		},
	}, nil
}

// For - table of the given player.
func (that *Set) For(mark entity.Mark) (*Table, error) {
	if that == nil {
		return nil, apperror.ErrTableUnavailable
	}

	table, ok := that.tables[mark]
	if !ok {
		return nil, fmt.Errorf("%w: mark %d", apperror.ErrTableUnavailable, mark)
	}

	return table, nil
}
