package valuetable

import (
	"fmt"
	"os"

	"github.com/sbinet/npyio"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// LoadNPY - reads a one-dimensional float64 NumPy array where the index is the state key.
func LoadNPY(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrTableUnavailable, err)
	}
	defer file.Close()

	var values []float64
	if err = npyio.Read(file, &values); err != nil {
		return nil, fmt.Errorf("%w: could not decode %s: %w", apperror.ErrTableUnavailable, path, err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", apperror.ErrTableUnavailable, path)
	}

	return NewDense(values), nil
}
