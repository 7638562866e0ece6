// Package decode converts the vendor grid encoding into clue and solution grids.
//
// The upstream data value is a digit string of length 2*n*n for a grid of
// side n (4, 6 or 9): first the clues row-major with 0 for unfilled cells,
// then the fully filled solution.
package decode

import (
	"errors"
	"fmt"
)

// ErrMalformed reports data that does not decode to a valid puzzle.
var ErrMalformed = errors.New("malformed puzzle data")

var supportedSizes = []int{4, 6, 9}

// Grid decodes a vendor data string into its size, clues and solution.
func Grid(data string) (size int, clues, solution [][]int, err error) {
	for _, n := range supportedSizes {
		if len(data) == 2*n*n {
			size = n
			break
		}
	}
	if size == 0 {
		return 0, nil, nil, fmt.Errorf("%w: length %d fits no supported size", ErrMalformed, len(data))
	}

	cells := size * size
	clues, err = parseGrid(data[:cells], size)
	if err != nil {
		return 0, nil, nil, err
	}
	solution, err = parseGrid(data[cells:], size)
	if err != nil {
		return 0, nil, nil, err
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if solution[r][c] == 0 {
				return 0, nil, nil, fmt.Errorf("%w: solution cell (%d,%d) is empty", ErrMalformed, r+1, c+1)
			}
			if clues[r][c] != 0 && clues[r][c] != solution[r][c] {
				return 0, nil, nil, fmt.Errorf("%w: clue %d at (%d,%d) contradicts solution %d",
					ErrMalformed, clues[r][c], r+1, c+1, solution[r][c])
			}
		}
	}
	return size, clues, solution, nil
}

func parseGrid(s string, size int) ([][]int, error) {
	grid := make([][]int, size)
	for r := range grid {
		grid[r] = make([]int, size)
		for c := 0; c < size; c++ {
			ch := s[r*size+c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: non-digit %q at offset %d", ErrMalformed, ch, r*size+c)
			}
			v := int(ch - '0')
			if v > size {
				return nil, fmt.Errorf("%w: value %d exceeds grid size %d", ErrMalformed, v, size)
			}
			grid[r][c] = v
		}
	}
	return grid, nil
}
