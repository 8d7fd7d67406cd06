package memory

import "github.com/vovakirdan/tui-memory/internal/core"

// MinGridDim is the smallest allowed number of rows or columns.
const MinGridDim = 2

// ValidateGrid checks that rows x cols can be dealt as pairs.
func ValidateGrid(rows, cols int) error {
	if rows < MinGridDim || cols < MinGridDim {
		return &InvalidGridError{Rows: rows, Cols: cols, Reason: "rows and columns must be at least 2"}
	}
	if (rows*cols)%2 != 0 {
		return &InvalidGridError{Rows: rows, Cols: cols, Reason: "odd number of cards cannot be paired"}
	}
	return nil
}

// BuildGrid lays out rows x cols empty slots in row-major order.
// Every cell has the same size: the container split evenly by columns and rows.
func BuildGrid(rows, cols int, container core.RectF) ([]*Slot, error) {
	if err := ValidateGrid(rows, cols); err != nil {
		return nil, err
	}

	cellW := container.W / float64(cols)
	cellH := container.H / float64(rows)

	slots := make([]*Slot, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			slots = append(slots, &Slot{
				Index:    len(slots),
				CardID:   Unassigned,
				Position: core.V(container.X+float64(c)*cellW, container.Y+float64(r)*cellH),
				Size:     core.V(cellW, cellH),
			})
		}
	}
	return slots, nil
}
