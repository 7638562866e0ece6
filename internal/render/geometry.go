// Package render draws stored puzzles as PNG, PDF and HTML, and computes
// the crop rectangles used to cut box- and cell-sized images out of a
// full-grid render.
package render

import (
	"fmt"

	"sudoq/internal/model"
)

// Fixed raster constants. The grid always starts at (Inset, Inset) with
// CellSize pixels per cell, so crop math stays valid for every variant.
const (
	CellSize = 60
	Inset    = 40
	CropPad  = 6
)

// Rect is a pixel rectangle with exclusive x1/y1.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Expand grows the rectangle by pad on every side, clamped to an image
// of the given dimensions.
func (r Rect) Expand(pad, width, height int) Rect {
	out := Rect{X0: r.X0 - pad, Y0: r.Y0 - pad, X1: r.X1 + pad, Y1: r.Y1 + pad}
	if out.X0 < 0 {
		out.X0 = 0
	}
	if out.Y0 < 0 {
		out.Y0 = 0
	}
	if out.X1 > width {
		out.X1 = width
	}
	if out.Y1 > height {
		out.Y1 = height
	}
	return out
}

// ImageSide returns the pixel side length of a full-grid render.
func ImageSide(size int) int {
	return 2*Inset + size*CellSize
}

// BoxRect returns the unpadded rectangle of one box (1-based box row/col).
func BoxRect(size, boxR, boxC int) Rect {
	bw, bh := model.BlockDims(size)
	x0 := Inset + (boxC-1)*bw*CellSize
	y0 := Inset + (boxR-1)*bh*CellSize
	return Rect{X0: x0, Y0: y0, X1: x0 + bw*CellSize, Y1: y0 + bh*CellSize}
}

// CellRect returns the unpadded rectangle of one cell (1-based row/col).
func CellRect(size, r, c int) Rect {
	x0 := Inset + (c-1)*CellSize
	y0 := Inset + (r-1)*CellSize
	return Rect{X0: x0, Y0: y0, X1: x0 + CellSize, Y1: y0 + CellSize}
}

// BoxGrid returns how many boxes fit per row and per column.
func BoxGrid(size int) (perRow, perCol int) {
	bw, bh := model.BlockDims(size)
	return size / bw, size / bh
}

// BoxFromIndex converts a 1-based box index (row-major) into box row/col.
func BoxFromIndex(size, idx int) (boxR, boxC int, err error) {
	perRow, perCol := BoxGrid(size)
	total := perRow * perCol
	if idx < 1 || idx > total {
		return 0, 0, fmt.Errorf("box index out of range: %d (1..%d)", idx, total)
	}
	return (idx-1)/perRow + 1, (idx-1)%perRow + 1, nil
}

// BoxIndex converts 1-based box row/col into the row-major box index.
func BoxIndex(size, boxR, boxC int) (int, error) {
	perRow, perCol := BoxGrid(size)
	if boxR < 1 || boxR > perCol || boxC < 1 || boxC > perRow {
		return 0, fmt.Errorf("box row/col out of range: (%d,%d); rows 1..%d, cols 1..%d",
			boxR, boxC, perCol, perRow)
	}
	return (boxR-1)*perRow + boxC, nil
}
