package input

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const (
	DefaultBoardPixelSize = 600
	DefaultCellPixelSize  = 200
)

// Viewport is the pixel geometry of the rendered board, origin top-left.
type Viewport struct {
	BoardPixelSize float64
	CellPixelSize  float64
}

// DefaultViewport is the 600x600 board with 200 pixel cells.
func DefaultViewport() Viewport {
	return Viewport{
		BoardPixelSize: DefaultBoardPixelSize,
		CellPixelSize:  DefaultCellPixelSize,
	}
}

// MapToCell - maps pointer coordinates to the index of the cell under them.
//
// Valid coordinates lie in [0, BoardPixelSize) on both axes; anything else,
// including NaN, yields entity.NoSelection.
func (that Viewport) MapToCell(x, y float64) int {
	if !that.contains(x) || !that.contains(y) || that.CellPixelSize <= 0 {
		return entity.NoSelection
	}

	row := clampIndex(math.Floor(y / that.CellPixelSize))
	col := clampIndex(math.Floor(x / that.CellPixelSize))

	return row*entity.BoardSide + col
}

func (that Viewport) contains(v float64) bool {
	return v >= 0 && v < that.BoardPixelSize
}

func clampIndex(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > entity.BoardSide-1:
		return entity.BoardSide - 1
	default:
		return int(v)
	}
}

// MapToCell maps coordinates using the default 600x600 viewport.
func MapToCell(x, y float64) int {
	return DefaultViewport().MapToCell(x, y)
}
