package layout

import (
	"image/color"
	"math"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

var (
	Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	GridLine   = color.RGBA{A: 0xff}
	PlayerOne  = color.RGBA{R: 0xff, A: 0xff}
	PlayerTwo  = color.RGBA{B: 0xff, A: 0xff}
	Text       = color.RGBA{A: 0xff}
)

// messageHeight is the target height of the outcome text as a share of the board.
const messageHeight = 1.0 / 12

// Rect is an axis-aligned rectangle in board pixels.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (that Rect) Width() float64 {
	return that.X1 - that.X0
}

func (that Rect) Height() float64 {
	return that.Y1 - that.Y0
}

// Geometry describes how the board is drawn.
type Geometry struct {
	BoardSize float64
	CellSize  float64
	LineWidth float64
}

// Default is the 600 pixel board with 10 pixel grid bars.
func Default() Geometry {
	return Geometry{BoardSize: 600, CellSize: 200, LineWidth: 10}
}

// Cell returns the square covered by cell index i.
func (that Geometry) Cell(i int) Rect {
	col := float64(i % entity.BoardSide)
	row := float64(i / entity.BoardSide)

	return Rect{
		X0: that.CellSize * col,
		Y0: that.CellSize * row,
		X1: that.CellSize * (col + 1),
		Y1: that.CellSize * (row + 1),
	}
}

// Cells returns all nine squares in board order.
func (that Geometry) Cells() [entity.CellCount]Rect {
	var cells [entity.CellCount]Rect
	for i := range cells {
		cells[i] = that.Cell(i)
	}
	return cells
}

// GridLines returns the two vertical then the two horizontal bars, centred on cell borders.
func (that Geometry) GridLines() []Rect {
	half := that.LineWidth / 2
	lines := make([]Rect, 0, 2*(entity.BoardSide-1))

	for k := 1; k < entity.BoardSide; k++ {
		at := that.CellSize * float64(k)
		lines = append(lines, Rect{X0: at - half, Y0: 0, X1: at + half, Y1: that.BoardSize})
	}

	for k := 1; k < entity.BoardSide; k++ {
		at := that.CellSize * float64(k)
		lines = append(lines, Rect{X0: 0, Y0: at - half, X1: that.BoardSize, Y1: at + half})
	}

	return lines
}

// CellColor is the fill for a cell holding mark.
func CellColor(mark entity.CellMark) color.RGBA {
	switch mark {
	case entity.PlayerOneMark:
		return PlayerOne
	case entity.PlayerTwoMark:
		return PlayerTwo
	default:
		return Background
	}
}

// MessagePlacement returns the whole-number scale for a text bitmap of the given size
// and the top-left corner that centres the scaled bitmap on the board.
func (that Geometry) MessagePlacement(textWidth, textHeight int) (scale, x, y float64) {
	scale = 1
	if textHeight > 0 {
		scale = math.Max(1, math.Floor(that.BoardSize*messageHeight/float64(textHeight)))
	}

	x = (that.BoardSize - float64(textWidth)*scale) / 2
	y = (that.BoardSize - float64(textHeight)*scale) / 2

	return scale, x, y
}
