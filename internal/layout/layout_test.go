package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

func TestGeometry_GridLines(t *testing.T) {
	// When: the default board is laid out
	lines := Default().GridLines()

	// Then: the bars match the classic 195-205 and 395-405 positions
	require.Len(t, lines, 4)
	assert.Equal(t, Rect{X0: 195, Y0: 0, X1: 205, Y1: 600}, lines[0])
	assert.Equal(t, Rect{X0: 395, Y0: 0, X1: 405, Y1: 600}, lines[1])
	assert.Equal(t, Rect{X0: 0, Y0: 195, X1: 600, Y1: 205}, lines[2])
	assert.Equal(t, Rect{X0: 0, Y0: 395, X1: 600, Y1: 405}, lines[3])
	assert.InDelta(t, 10, lines[0].Width(), 0)
	assert.InDelta(t, 600, lines[0].Height(), 0)
}

func TestGeometry_Cells(t *testing.T) {
	cells := Default().Cells()

	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 200, Y1: 200}, cells[0])
	assert.Equal(t, Rect{X0: 200, Y0: 0, X1: 400, Y1: 200}, cells[1])
	assert.Equal(t, Rect{X0: 400, Y0: 200, X1: 600, Y1: 400}, cells[5])
	assert.Equal(t, Rect{X0: 400, Y0: 400, X1: 600, Y1: 600}, cells[8])

	small := Geometry{BoardSize: 90, CellSize: 30, LineWidth: 2}
	assert.Equal(t, Rect{X0: 30, Y0: 30, X1: 60, Y1: 60}, small.Cell(4))
}

func TestCellColor(t *testing.T) {
	assert.Equal(t, PlayerOne, CellColor(entity.PlayerOneMark))
	assert.Equal(t, PlayerTwo, CellColor(entity.PlayerTwoMark))
	assert.Equal(t, Background, CellColor(entity.Empty))
}

func TestGeometry_MessagePlacement(t *testing.T) {
	t.Run("Bitmap text is scaled up and centred", func(t *testing.T) {
		// Given: the 7x13 font rendering of "DRAW =[" (49x10 pixels)
		geometry := Default()

		// When: it is placed on the board
		scale, x, y := geometry.MessagePlacement(49, 10)

		// Then: it is five times larger and centred
		assert.InDelta(t, 5, scale, 0)
		assert.InDelta(t, (600-49*5)/2.0, x, 1e-9)
		assert.InDelta(t, (600-10*5)/2.0, y, 1e-9)
	})

	t.Run("Scale never drops below one", func(t *testing.T) {
		small := Geometry{BoardSize: 90, CellSize: 30, LineWidth: 2}

		scale, x, y := small.MessagePlacement(70, 13)

		assert.InDelta(t, 1, scale, 0)
		assert.InDelta(t, 10, x, 1e-9)
		assert.InDelta(t, 38.5, y, 1e-9)
	})

	t.Run("Empty bitmap keeps scale one", func(t *testing.T) {
		scale, x, y := Default().MessagePlacement(0, 0)

		assert.InDelta(t, 1, scale, 0)
		assert.InDelta(t, 300, x, 0)
		assert.InDelta(t, 300, y, 0)
	})
}
