package terminal

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/input"
	"github.com/rocketscienceinc/tictactoe-desktop/testing/suite"
)

func newTestModel(t *testing.T) (*Model, *suite.Suite) {
	t.Helper()

	st := suite.New(t)
	return NewModel(st.Session, input.DefaultBoardPixelSize, "Tic Tac Toe"), st
}

// cellPosition returns the terminal cell in the middle of a board square.
func cellPosition(cell int) (int, int) {
	col := cell % entity.BoardSide
	row := cell / entity.BoardSide

	return boardLeft + col*(cellWidth+1) + cellWidth/2, boardTop + row*(cellHeight+1) + cellHeight/2
}

func release(cell int) tea.MouseMsg {
	x, y := cellPosition(cell)
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestModel_MouseRelease(t *testing.T) {
	t.Run("Release over a square places a mark", func(t *testing.T) {
		m, st := newTestModel(t)

		// When: the left button is released over the centre square
		_, cmd := m.Update(release(4))

		// Then: player one owns it
		assert.Nil(t, cmd)
		assert.Equal(t, entity.PlayerOneMark, st.Game.Board()[4])
		assert.Equal(t, entity.PlayerTwo, st.Game.CurrentTurn())
	})

	t.Run("Press alone does nothing", func(t *testing.T) {
		m, st := newTestModel(t)
		x, y := cellPosition(4)

		// When: the button is only pressed
		m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

		// Then: the board is untouched
		assert.Equal(t, entity.Board{}, st.Game.Board())
	})

	t.Run("Release outside the board does nothing", func(t *testing.T) {
		m, st := newTestModel(t)

		// When: the title line is clicked
		m.Update(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

		// Then: the board is untouched
		assert.Equal(t, entity.Board{}, st.Game.Board())
	})

	t.Run("Right button release is ignored", func(t *testing.T) {
		m, st := newTestModel(t)
		msg := release(0)
		msg.Button = tea.MouseButtonRight

		m.Update(msg)

		assert.Equal(t, entity.Board{}, st.Game.Board())
	})
}

func TestModel_toBoardPixels(t *testing.T) {
	m, _ := newTestModel(t)
	viewport := input.DefaultViewport()

	t.Run("Every square maps to its cell", func(t *testing.T) {
		for cell := 0; cell < entity.CellCount; cell++ {
			for dy := 0; dy < cellHeight; dy++ {
				for dx := 0; dx < cellWidth; dx++ {
					col := boardLeft + (cell%entity.BoardSide)*(cellWidth+1) + dx
					row := boardTop + (cell/entity.BoardSide)*(cellHeight+1) + dy

					assert.Equal(t, cell, viewport.MapToCell(m.toBoardPixels(col, row)), "cell %d at %d,%d", cell, col, row)
				}
			}
		}
	})

	t.Run("Grid lines map to a neighbouring square", func(t *testing.T) {
		cell := viewport.MapToCell(m.toBoardPixels(boardLeft+cellWidth, boardTop+cellHeight))

		assert.NotEqual(t, entity.NoSelection, cell)
	})

	t.Run("Outside the board maps to no selection", func(t *testing.T) {
		for _, pos := range [][2]int{{0, 0}, {boardCols, boardTop}, {0, boardTop + boardRows}, {-1, boardTop}} {
			assert.Equal(t, entity.NoSelection, viewport.MapToCell(m.toBoardPixels(pos[0], pos[1])), "pos %v", pos)
		}
	})
}

func TestModel_GameOver(t *testing.T) {
	m, st := newTestModel(t)

	// Given: player two completes the middle column
	for _, cell := range []int{0, 1, 2, 4, 3} {
		m.Update(release(cell))
	}
	require.Equal(t, entity.PlayerTwo, st.Game.CurrentTurn())
	m.Update(release(7))
	_, won := st.Game.Winner()
	require.True(t, won)

	// Then: the final board is still drawn
	assert.Contains(t, m.View(), "game over")
	assert.NotContains(t, m.View(), "Wins!!")

	// When: the reveal delay passes and the shell ticks
	st.Clock.Add(300 * time.Millisecond)
	_, cmd := m.Update(tickMsg(st.Clock.Now()))

	// Then: the outcome replaces the board and ticking continues
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Player 2 Wins!!")

	// When: the message time is over
	st.Clock.Add(2 * time.Second)
	m.Update(tickMsg(st.Clock.Now()))

	// Then: the board is empty again
	assert.Equal(t, entity.Board{}, st.Game.Board())
	assert.Contains(t, m.View(), "Player 1 to move")
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "Tic Tac Toe")
	assert.Contains(t, view, "Player 1 to move")
	assert.Contains(t, view, "┼")

	m.Update(release(4))
	assert.Contains(t, m.View(), "X")
	assert.Contains(t, m.View(), "Player 2 to move")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := m.Update(key)

		require.NotNil(t, cmd, "key %s", key)
		assert.Equal(t, tea.QuitMsg{}, cmd(), "key %s", key)
	}
}

func TestModel_Init(t *testing.T) {
	m, _ := newTestModel(t)

	assert.NotNil(t, m.Init())
}
