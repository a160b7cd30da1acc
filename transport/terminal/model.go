package terminal

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

const (
	cellWidth  = 9
	cellHeight = 3

	boardCols = entity.BoardSide*cellWidth + entity.BoardSide - 1
	boardRows = entity.BoardSide*cellHeight + entity.BoardSide - 1

	// the board starts below the title and a blank line
	boardTop  = 2
	boardLeft = 0

	tickInterval = 50 * time.Millisecond
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}).Render
	gridStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#8f8f8f"}).Render
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141", Dark: "#8f8f8f"}).Render
	messageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	playerOneStyle = lipgloss.NewStyle().Background(lipgloss.Color("#ff0000")).Foreground(lipgloss.Color("#ffffff")).Render
	playerTwoStyle = lipgloss.NewStyle().Background(lipgloss.Color("#0000ff")).Foreground(lipgloss.Color("#ffffff")).Render
)

type session interface {
	PointerUp(x, y float64) entity.PlacementResult
	Tick() bool
	View() usecase.Frame
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model of the terminal board.
type Model struct {
	session   session
	pixelSize float64
	title     string
}

// NewModel builds a model whose mouse clicks are scaled into a board of pixelSize pixels.
func NewModel(session session, pixelSize float64, title string) *Model {
	return &Model{
		session:   session,
		pixelSize: pixelSize,
		title:     title,
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.MouseMsg:
		if !isPointerUp(msg) {
			return m, nil
		}
		m.session.PointerUp(m.toBoardPixels(msg.X, msg.Y))

	case tickMsg:
		m.session.Tick()
		return m, tick()
	}

	return m, nil
}

func isPointerUp(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionRelease {
		return false
	}

	// X10 terminals do not say which button was released
	return msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone
}

// toBoardPixels maps a terminal cell to the centre of the matching region in board pixels.
// Cells outside the drawn board map outside the pixel range.
func (m *Model) toBoardPixels(col, row int) (float64, float64) {
	cx := col - boardLeft
	cy := row - boardTop

	if cx < 0 || cx >= boardCols || cy < 0 || cy >= boardRows {
		return -1, -1
	}

	x := (float64(cx) + 0.5) * m.pixelSize / boardCols
	y := (float64(cy) + 0.5) * m.pixelSize / boardRows

	return x, y
}

func (m *Model) View() string {
	frame := m.session.View()

	var s strings.Builder

	s.WriteString(titleStyle(m.title))
	s.WriteString("\n\n")

	if frame.ShowsMessage() {
		s.WriteString(lipgloss.Place(boardCols, boardRows, lipgloss.Center, lipgloss.Center, messageStyle.Render(frame.Message)))
	} else {
		s.WriteString(renderBoard(frame.Board))
	}

	s.WriteString("\n\n")
	s.WriteString(footerStyle(footer(frame)))
	s.WriteString("\n")

	return s.String()
}

func footer(frame usecase.Frame) string {
	if frame.Phase != usecase.PhasePlaying {
		return "game over"
	}

	if frame.Turn == entity.PlayerTwo {
		return "Player 2 to move (blue)  q to quit"
	}
	return "Player 1 to move (red)  q to quit"
}

func renderBoard(board entity.Board) string {
	separator := gridStyle(strings.Repeat(strings.Repeat("─", cellWidth)+"┼", entity.BoardSide-1) + strings.Repeat("─", cellWidth))

	lines := make([]string, 0, boardRows)
	for row := 0; row < entity.BoardSide; row++ {
		if row > 0 {
			lines = append(lines, separator)
		}

		for line := 0; line < cellHeight; line++ {
			var b strings.Builder
			for col := 0; col < entity.BoardSide; col++ {
				if col > 0 {
					b.WriteString(gridStyle("│"))
				}
				b.WriteString(renderCellLine(board[row*entity.BoardSide+col], line == cellHeight/2))
			}
			lines = append(lines, b.String())
		}
	}

	return strings.Join(lines, "\n")
}

func renderCellLine(mark entity.CellMark, middle bool) string {
	glyph := " "
	if middle {
		switch mark {
		case entity.PlayerOneMark:
			glyph = "X"
		case entity.PlayerTwoMark:
			glyph = "O"
		}
	}

	pad := strings.Repeat(" ", cellWidth/2)
	content := pad + glyph + strings.Repeat(" ", cellWidth-len(pad)-1)

	switch mark {
	case entity.PlayerOneMark:
		return playerOneStyle(content)
	case entity.PlayerTwoMark:
		return playerTwoStyle(content)
	default:
		return content
	}
}
