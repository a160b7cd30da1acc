package suite

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/input"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

// Epoch is the instant every suite clock starts at.
var Epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// Clock is a manually driven time source.
type Clock struct {
	now time.Time
}

func (that *Clock) Now() time.Time {
	return that.now
}

// Add moves the clock forward and returns the new time.
func (that *Clock) Add(d time.Duration) time.Time {
	that.now = that.now.Add(d)
	return that.now
}

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Clock   *Clock
	Game    *entity.GameState
	Session *usecase.GameSession
}

// New builds a session on the default 600x600 viewport with the default game-over timings.
func New(t *testing.T) *Suite {
	t.Helper()

	return NewWithPolicy(t, usecase.DefaultGameOverPolicy())
}

func NewWithPolicy(t *testing.T, policy usecase.GameOverPolicy) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	clock := &Clock{now: Epoch}
	game := entity.NewGameState()
	session := usecase.NewGameSession(logger, game, input.DefaultViewport(), policy, clock.Now)

	return &Suite{
		T:       t,
		Logger:  logger,
		Clock:   clock,
		Game:    game,
		Session: session,
	}
}

// CellCentre returns board pixel coordinates in the middle of cell.
func CellCentre(cell int) (float64, float64) {
	viewport := input.DefaultViewport()

	x := float64(cell%entity.BoardSide)*viewport.CellPixelSize + viewport.CellPixelSize/2
	y := float64(cell/entity.BoardSide)*viewport.CellPixelSize + viewport.CellPixelSize/2

	return x, y
}

// ClickCells clicks the centre of each cell in order and returns the results.
func (that *Suite) ClickCells(cells ...int) []entity.PlacementResult {
	that.Helper()

	results := make([]entity.PlacementResult, 0, len(cells))
	for _, cell := range cells {
		results = append(results, that.Session.PointerUp(CellCentre(cell)))
	}

	return results
}
