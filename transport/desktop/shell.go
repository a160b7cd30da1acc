package desktop

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/layout"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

type session interface {
	PointerUp(x, y float64) entity.PlacementResult
	Tick() bool
	View() usecase.Frame
}

// Shell runs the game in a native window.
type Shell struct {
	logger *slog.Logger

	ctx      context.Context
	session  session
	geometry layout.Geometry
	title    string

	message      string
	messageImage *ebiten.Image
}

func New(logger *slog.Logger, session session, geometry layout.Geometry, title string) *Shell {
	return &Shell{
		logger:   logger.With("component", "desktop"),
		ctx:      context.Background(),
		session:  session,
		geometry: geometry,
		title:    title,
	}
}

// Run - opens the window and blocks until it is closed or ctx is cancelled.
func (that *Shell) Run(ctx context.Context) error {
	that.ctx = ctx

	size := that.boardPixels()
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(that.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	that.logger.Info("opening window", "title", that.title, "size", size)

	if err := ebiten.RunGame(that); err != nil {
		return fmt.Errorf("desktop shell failed: %w", err)
	}

	that.logger.Info("window closed")

	return nil
}

func (that *Shell) Update() error {
	if that.ctx.Err() != nil {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		that.session.PointerUp(float64(x), float64(y))
	}

	that.session.Tick()

	return nil
}

func (that *Shell) Draw(screen *ebiten.Image) {
	screen.Fill(layout.Background)

	frame := that.session.View()
	if frame.ShowsMessage() {
		that.drawMessage(screen, frame.Message)
		return
	}

	for i, cell := range that.geometry.Cells() {
		fillRect(screen, cell, layout.CellColor(frame.Board[i]))
	}

	for _, line := range that.geometry.GridLines() {
		fillRect(screen, line, layout.GridLine)
	}
}

func (that *Shell) Layout(_, _ int) (int, int) {
	size := that.boardPixels()
	return size, size
}

func (that *Shell) boardPixels() int {
	return int(math.Ceil(that.geometry.BoardSize))
}

// drawMessage renders the bitmap font once per message and scales it up to the board.
func (that *Shell) drawMessage(screen *ebiten.Image, message string) {
	if message == "" {
		return
	}

	face := basicfont.Face7x13
	bounds := text.BoundString(face, message)

	if that.messageImage == nil || that.message != message {
		img := ebiten.NewImage(bounds.Dx(), bounds.Dy())
		text.Draw(img, message, face, -bounds.Min.X, -bounds.Min.Y, layout.Text)

		that.message = message
		that.messageImage = img
	}

	scale, x, y := that.geometry.MessagePlacement(bounds.Dx(), bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)

	screen.DrawImage(that.messageImage, op)
}

func fillRect(screen *ebiten.Image, rect layout.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(rect.X0), float32(rect.Y0), float32(rect.Width()), float32(rect.Height()), clr, false)
}
