package terminal

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Shell runs the game in the terminal with mouse support.
type Shell struct {
	logger *slog.Logger
	model  *Model
}

func New(logger *slog.Logger, session session, pixelSize float64, title string) *Shell {
	return &Shell{
		logger: logger.With("component", "terminal"),
		model:  NewModel(session, pixelSize, title),
	}
}

// Run - starts the terminal program and blocks until the user quits or ctx is cancelled.
func (that *Shell) Run(ctx context.Context) error {
	program := tea.NewProgram(that.model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			that.logger.Info("context cancelled, quitting")
			program.Quit()
		case <-done:
		}
	}()

	that.logger.Info("starting terminal shell")

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal shell failed: %w", err)
	}

	that.logger.Info("terminal shell stopped")

	return nil
}
