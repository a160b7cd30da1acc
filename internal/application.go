package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/transport/desktop"
	"github.com/rocketscienceinc/tictactoe-desktop/transport/terminal"
)

// Shell is a presentation front end that drives the game session until it is closed.
type Shell interface {
	Run(ctx context.Context) error
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	session := NewSession(logger, conf)
	session.Restart()

	gameShell, err := NewShell(logger, conf, session)
	if err != nil {
		return err
	}

	log.Info("Starting shell", "shell", conf.Shell)

	if err = gameShell.Run(ctx); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrShellClosed, err)
	}

	log.Info("Shell closed, shutting down")

	return nil
}

// NewSession - builds the single game session driven by the shell.
func NewSession(logger *slog.Logger, conf *config.Config) *usecase.GameSession {
	policy := usecase.GameOverPolicy{
		RevealDelay:     conf.GameOver.RevealDelay,
		MessageDuration: conf.GameOver.MessageDuration,
	}

	return usecase.NewGameSession(logger, entity.NewGameState(), conf.Board.Viewport(), policy, nil)
}

// NewShell - picks the presentation shell named in the config.
func NewShell(logger *slog.Logger, conf *config.Config, session *usecase.GameSession) (Shell, error) {
	switch conf.Shell {
	case config.ShellDesktop:
		return desktop.New(logger, session, conf.Board.Geometry(), conf.Window.Title), nil
	case config.ShellTerminal:
		return terminal.New(logger, session, conf.Board.PixelSize, conf.Window.Title), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownShell, conf.Shell)
	}
}
