package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/input"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/layout"
)

const (
	ShellDesktop  = "desktop"
	ShellTerminal = "terminal"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFile  string   `yaml:"log-file" env:"TTT_LOG_FILE"`
	Shell    string   `yaml:"shell" env:"TTT_SHELL" env-default:"desktop"`
	Window   Window   `yaml:"window"`
	Board    Board    `yaml:"board"`
	GameOver GameOver `yaml:"game-over"`
}

type Window struct {
	Title string `yaml:"title" env:"TTT_WINDOW_TITLE" env-default:"Tic Tac Toe"`
}

type Board struct {
	PixelSize     float64 `yaml:"pixel-size" env:"TTT_BOARD_PIXEL_SIZE" env-default:"600"`
	CellPixelSize float64 `yaml:"cell-pixel-size" env:"TTT_BOARD_CELL_PIXEL_SIZE" env-default:"200"`
	LineWidth     float64 `yaml:"line-width" env:"TTT_BOARD_LINE_WIDTH" env-default:"10"`
}

type GameOver struct {
	RevealDelay     time.Duration `yaml:"reveal-delay" env:"TTT_REVEAL_DELAY" env-default:"250ms"`
	MessageDuration time.Duration `yaml:"message-duration" env:"TTT_MESSAGE_DURATION" env-default:"2s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// LoadEnv - builds the configuration from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// Validate - checks that the board and timing settings are usable.
func (that *Config) Validate() error {
	if that.Shell != ShellDesktop && that.Shell != ShellTerminal {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownShell, that.Shell)
	}

	if _, err := that.SlogLevel(); err != nil {
		return err
	}

	if err := that.Board.validate(); err != nil {
		return err
	}

	if that.GameOver.RevealDelay < 0 || that.GameOver.MessageDuration < 0 {
		return fmt.Errorf("%w: durations must not be negative", apperror.ErrInvalidTiming)
	}

	return nil
}

// SlogLevel - converts the configured log level name.
func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", apperror.ErrUnknownLevel, that.LogLevel)
	}
}

// LogSink - opens the log destination: the log file when set, stdout for the
// desktop shell, and nothing for the terminal shell, which owns stdout.
func (that *Config) LogSink() (io.Writer, func() error, error) {
	if that.LogFile != "" {
		file, err := os.OpenFile(that.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		return file, file.Close, nil
	}

	noop := func() error { return nil }

	if that.Shell == ShellTerminal {
		return io.Discard, noop, nil
	}

	return os.Stdout, noop, nil
}

func (that *Board) validate() error {
	switch {
	case that.PixelSize <= 0:
		return fmt.Errorf("%w: pixel size %v", apperror.ErrInvalidLayout, that.PixelSize)
	case that.CellPixelSize <= 0:
		return fmt.Errorf("%w: cell pixel size %v", apperror.ErrInvalidLayout, that.CellPixelSize)
	case that.CellPixelSize*3 > that.PixelSize:
		return fmt.Errorf("%w: three cells of %v do not fit in %v", apperror.ErrInvalidLayout, that.CellPixelSize, that.PixelSize)
	case that.LineWidth < 0 || that.LineWidth >= that.CellPixelSize:
		return fmt.Errorf("%w: line width %v", apperror.ErrInvalidLayout, that.LineWidth)
	}

	return nil
}

// Viewport - returns the pointer mapping geometry of the board.
func (that *Board) Viewport() input.Viewport {
	return input.Viewport{
		BoardPixelSize: that.PixelSize,
		CellPixelSize:  that.CellPixelSize,
	}
}

// Geometry - returns the drawing geometry of the board.
func (that *Board) Geometry() layout.Geometry {
	return layout.Geometry{
		BoardSize: that.PixelSize,
		CellSize:  that.CellPixelSize,
		LineWidth: that.LineWidth,
	}
}
