package apperror

import "errors"

var (
	ErrUnknownShell  = errors.New("unknown shell")
	ErrInvalidLayout = errors.New("invalid board layout")
	ErrInvalidTiming = errors.New("invalid game over timing")
	ErrShellClosed   = errors.New("shell closed")
	ErrUnknownLevel  = errors.New("unknown log level")
)
