package apperror

import "errors"

var (
	ErrInvalidSize    = errors.New("board size must be between 3 and 10")
	ErrMalformedInput = errors.New("input must be in <row>,<col> format")
	ErrOutOfRange     = errors.New("position does not fit on the grid")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrGameFinished   = errors.New("game is already finished")
	ErrBotInvalidMove = errors.New("bot proposed an invalid move")
)

// IsInvalidMove reports whether err is a recoverable move validation error.
func IsInvalidMove(err error) bool {
	return errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrCellOccupied)
}
