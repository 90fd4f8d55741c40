package mines

import "errors"

var (
	ErrInvalidParams  = errors.New("invalid game parameters")
	ErrNoOpening      = errors.New("board has no cell without adjacent mines")
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrNotStarted     = errors.New("game has not started")
	ErrAlreadyStarted = errors.New("game has already started")
	ErrGameOver       = errors.New("game is over")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
