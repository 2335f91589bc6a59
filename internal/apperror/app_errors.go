package apperror

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrOutOfRange       = errors.New("coordinate is out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrBoardNotActive   = errors.New("board is not active")
	ErrSubBoardFinished = errors.New("board is already finished")
	ErrGameLocked       = errors.New("game is already finished")
)

// IsRulesError - reports whether err belongs to the move/request taxonomy and is safe to show to a client.
func IsRulesError(err error) bool {
	for _, target := range []error{
		ErrInvalidInput,
		ErrOutOfRange,
		ErrCellOccupied,
		ErrBoardNotActive,
		ErrSubBoardFinished,
		ErrGameLocked,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
