package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var ErrQuit = errors.New("quit requested")

// Move - a zero-based sub-board and square pair.
type Move struct {
	Board entity.Coord
	Cell  entity.Coord
}

// ParseMove - parses "br bc r c" or, when a board is active, the "r c" shorthand.
// Numbers are one-based on input.
func ParseMove(text string, active entity.Coord, hasActive bool) (Move, error) {
	fields := strings.Fields(text)

	if len(fields) == 1 {
		switch strings.ToLower(fields[0]) {
		case "q", "quit", "exit":
			return Move{}, ErrQuit
		}
	}

	values := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := parseOrdinal(field)
		if err != nil {
			return Move{}, err
		}

		values = append(values, value)
	}

	switch {
	case len(values) == 4:
		return Move{
			Board: entity.Coord{Row: values[0], Col: values[1]},
			Cell:  entity.Coord{Row: values[2], Col: values[3]},
		}, nil
	case len(values) == 2 && hasActive:
		return Move{
			Board: active,
			Cell:  entity.Coord{Row: values[0], Col: values[1]},
		}, nil
	default:
		return Move{}, fmt.Errorf("%w: expected 4 numbers, or 2 on an active board, got %d", apperror.ErrInvalidInput, len(values))
	}
}

func parseOrdinal(field string) (int, error) {
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, field)
		}
	}

	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	if value < 1 || value > entity.Size {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", apperror.ErrInvalidInput, value, entity.Size)
	}

	return value - 1, nil
}
