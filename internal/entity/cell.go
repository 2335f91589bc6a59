package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Cell is the content of a single square. X and O double as the player marks.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

const (
	markX = "X"
	markO = "O"
)

func (that Cell) String() string {
	switch that {
	case X:
		return markX
	case O:
		return markO
	default:
		return ""
	}
}

// IsPlayer - reports whether the cell holds a player mark.
func (that Cell) IsPlayer() bool {
	return that == X || that == O
}

// Opponent - returns the other player mark; Empty stays Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseCell - parses "X" or "O" (case-insensitive) into a player mark.
func ParseCell(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case markX:
		return X, nil
	case markO:
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidInput, s)
	}
}

// MarshalJSON encodes a mark as "X"/"O" and an empty cell as null.
func (that Cell) MarshalJSON() ([]byte, error) {
	if !that.IsPlayer() {
		return []byte("null"), nil
	}

	return json.Marshal(that.String())
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = Empty
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	cell, err := ParseCell(s)
	if err != nil {
		return err
	}

	*that = cell

	return nil
}
