package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const (
	Size  = 3
	Cells = Size * Size
)

// Coord addresses a square (or a sub-board) by zero-based row and column.
type Coord struct {
	Row int
	Col int
}

// CoordFromIndex - converts a row-major index 0..8 into a coordinate.
func CoordFromIndex(index int) (Coord, error) {
	if index < 0 || index >= Cells {
		return Coord{}, fmt.Errorf("%w: index %d", apperror.ErrOutOfRange, index)
	}

	return Coord{Row: index / Size, Col: index % Size}, nil
}

func (that Coord) Index() int {
	return that.Row*Size + that.Col
}

func (that Coord) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Line is three coordinates forming a row, column or diagonal.
type Line [3]Coord

// Indices - returns the row-major indices of the line.
func (that Line) Indices() [3]int {
	return [3]int{that[0].Index(), that[1].Index(), that[2].Index()}
}
