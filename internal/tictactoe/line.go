package tictactoe

import "github.com/rocketscienceinc/tictactoe/internal/entity"

// WinLines lists every line in scan order: rows, then columns, then diagonals.
var WinLines = [8]entity.Line{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// DetectWin - returns the owner of the first complete line in WinLines order.
func DetectWin(board entity.Board) (entity.Cell, entity.Line, bool) {
	for _, line := range WinLines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != entity.Empty && a == b && b == c {
			return a, line, true
		}
	}

	return entity.Empty, entity.Line{}, false
}

// IsFull - reports whether no cell is empty.
func IsFull(board entity.Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == entity.Empty {
				return false
			}
		}
	}

	return true
}
