package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// UltimateGame is a 3x3 grid of classic sub-boards. The square played inside a
// sub-board selects the sub-board the opponent has to play next.
type UltimateGame struct {
	boards    [entity.Size][entity.Size]Game
	outcomes  [entity.Size][entity.Size]entity.Outcome
	current   entity.Cell
	active    entity.Coord
	hasActive bool
	moves     int
}

// NewUltimateGame - creates an empty game with X to move on any sub-board.
func NewUltimateGame() *UltimateGame {
	game := &UltimateGame{current: entity.X}

	for row := range game.boards {
		for col := range game.boards[row] {
			game.boards[row][col] = *NewGame(entity.X)
		}
	}

	return game
}

// Place - plays the current player at square `cell` of sub-board `board`.
// A rejected move leaves the game untouched.
func (that *UltimateGame) Place(board, cell entity.Coord) error {
	if err := that.validatePlace(board, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	// the sub-board takes whatever mark we hand it, its own turn order is not used
	sub := &that.boards[board.Row][board.Col]
	sub.put(cell, that.current)

	switch sub.Status() {
	case entity.StatusWin:
		that.outcomes[board.Row][board.Col] = entity.OutcomeOf(sub.Winner())
	case entity.StatusTie:
		that.outcomes[board.Row][board.Col] = entity.OutcomeTie
	}

	that.active = cell
	that.hasActive = !that.outcomes[cell.Row][cell.Col].IsSet()
	that.current = that.current.Opponent()
	that.moves++

	return nil
}

func (that *UltimateGame) validatePlace(board, cell entity.Coord) error {
	if !board.InRange() {
		return fmt.Errorf("%w: board %s", apperror.ErrOutOfRange, board)
	}

	if !cell.InRange() {
		return fmt.Errorf("%w: cell %s", apperror.ErrOutOfRange, cell)
	}

	if that.IsOver() {
		return apperror.ErrGameLocked
	}

	if that.hasActive && that.active != board {
		return fmt.Errorf("%w: board %s, must play %s", apperror.ErrBoardNotActive, board, that.active)
	}

	if that.outcomes[board.Row][board.Col].IsSet() {
		return fmt.Errorf("%w: board %s", apperror.ErrSubBoardFinished, board)
	}

	if that.boards[board.Row][board.Col].board.At(cell) != entity.Empty {
		return fmt.Errorf("%w: board %s cell %s", apperror.ErrCellOccupied, board, cell)
	}

	return nil
}

// ActiveBoard - returns the sub-board the next move is forced into, if any.
func (that *UltimateGame) ActiveBoard() (entity.Coord, bool) {
	return that.active, that.hasActive
}

// CurrentPlayer - returns the player to move, or Empty once the game is over.
func (that *UltimateGame) CurrentPlayer() entity.Cell {
	if that.IsOver() {
		return entity.Empty
	}

	return that.current
}

func (that *UltimateGame) SubBoard(board entity.Coord) entity.Board {
	return that.boards[board.Row][board.Col].Board()
}

func (that *UltimateGame) Outcome(board entity.Coord) entity.Outcome {
	return that.outcomes[board.Row][board.Col]
}

func (that *UltimateGame) Moves() int {
	return that.moves
}

// metaBoard - projects sub-board outcomes onto a classic board, ties count as empty.
func (that *UltimateGame) metaBoard() entity.Board {
	var meta entity.Board
	for row := range that.outcomes {
		for col, outcome := range that.outcomes[row] {
			meta[row][col] = outcome.Cell()
		}
	}

	return meta
}

// GlobalWinner - returns the owner of three sub-boards in a line.
func (that *UltimateGame) GlobalWinner() (entity.Cell, entity.Line, bool) {
	return DetectWin(that.metaBoard())
}

// IsOver - true on a global winner or once every sub-board is decided.
func (that *UltimateGame) IsOver() bool {
	if _, _, ok := that.GlobalWinner(); ok {
		return true
	}

	for row := range that.outcomes {
		for _, outcome := range that.outcomes[row] {
			if !outcome.IsSet() {
				return false
			}
		}
	}

	return true
}

func (that *UltimateGame) StatusMessage() string {
	if winner, _, ok := that.GlobalWinner(); ok {
		return statusMessage(entity.StatusWin, winner, entity.Empty)
	}

	if that.IsOver() {
		return statusMessage(entity.StatusTie, entity.Empty, entity.Empty)
	}

	return statusMessage(entity.StatusInProgress, entity.Empty, that.current)
}
