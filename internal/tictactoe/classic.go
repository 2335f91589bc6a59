package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Game is a classic 3x3 game. The zero value is not usable, see NewGame.
type Game struct {
	board   entity.Board
	first   entity.Cell
	current entity.Cell
	status  string
	winner  entity.Cell
	line    entity.Line
	moves   int
}

// NewGame - creates an empty game; anything other than O as first player means X.
func NewGame(first entity.Cell) *Game {
	game := &Game{}
	game.first = entity.X
	game.Reset(first)

	return game
}

// Reset - clears the board. Empty keeps the configured first player.
func (that *Game) Reset(first entity.Cell) {
	if first.IsPlayer() {
		that.first = first
	}

	that.board = entity.Board{}
	that.current = that.first
	that.status = entity.StatusInProgress
	that.winner = entity.Empty
	that.line = entity.Line{}
	that.moves = 0
}

// SwapFirstPlayer - flips the configured first player and starts over.
func (that *Game) SwapFirstPlayer() {
	that.Reset(that.first.Opponent())
}

// MoveIndex - plays the current player at a row-major index 0..8.
func (that *Game) MoveIndex(index int) error {
	if that.Locked() {
		return apperror.ErrGameLocked
	}

	coord, err := entity.CoordFromIndex(index)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return that.Move(coord)
}

// Move - plays the current player at the given square.
func (that *Game) Move(coord entity.Coord) error {
	if err := that.validateMove(coord); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.put(coord, that.current)

	if !that.Locked() {
		that.current = that.current.Opponent()
	}

	return nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(coord entity.Coord) error {
	if that.Locked() {
		return apperror.ErrGameLocked
	}

	if !coord.InRange() {
		return fmt.Errorf("%w: cell %s", apperror.ErrOutOfRange, coord)
	}

	if that.board.At(coord) != entity.Empty {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, coord)
	}

	return nil
}

// put - writes a mark and re-evaluates the result without touching the turn order.
func (that *Game) put(coord entity.Coord, mark entity.Cell) {
	that.board[coord.Row][coord.Col] = mark
	that.moves++

	if winner, line, ok := DetectWin(that.board); ok {
		that.status = entity.StatusWin
		that.winner = winner
		that.line = line
		return
	}

	if IsFull(that.board) {
		that.status = entity.StatusTie
	}
}

func (that *Game) Board() entity.Board {
	return that.board
}

// CurrentPlayer - returns the player to move, or Empty once the game is locked.
func (that *Game) CurrentPlayer() entity.Cell {
	if that.Locked() {
		return entity.Empty
	}

	return that.current
}

func (that *Game) FirstPlayer() entity.Cell {
	return that.first
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) Winner() entity.Cell {
	return that.winner
}

// WinningLine - returns the completed line when the game is won.
func (that *Game) WinningLine() (entity.Line, bool) {
	return that.line, that.status == entity.StatusWin
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) Locked() bool {
	return that.status != entity.StatusInProgress
}

func (that *Game) StatusMessage() string {
	return statusMessage(that.status, that.winner, that.current)
}

func statusMessage(status string, winner, current entity.Cell) string {
	switch status {
	case entity.StatusWin:
		return winner.String() + " wins"
	case entity.StatusTie:
		return "Tie game"
	default:
		return current.String() + " to move"
	}
}
