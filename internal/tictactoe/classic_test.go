package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// playIndices - applies a sequence of moves that must all succeed.
func playIndices(t *testing.T, game *Game, indices ...int) {
	t.Helper()

	for _, index := range indices {
		require.NoError(t, game.MoveIndex(index), "move %d", index)
	}
}

func TestNewGame(t *testing.T) {
	t.Run("X moves first by default", func(t *testing.T) {
		// Given: a new game without a configured first player
		game := NewGame(entity.Empty)

		// Then: the board is empty and X is to move
		assert.Equal(t, entity.Board{}, game.Board())
		assert.Equal(t, entity.X, game.CurrentPlayer())
		assert.Equal(t, entity.X, game.FirstPlayer())
		assert.Equal(t, entity.StatusInProgress, game.Status())
		assert.False(t, game.Locked())
		assert.Equal(t, 0, game.Moves())
		assert.Equal(t, "X to move", game.StatusMessage())
	})

	t.Run("O can move first", func(t *testing.T) {
		// Given: a new game with O as first player
		game := NewGame(entity.O)

		// Then: O is to move
		assert.Equal(t, entity.O, game.CurrentPlayer())
		assert.Equal(t, "O to move", game.StatusMessage())
	})
}

func TestGame_Move(t *testing.T) {
	t.Run("Successful turn toggles the player", func(t *testing.T) {
		// Given: a new game
		game := NewGame(entity.X)

		// When: X plays the center
		err := game.Move(entity.Coord{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the mark is placed and O is to move
		assert.Equal(t, entity.X, game.Board()[1][1])
		assert.Equal(t, entity.O, game.CurrentPlayer())
		assert.Equal(t, 1, game.Moves())
	})

	t.Run("X wins on the top row", func(t *testing.T) {
		// Given: a new game
		game := NewGame(entity.X)

		// When: moves 0,3,1,4,2 are played
		playIndices(t, game, 0, 3, 1, 4, 2)

		// Then: X wins with line 0,1,2 and the game is locked
		line, ok := game.WinningLine()
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, line.Indices())
		assert.Equal(t, entity.StatusWin, game.Status())
		assert.Equal(t, entity.X, game.Winner())
		assert.Equal(t, "X wins", game.StatusMessage())
		assert.True(t, game.Locked())
		assert.Equal(t, entity.Empty, game.CurrentPlayer())
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a new game
		game := NewGame(entity.X)

		// When: moves 0,1,2,4,3,5,7,6,8 are played
		playIndices(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is a locked tie
		_, ok := game.WinningLine()
		assert.False(t, ok)
		assert.Equal(t, entity.StatusTie, game.Status())
		assert.Equal(t, entity.Empty, game.Winner())
		assert.Equal(t, "Tie game", game.StatusMessage())
		assert.True(t, game.Locked())
		assert.Equal(t, 9, game.Moves())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X holds cell 0
		game := NewGame(entity.X)
		playIndices(t, game, 0)
		before := *game

		// When: O tries the same cell
		err := game.MoveIndex(0)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on out of range cell", func(t *testing.T) {
		// Given: a new game
		game := NewGame(entity.X)
		before := *game

		for _, index := range []int{-1, 9, 20} {
			// When: an index outside the board is played
			err := game.MoveIndex(index)

			// Then: ErrOutOfRange is returned and the state is unchanged
			require.ErrorIs(t, err, apperror.ErrOutOfRange)
			assert.Equal(t, before, *game)
		}

		err := game.Move(entity.Coord{Row: 3, Col: 0})
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Error on move after the game is finished", func(t *testing.T) {
		// Given: a game that X has won
		game := NewGame(entity.X)
		playIndices(t, game, 0, 3, 1, 4, 2)
		before := *game

		// When: another move is attempted, even out of range
		err := game.MoveIndex(5)
		errRange := game.MoveIndex(42)

		// Then: ErrGameLocked is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrGameLocked)
		require.ErrorIs(t, errRange, apperror.ErrGameLocked)
		assert.Equal(t, before, *game)
	})

	t.Run("Cells are write-once", func(t *testing.T) {
		// Given: a game in progress
		game := NewGame(entity.X)
		playIndices(t, game, 4, 0, 8)
		snapshot := game.Board()

		// When: every occupied cell is played again
		for _, index := range []int{0, 4, 8} {
			require.Error(t, game.MoveIndex(index))
		}

		// Then: no cell has changed
		assert.Equal(t, snapshot, game.Board())
	})
}

func TestGame_Reset(t *testing.T) {
	t.Run("Reset with O as first player", func(t *testing.T) {
		// Given: a game with moves played
		game := NewGame(entity.X)
		playIndices(t, game, 0, 1)

		// When: the game is reset with O first
		game.Reset(entity.O)

		// Then: the board is empty and O is to move
		assert.Equal(t, entity.Board{}, game.Board())
		assert.Equal(t, entity.O, game.CurrentPlayer())
		assert.Equal(t, entity.O, game.FirstPlayer())
		assert.Equal(t, entity.StatusInProgress, game.Status())
		assert.Equal(t, 0, game.Moves())
	})

	t.Run("Reset without a player keeps the configured one", func(t *testing.T) {
		// Given: a finished game where O was first
		game := NewGame(entity.O)
		playIndices(t, game, 0, 3, 1, 4, 2)

		// When: the game is reset without a first player
		game.Reset(entity.Empty)

		// Then: O is still first and the game is unlocked
		assert.Equal(t, entity.O, game.CurrentPlayer())
		assert.False(t, game.Locked())
		_, ok := game.WinningLine()
		assert.False(t, ok)
	})
}

func TestGame_SwapFirstPlayer(t *testing.T) {
	// Given: a game in progress with X first
	game := NewGame(entity.X)
	playIndices(t, game, 0)

	// When: the first player is swapped
	game.SwapFirstPlayer()

	// Then: O starts on an empty board
	assert.Equal(t, entity.O, game.FirstPlayer())
	assert.Equal(t, entity.O, game.CurrentPlayer())
	assert.Equal(t, entity.Board{}, game.Board())

	game.SwapFirstPlayer()
	assert.Equal(t, entity.X, game.CurrentPlayer())
}
