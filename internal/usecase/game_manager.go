package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// EventPublisher receives a copy of the game after every successful change.
type EventPublisher interface {
	Publish(ctx context.Context, event *entity.Event) error
}

// GameManager owns one classic game. Every read-modify-write happens under mu.
type GameManager struct {
	logger    *slog.Logger
	publisher EventPublisher

	mu     sync.Mutex
	game   *tictactoe.Game
	gameID string
}

// NewGameManager - creates the game. publisher may be nil.
func NewGameManager(logger *slog.Logger, firstPlayer entity.Cell, publisher EventPublisher) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		publisher: publisher,

		game:   tictactoe.NewGame(firstPlayer),
		gameID: uuid.NewString(),
	}
}

// State - returns the current snapshot.
func (that *GameManager) State(_ context.Context) *entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshotLocked()
}

// MakeTurn - plays the current player at index 0..8.
func (that *GameManager) MakeTurn(ctx context.Context, index int) (*entity.Snapshot, error) {
	log := that.logger.With("method", "MakeTurn")

	that.mu.Lock()
	if err := that.game.MoveIndex(index); err != nil {
		that.mu.Unlock()
		log.Debug("move rejected", "index", index, "error", err)

		return nil, fmt.Errorf("failed make turn: %w", err)
	}
	snapshot := that.snapshotLocked()
	that.mu.Unlock()

	if snapshot.IsFinished() {
		log.Info("game finished", "game_id", snapshot.GameID, "status", snapshot.Status, "winner", snapshot.Winner.String())
	}

	that.publish(ctx, entity.EventMove, snapshot)

	return snapshot, nil
}

// Reset - starts a new game. Empty keeps the configured first player.
func (that *GameManager) Reset(ctx context.Context, firstPlayer entity.Cell) *entity.Snapshot {
	that.mu.Lock()
	that.game.Reset(firstPlayer)
	that.gameID = uuid.NewString()
	snapshot := that.snapshotLocked()
	that.mu.Unlock()

	that.publish(ctx, entity.EventReset, snapshot)

	return snapshot
}

// SwapFirst - flips the first player and starts a new game.
func (that *GameManager) SwapFirst(ctx context.Context) *entity.Snapshot {
	that.mu.Lock()
	that.game.SwapFirstPlayer()
	that.gameID = uuid.NewString()
	snapshot := that.snapshotLocked()
	that.mu.Unlock()

	that.publish(ctx, entity.EventSwapFirst, snapshot)

	return snapshot
}

func (that *GameManager) snapshotLocked() *entity.Snapshot {
	snapshot := &entity.Snapshot{
		GameID:        that.gameID,
		Board:         that.game.Board(),
		CurrentPlayer: that.game.CurrentPlayer(),
		FirstPlayer:   that.game.FirstPlayer(),
		Winner:        that.game.Winner(),
		Locked:        that.game.Locked(),
		Moves:         that.game.Moves(),
		Status:        that.game.Status(),
		StatusMessage: that.game.StatusMessage(),
	}

	if line, ok := that.game.WinningLine(); ok {
		indices := line.Indices()
		snapshot.WinningLine = &indices
	}

	return snapshot
}

// publish - a failed publish is logged, the move itself already happened.
func (that *GameManager) publish(ctx context.Context, action string, snapshot *entity.Snapshot) {
	if that.publisher == nil {
		return
	}

	if err := that.publisher.Publish(ctx, &entity.Event{Action: action, Game: snapshot}); err != nil {
		that.logger.Error("failed to publish event", "action", action, "error", err)
	}
}
