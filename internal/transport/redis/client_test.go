package redis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

func TestNewWithClient(t *testing.T) {
	// When: no channel name is given
	_, err := NewWithClient(nil, "")

	// Then: ErrEmptyChannel is returned
	require.ErrorIs(t, err, ErrEmptyChannel)
}

func TestClient_Publish(t *testing.T) {
	ctx, st := suite.New(t)

	publisher, err := NewWithClient(st.Storage, "tictactoe:test")
	require.NoError(t, err)

	// Given: a subscriber on the channel
	sub, err := publisher.Subscribe(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Close() })

	// When: an event is published
	event := &entity.Event{
		Action: entity.EventMove,
		Game: &entity.Snapshot{
			GameID:        "123",
			Board:         entity.Board{{entity.X}},
			CurrentPlayer: entity.O,
			FirstPlayer:   entity.X,
			Moves:         1,
			Status:        entity.StatusInProgress,
			StatusMessage: "O to move",
		},
	}
	require.NoError(t, publisher.Publish(ctx, event))

	// Then: the subscriber receives the same event
	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var received entity.Event
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &received))
	assert.Equal(t, event.Action, received.Action)
	assert.Equal(t, event.Game.GameID, received.Game.GameID)
	assert.Equal(t, event.Game.Board, received.Game.Board)
	assert.Equal(t, entity.O, received.Game.CurrentPlayer)
	assert.Nil(t, received.Game.WinningLine)
}
