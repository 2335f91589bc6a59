package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var ErrEmptyChannel = errors.New("redis channel name is empty")

// Client publishes game events to a redis pub/sub channel.
type Client struct {
	client  *redis.Client
	channel string
}

// New - connects to redis and checks the connection.
func New(ctx context.Context, addr, channel string) (*Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(conn, channel)
}

// NewWithClient - wraps an already connected client.
func NewWithClient(client *redis.Client, channel string) (*Client, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	return &Client{client: client, channel: channel}, nil
}

// Publish - sends the event as JSON to the configured channel.
func (that *Client) Publish(ctx context.Context, event *entity.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subscribe - listens on the configured channel. The caller must close the subscription.
func (that *Client) Subscribe(ctx context.Context) (*redis.PubSub, error) {
	sub := that.client.Subscribe(ctx, that.channel)

	// wait for the subscription confirmation so no event published afterwards is lost
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", that.channel, err)
	}

	return sub, nil
}

func (that *Client) Close() error {
	return that.client.Close()
}
