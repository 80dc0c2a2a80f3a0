// internal/cart/redis.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisPersister stores each snapshot as a JSON string value.
type RedisPersister struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisPersister connects to redisURL and pings it. A zero ttl keeps keys
// until they are deleted.
func NewRedisPersister(ctx context.Context, redisURL string, ttl time.Duration) (*RedisPersister, *redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisPersisterWithClient(client, ttl), client, nil
}

func NewRedisPersisterWithClient(client redis.Cmdable, ttl time.Duration) *RedisPersister {
	return &RedisPersister{client: client, ttl: ttl}
}

func (p *RedisPersister) Load(ctx context.Context, key string) (State, bool, error) {
	data, err := p.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	state, err := decodeState(data)
	if err != nil {
		return State{}, false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return state, true, nil
}

func (p *RedisPersister) Save(ctx context.Context, key string, state State) error {
	data, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := p.client.Set(ctx, key, data, p.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (p *RedisPersister) Delete(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
