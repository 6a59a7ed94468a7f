package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/redis/go-redis/v9"

	"digital-menu/internal/domain"
)

// RedisPersister keeps the cart snapshot as a single JSON record under a
// well-known key. Overwrites are last-writer-wins; no TTL, the record lives
// until the next Save replaces it.
type RedisPersister struct {
	client *redis.Client
	key    string
	logger *log.Logger
}

func NewRedisPersister(client *redis.Client, sessionKey string, logger *log.Logger) *RedisPersister {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if sessionKey == "" {
		sessionKey = "default"
	}
	return &RedisPersister{
		client: client,
		key:    cartKey(sessionKey),
		logger: logger,
	}
}

// Load returns the last persisted state. A missing key or a record that no
// longer parses yields the default empty state, never an error that would
// block startup.
func (p *RedisPersister) Load(ctx context.Context) (domain.CartState, error) {
	data, err := p.client.Get(ctx, p.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return DefaultState(), nil
	}
	if err != nil {
		return DefaultState(), fmt.Errorf("redis get %s: %w", p.key, err)
	}

	var state domain.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		p.logger.Printf("cart storage: discarding corrupt record key=%s error=%v", p.key, err)
		return DefaultState(), nil
	}
	return state, nil
}

// Save overwrites the persisted snapshot with the full current state.
func (p *RedisPersister) Save(ctx context.Context, state domain.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal cart state: %w", err)
	}
	if err := p.client.Set(ctx, p.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", p.key, err)
	}
	return nil
}

func cartKey(sessionKey string) string {
	return fmt.Sprintf("cart:%s", sessionKey)
}
