package storage

import (
	"context"

	"digital-menu/internal/domain"
)

// CartPersister mirrors the cart to durable storage. Memory stays the
// source of truth: Load is read once at startup and Save is a write-through
// after every mutation.
type CartPersister interface {
	Load(ctx context.Context) (domain.CartState, error)
	Save(ctx context.Context, state domain.CartState) error
}

// DefaultState is what a fresh session starts from when nothing was
// persisted or the stored value cannot be parsed.
func DefaultState() domain.CartState {
	return domain.CartState{}
}
