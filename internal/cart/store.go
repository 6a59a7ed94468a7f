package cart

import (
	"context"
	"io"
	"log"
	"sync"

	"digital-menu/internal/domain"
	"digital-menu/internal/storage"
)

// Store owns the canonical cart state for the session. Every committed
// mutation recomputes the total and mirrors the full state to the
// persister before returning; the in-memory state stays authoritative
// when the mirror write fails.
type Store struct {
	mu        sync.Mutex
	state     domain.CartState
	persister storage.CartPersister
	logger    *log.Logger
}

// NewStore builds a Store seeded from the last persisted snapshot. A
// persister read failure is logged and the session starts empty.
func NewStore(ctx context.Context, persister storage.CartPersister, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	state, err := persister.Load(ctx)
	if err != nil {
		logger.Printf("cart store: load failed, starting empty: %v", err)
		state = storage.DefaultState()
	}
	normalize(&state)
	return &Store{
		state:     state,
		persister: persister,
		logger:    logger,
	}
}

// AddLine merges the product into the cart. An existing line for the same
// product gains quantity; otherwise a new line is appended carrying the
// product's display metadata as of now. Quantity must be positive; callers
// passing less than 1 get a no-op rather than a broken invariant.
func (s *Store) AddLine(ctx context.Context, product domain.Product, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.state.Lines {
		if s.state.Lines[i].ProductID == product.ID {
			s.state.Lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.state.Lines = append(s.state.Lines, domain.CartLine{
			ProductID:      product.ID,
			Name:           product.Name,
			Category:       product.Category,
			UnitPriceCents: product.PriceCents,
			Image:          product.Image,
			Quantity:       quantity,
		})
	}
	s.commit(ctx)
}

// RemoveLine drops the line for the product if present; absent is a no-op.
func (s *Store) RemoveLine(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Lines {
		if s.state.Lines[i].ProductID == productID {
			s.state.Lines = append(s.state.Lines[:i], s.state.Lines[i+1:]...)
			break
		}
	}
	s.commit(ctx)
}

// SetQuantity overwrites the line's quantity. Zero or negative behaves as
// RemoveLine, so the cart never holds a line with quantity below 1.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveLine(ctx, productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Lines {
		if s.state.Lines[i].ProductID == productID {
			s.state.Lines[i].Quantity = quantity
			break
		}
	}
	s.commit(ctx)
}

// SetTableNumber overwrites the destination table. No validation here: an
// unset table is legitimate while the cart is still being assembled, and
// checkout is where presence is enforced.
func (s *Store) SetTableNumber(ctx context.Context, tableNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.TableNumber = tableNumber
	s.commit(ctx)
}

// Clear empties the lines and total but keeps the table number, so a
// mis-ordered cart can be redone without re-entering the table.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Lines = nil
	s.commit(ctx)
}

// Reset empties the cart including the table number. Used after a
// successful submission, when the table's order cycle is complete.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Lines = nil
	s.state.TableNumber = ""
	s.commit(ctx)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// ItemCount returns the summed quantity across lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.state.Lines {
		count += line.Quantity
	}
	return count
}

// commit recomputes the derived total and mirrors the state. Callers must
// hold s.mu. A mirror failure degrades to in-memory only for this session.
func (s *Store) commit(ctx context.Context) {
	s.state.TotalCents = sumLines(s.state.Lines)
	if err := s.persister.Save(ctx, s.state.Clone()); err != nil {
		s.logger.Printf("cart store: persist failed: %v", err)
	}
}

func sumLines(lines []domain.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.UnitPriceCents * int64(line.Quantity)
	}
	return total
}

// normalize repairs a loaded snapshot: lines with quantity below 1 are
// dropped and the total is recomputed from the lines.
func normalize(state *domain.CartState) {
	kept := state.Lines[:0]
	for _, line := range state.Lines {
		if line.Quantity >= 1 {
			kept = append(kept, line)
		}
	}
	state.Lines = kept
	state.TotalCents = sumLines(state.Lines)
}
