package cart

import (
	"context"
	"errors"
	"testing"

	"digital-menu/internal/domain"
)

type stubPersister struct {
	loadState domain.CartState
	loadErr   error
	saveErr   error
	saves     []domain.CartState
}

func (s *stubPersister) Load(_ context.Context) (domain.CartState, error) {
	return s.loadState, s.loadErr
}

func (s *stubPersister) Save(_ context.Context, state domain.CartState) error {
	s.saves = append(s.saves, state)
	return s.saveErr
}

func testProduct(id string, priceCents int64) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       "Item " + id,
		Category:   "Pratos Principais",
		PriceCents: priceCents,
		Available:  true,
	}
}

func newTestStore(t *testing.T, p *stubPersister) *Store {
	t.Helper()
	return NewStore(context.Background(), p, nil)
}

func TestAddLineMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &stubPersister{})

	store.AddLine(ctx, testProduct("p1", 1000), 2)
	store.AddLine(ctx, testProduct("p1", 1000), 1)

	state := store.Snapshot()
	if len(state.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(state.Lines))
	}
	if state.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", state.Lines[0].Quantity)
	}
	if state.TotalCents != 3000 {
		t.Fatalf("expected total 3000, got %d", state.TotalCents)
	}
}

func TestTotalTracksEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &stubPersister{})

	store.AddLine(ctx, testProduct("p1", 550), 1)
	if got := store.Snapshot().TotalCents; got != 550 {
		t.Fatalf("after first add: expected 550, got %d", got)
	}

	store.AddLine(ctx, testProduct("p2", 325), 2)
	if got := store.Snapshot().TotalCents; got != 1200 {
		t.Fatalf("after second add: expected 1200, got %d", got)
	}

	store.SetQuantity(ctx, "p2", 4)
	if got := store.Snapshot().TotalCents; got != 1850 {
		t.Fatalf("after set quantity: expected 1850, got %d", got)
	}

	store.RemoveLine(ctx, "p1")
	if got := store.Snapshot().TotalCents; got != 1300 {
		t.Fatalf("after remove: expected 1300, got %d", got)
	}
}

func TestSetQuantityOverwritesNotIncrements(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &stubPersister{})

	store.AddLine(ctx, testProduct("p1", 100), 5)
	store.SetQuantity(ctx, "p1", 2)

	state := store.Snapshot()
	if state.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", state.Lines[0].Quantity)
	}
	if state.TotalCents != 200 {
		t.Fatalf("expected total 200, got %d", state.TotalCents)
	}
}

func TestSetQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		ctx := context.Background()
		store := newTestStore(t, &stubPersister{})

		store.AddLine(ctx, testProduct("p1", 100), 2)
		store.SetQuantity(ctx, "p1", quantity)

		state := store.Snapshot()
		if len(state.Lines) != 0 {
			t.Fatalf("quantity=%d: expected empty cart, got %d lines", quantity, len(state.Lines))
		}
		if state.TotalCents != 0 {
			t.Fatalf("quantity=%d: expected total 0, got %d", quantity, state.TotalCents)
		}
	}
}

func TestRemoveLineAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &stubPersister{})

	store.AddLine(ctx, testProduct("p1", 100), 1)
	store.RemoveLine(ctx, "missing")

	state := store.Snapshot()
	if len(state.Lines) != 1 || state.TotalCents != 100 {
		t.Fatalf("unexpected state after removing absent line: %+v", state)
	}
}

func TestAddLineNonPositiveQuantityIsNoop(t *testing.T) {
	ctx := context.Background()
	p := &stubPersister{}
	store := newTestStore(t, p)

	store.AddLine(ctx, testProduct("p1", 100), 0)
	store.AddLine(ctx, testProduct("p1", 100), -1)

	if got := store.Snapshot(); len(got.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", got)
	}
	if len(p.saves) != 0 {
		t.Fatalf("expected no persisted writes, got %d", len(p.saves))
	}
}

func TestClearPreservesTableNumber(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &stubPersister{})

	store.SetTableNumber(ctx, "7")
	store.AddLine(ctx, testProduct("p1", 2000), 1)
	store.Clear(ctx)

	state := store.Snapshot()
	if len(state.Lines) != 0 || state.TotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", state)
	}
	if state.TableNumber != "7" {
		t.Fatalf("expected table preserved, got %q", state.TableNumber)
	}
}

func TestResetClearsTableNumber(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &stubPersister{})

	store.SetTableNumber(ctx, "7")
	store.AddLine(ctx, testProduct("p1", 2000), 1)
	store.Reset(ctx)

	state := store.Snapshot()
	if len(state.Lines) != 0 || state.TotalCents != 0 || state.TableNumber != "" {
		t.Fatalf("expected fully reset cart, got %+v", state)
	}
}

func TestEveryMutationWritesThrough(t *testing.T) {
	ctx := context.Background()
	p := &stubPersister{}
	store := newTestStore(t, p)

	store.AddLine(ctx, testProduct("p1", 100), 1)
	store.SetTableNumber(ctx, "4")
	store.SetQuantity(ctx, "p1", 3)
	store.RemoveLine(ctx, "p1")
	store.Clear(ctx)

	if len(p.saves) != 5 {
		t.Fatalf("expected 5 persisted writes, got %d", len(p.saves))
	}
	last := p.saves[len(p.saves)-1]
	if len(last.Lines) != 0 || last.TotalCents != 0 || last.TableNumber != "4" {
		t.Fatalf("last write does not match final state: %+v", last)
	}
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	p := &stubPersister{saveErr: errors.New("quota exceeded")}
	store := newTestStore(t, p)

	store.AddLine(ctx, testProduct("p1", 750), 2)

	state := store.Snapshot()
	if len(state.Lines) != 1 || state.TotalCents != 1500 {
		t.Fatalf("mutation should survive persist failure, got %+v", state)
	}
}

func TestNewStoreSeedsFromPersistedSnapshot(t *testing.T) {
	p := &stubPersister{loadState: domain.CartState{
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Item p1", UnitPriceCents: 500, Quantity: 2},
		},
		TotalCents:  999, // stale on purpose, must be recomputed
		TableNumber: "12",
	}}
	store := newTestStore(t, p)

	state := store.Snapshot()
	if state.TotalCents != 1000 {
		t.Fatalf("expected recomputed total 1000, got %d", state.TotalCents)
	}
	if state.TableNumber != "12" {
		t.Fatalf("expected table 12, got %q", state.TableNumber)
	}
}

func TestNewStoreDropsInvalidPersistedLines(t *testing.T) {
	p := &stubPersister{loadState: domain.CartState{
		Lines: []domain.CartLine{
			{ProductID: "p1", UnitPriceCents: 500, Quantity: 0},
			{ProductID: "p2", UnitPriceCents: 300, Quantity: 1},
		},
	}}
	store := newTestStore(t, p)

	state := store.Snapshot()
	if len(state.Lines) != 1 || state.Lines[0].ProductID != "p2" {
		t.Fatalf("expected only valid line kept, got %+v", state.Lines)
	}
	if state.TotalCents != 300 {
		t.Fatalf("expected total 300, got %d", state.TotalCents)
	}
}

func TestNewStoreLoadErrorStartsEmpty(t *testing.T) {
	p := &stubPersister{loadErr: errors.New("redis down")}
	store := newTestStore(t, p)

	if state := store.Snapshot(); len(state.Lines) != 0 || state.TotalCents != 0 {
		t.Fatalf("expected empty start, got %+v", state)
	}
}

func TestItemCountSumsQuantities(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &stubPersister{})

	store.AddLine(ctx, testProduct("p1", 100), 2)
	store.AddLine(ctx, testProduct("p2", 200), 3)

	if got := store.ItemCount(); got != 5 {
		t.Fatalf("expected item count 5, got %d", got)
	}
}

func TestSnapshotIsDetachedFromLiveState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, &stubPersister{})

	store.AddLine(ctx, testProduct("p1", 100), 1)
	snap := store.Snapshot()
	snap.Lines[0].Quantity = 99

	if got := store.Snapshot().Lines[0].Quantity; got != 1 {
		t.Fatalf("snapshot mutation leaked into store: quantity %d", got)
	}
}
