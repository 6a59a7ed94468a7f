package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"digital-menu/internal/domain"
	"digital-menu/internal/notify"
)

var (
	// ErrEmptyCart rejects a checkout with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingTable rejects a checkout without a destination table.
	ErrMissingTable = errors.New("table number is required")
	// ErrCheckoutInFlight rejects a checkout while another one is submitting.
	ErrCheckoutInFlight = errors.New("checkout already in flight")
)

// SubmissionClient is the kitchen-facing boundary: a single asynchronous
// call with a binary success/failure outcome.
type SubmissionClient interface {
	CreateOrder(ctx context.Context, order domain.OrderSnapshot) error
}

type cartStore interface {
	Snapshot() domain.CartState
	Reset(ctx context.Context)
}

// Orchestrator gate-keeps the transition from "cart being assembled" to
// "order submitted": it validates readiness, snapshots the cart, submits
// exactly once and reduces the outcome back into the store.
type Orchestrator struct {
	cart   cartStore
	client SubmissionClient
	sink   notify.Sink
	logger *log.Logger

	mu   sync.Mutex
	busy bool
}

func New(cart cartStore, client SubmissionClient, sink notify.Sink, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Orchestrator{
		cart:   cart,
		client: client,
		sink:   sink,
		logger: logger,
	}
}

// Input carries the per-checkout fields the waiter typed in.
type Input struct {
	CustomerName string
	Notes        string
}

// Checkout runs one submission attempt. Validation failures and submission
// failures both surface as notifications and leave the cart untouched; only
// a confirmed submission clears it (table number included). There is no
// retry: the caller issues a new Checkout to try again.
func (o *Orchestrator) Checkout(ctx context.Context, in Input) (*domain.OrderSnapshot, error) {
	if !o.acquire() {
		return nil, ErrCheckoutInFlight
	}
	defer o.release()

	state := o.cart.Snapshot()

	if state.IsEmpty() {
		o.sink.Emit(notify.Event{
			Title:       "Carrinho vazio",
			Description: "Adicione itens ao carrinho antes de finalizar o pedido.",
			Severity:    notify.SeverityError,
		})
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(state.TableNumber) == "" {
		o.sink.Emit(notify.Event{
			Title:       "Mesa obrigatória",
			Description: "Por favor, informe o número da mesa.",
			Severity:    notify.SeverityError,
		})
		return nil, ErrMissingTable
	}

	order := buildOrder(state, in)

	// The cart stays mutable while we wait; the order owns its own copy and
	// is never re-read from the store after this point.
	if err := o.client.CreateOrder(ctx, order); err != nil {
		o.logger.Printf("checkout: submission failed table=%s total_cents=%d: %v", order.TableNumber, order.TotalCents, err)
		o.sink.Emit(notify.Event{
			Title:       "Erro ao processar pedido",
			Description: "Ocorreu um erro ao enviar o pedido. Tente novamente.",
			Severity:    notify.SeverityError,
		})
		return nil, fmt.Errorf("submit order: %w", err)
	}

	o.cart.Reset(ctx)
	o.sink.Emit(notify.Event{
		Title:       "Pedido realizado com sucesso!",
		Description: fmt.Sprintf("Pedido de %s para a mesa %s foi enviado para a cozinha.", formatCents(order.TotalCents), order.TableNumber),
		Severity:    notify.SeverityNormal,
	})
	o.logger.Printf("checkout: order submitted table=%s items=%d total_cents=%d", order.TableNumber, len(order.Items), order.TotalCents)
	return &order, nil
}

func (o *Orchestrator) acquire() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.busy {
		return false
	}
	o.busy = true
	return true
}

func (o *Orchestrator) release() {
	o.mu.Lock()
	o.busy = false
	o.mu.Unlock()
}

func buildOrder(state domain.CartState, in Input) domain.OrderSnapshot {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		name = domain.DefaultCustomerName
	}
	items := make([]domain.OrderItem, 0, len(state.Lines))
	for _, line := range state.Lines {
		items = append(items, domain.OrderItem{
			ProductID:  line.ProductID,
			Name:       line.Name,
			PriceCents: line.UnitPriceCents,
			Quantity:   line.Quantity,
		})
	}
	return domain.OrderSnapshot{
		TableNumber:  state.TableNumber,
		CustomerName: name,
		Items:        items,
		TotalCents:   state.TotalCents,
		Notes:        in.Notes,
		Status:       domain.OrderStatusPreparing,
	}
}

func formatCents(cents int64) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}
