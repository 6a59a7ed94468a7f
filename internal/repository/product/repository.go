package product

import (
	"context"

	"digital-menu/internal/domain"
)

// ListFilter narrows a menu listing. Zero value lists everything.
type ListFilter struct {
	Category      string
	Query         string
	OnlyAvailable bool
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}
