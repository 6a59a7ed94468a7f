package catalog

import (
	"context"
	"strings"

	"digital-menu/internal/domain"
	productrepo "digital-menu/internal/repository/product"
)

// Service exposes the menu to the presentation layer. Products it hands out
// are trusted by the cart: price, name and image are copied into the line
// at add-time.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns orderable menu entries, optionally narrowed by category and
// a case-insensitive name/description search.
func (s *Service) List(ctx context.Context, category, query string) ([]domain.Product, error) {
	return s.repo.List(ctx, productrepo.ListFilter{
		Category:      strings.TrimSpace(category),
		Query:         strings.TrimSpace(query),
		OnlyAvailable: true,
	})
}

// Categories returns the distinct menu sections.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Get resolves a product for ordering. Unavailable items are withheld so a
// stale menu page cannot add them to the cart.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Available {
		return nil, domain.ErrUnavailable
	}
	return p, nil
}

// SetAvailability toggles whether an item can be ordered (manager action).
func (s *Service) SetAvailability(ctx context.Context, id string, available bool) error {
	return s.repo.SetAvailability(ctx, id, available)
}
