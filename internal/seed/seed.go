package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	Category    string
	PriceCents  int64
	Image       string
	Available   bool
}

type staffSeed struct {
	Email    string
	Name     string
	Role     string
	Password string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Bolinho de Bacalhau",
			Description: "Porção com 8 unidades",
			Category:    "Entradas",
			PriceCents:  3290,
			Image:       "https://images.restaurante.local/bolinho-bacalhau.jpg",
			Available:   true,
		},
		{
			Name:        "Feijoada Completa",
			Description: "Serve duas pessoas, acompanha arroz, couve e farofa",
			Category:    "Pratos Principais",
			PriceCents:  8990,
			Image:       "https://images.restaurante.local/feijoada.jpg",
			Available:   true,
		},
		{
			Name:        "Moqueca de Peixe",
			Description: "Peixe branco, leite de coco e dendê",
			Category:    "Pratos Principais",
			PriceCents:  7450,
			Image:       "https://images.restaurante.local/moqueca.jpg",
			Available:   true,
		},
		{
			Name:        "Caipirinha",
			Description: "Limão, cachaça artesanal",
			Category:    "Bebidas",
			PriceCents:  1800,
			Image:       "https://images.restaurante.local/caipirinha.jpg",
			Available:   true,
		},
		{
			Name:        "Suco de Laranja",
			Description: "Natural, 400ml",
			Category:    "Bebidas",
			PriceCents:  890,
			Image:       "https://images.restaurante.local/suco-laranja.jpg",
			Available:   true,
		},
		{
			Name:        "Pudim de Leite",
			Description: "Receita da casa",
			Category:    "Sobremesas",
			PriceCents:  1290,
			Image:       "https://images.restaurante.local/pudim.jpg",
			Available:   true,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	staff := []staffSeed{
		{Email: "garcom@restaurante.com", Name: "João Garçom", Role: "waiter", Password: "garcom123"},
		{Email: "gerente@restaurante.com", Name: "Ana Gerente", Role: "manager", Password: "gerente123"},
	}

	for _, s := range staff {
		if err := upsertStaff(ctx, pool, s); err != nil {
			return fmt.Errorf("upsert staff %s: %w", s.Email, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, category, price_cents, image, available)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (category, name) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    image = EXCLUDED.image,
    available = EXCLUDED.available
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Category, p.PriceCents, p.Image, p.Available)
	return err
}

func upsertStaff(ctx context.Context, pool *pgxpool.Pool, s staffSeed) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO staff (email, name, role, password_hash)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE
SET name = EXCLUDED.name,
    role = EXCLUDED.role
`
	_, err = pool.Exec(ctx, q, s.Email, s.Name, s.Role, string(hash))
	return err
}
