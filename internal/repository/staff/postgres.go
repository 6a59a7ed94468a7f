package staff

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"digital-menu/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const staffColumns = `id::text, email, name, role, password_hash, created_at`

func (r *postgresRepo) Create(ctx context.Context, member domain.Staff) (*domain.Staff, error) {
	const q = `
INSERT INTO staff (email, name, role, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING ` + staffColumns

	var out domain.Staff
	err := r.pool.QueryRow(ctx, q, member.Email, member.Name, member.Role, member.PasswordHash).
		Scan(&out.ID, &out.Email, &out.Name, &out.Role, &out.PasswordHash, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("staff repo: create email=%s error=%v", member.Email, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	const q = `SELECT ` + staffColumns + ` FROM staff WHERE email = $1`
	return r.scanOne(ctx, q, email)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	const q = `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	return r.scanOne(ctx, q, id)
}

func (r *postgresRepo) scanOne(ctx context.Context, q string, arg string) (*domain.Staff, error) {
	var out domain.Staff
	err := r.pool.QueryRow(ctx, q, arg).
		Scan(&out.ID, &out.Email, &out.Name, &out.Role, &out.PasswordHash, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("staff repo: query error=%v", err)
		return nil, err
	}
	return &out, nil
}
