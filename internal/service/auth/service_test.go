package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"digital-menu/internal/domain"
)

type stubRepo struct {
	member *domain.Staff
	err    error
}

func (s *stubRepo) Create(_ context.Context, _ domain.Staff) (*domain.Staff, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) GetByEmail(_ context.Context, _ string) (*domain.Staff, error) {
	return s.member, s.err
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Staff, error) {
	return s.member, s.err
}

func seededRepo(t *testing.T, password string) *stubRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &stubRepo{member: &domain.Staff{
		ID:           "s1",
		Email:        "joao@restaurante.com",
		Name:         "João",
		Role:         domain.RoleWaiter,
		PasswordHash: string(hash),
	}}
}

func TestLoginIssuesValidSession(t *testing.T) {
	svc := New(seededRepo(t, "segredo123"))

	member, token, err := svc.Login(context.Background(), "JOAO@restaurante.com", "segredo123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if member.Name != "João" || token == "" {
		t.Fatalf("unexpected login result member=%+v token=%q", member, token)
	}

	session, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if session.StaffID != "s1" || session.Name != "João" || session.Role != domain.RoleWaiter {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := New(seededRepo(t, "segredo123"))

	_, _, err := svc.Login(context.Background(), "joao@restaurante.com", "errada")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := New(&stubRepo{err: domain.ErrNotFound})

	_, _, err := svc.Login(context.Background(), "ghost@restaurante.com", "x")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := New(seededRepo(t, "segredo123"))

	_, token, err := svc.Login(context.Background(), "joao@restaurante.com", "segredo123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Logout(token)

	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateUnknownToken(t *testing.T) {
	svc := New(seededRepo(t, "segredo123"))
	if _, err := svc.Validate("nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
