package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"digital-menu/internal/domain"
	staffrepo "digital-menu/internal/repository/staff"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Session identifies a signed-in staff member. Its display name is what the
// checkout flow offers as customer-name default before the placeholder.
type Session struct {
	StaffID   string
	Name      string
	Role      string
	ExpiresAt time.Time
}

// Service handles staff login and opaque session tokens. Sessions live in
// memory for the process lifetime, matching the client-session scope of the
// cart itself; this is UI glue, not a security layer.
type Service struct {
	repo       staffrepo.Repository
	sessions   *sessionManager
	sessionTTL time.Duration
}

func New(repo staffrepo.Repository) *Service {
	return &Service{
		repo:       repo,
		sessions:   newSessionManager(),
		sessionTTL: 12 * time.Hour,
	}
}

// Login validates credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Staff, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	member, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(Session{
		StaffID: member.ID,
		Name:    member.Name,
		Role:    member.Role,
	}, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return member, token, nil
}

// Validate resolves a session token. Expired or unknown tokens fail.
func (s *Service) Validate(token string) (Session, error) {
	session, ok := s.sessions.Validate(token)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	return session, nil
}

// Logout drops the session; unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.sessions.Drop(token)
}
