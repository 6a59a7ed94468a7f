package domain

import "time"

// Staff roles. Managers can do everything a waiter can plus toggle
// menu availability.
const (
	RoleWaiter  = "waiter"
	RoleManager = "manager"
)

// Staff represents a restaurant employee who can sign in to the menu client.
type Staff struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
