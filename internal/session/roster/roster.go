// Package roster holds the fixed mock credential list the prototype
// authenticates against. There is no real user database.
package roster

import (
	"errors"
	"sync"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// MockUsers is the seed roster: one customer and one admin.
func MockUsers() []domain.MockUser {
	return []domain.MockUser{
		{
			User: domain.User{
				ID:    "1",
				Email: "teste@teste.com",
				Name:  "Cliente Teste",
				Role:  domain.RoleCustomer,
			},
			Password: "teste",
		},
		{
			User: domain.User{
				ID:    "2",
				Email: "admin@admin.com",
				Name:  "Administrador",
				Role:  domain.RoleAdmin,
			},
			Password: "admin",
		},
	}
}

// Roster is the in-memory credential set: the seed users plus anyone
// registered during the process lifetime.
type Roster struct {
	mu    sync.RWMutex
	users []domain.MockUser
}

func New() *Roster {
	return &Roster{users: MockUsers()}
}

// Authenticate requires an exact match on both email and password.
func (r *Roster) Authenticate(email, password string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			user := u.User
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Add registers a new user, failing when the email is already present.
func (r *Roster) Add(user domain.User, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}

	r.users = append(r.users, domain.MockUser{User: user, Password: password})
	return nil
}

// HasEmail reports whether the email exists in the roster.
func (r *Roster) HasEmail(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return true
		}
	}
	return false
}
