package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/pkg/latency"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/roster"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/slot"
)

const (
	AdminLanding   = "/admin"
	AccountLanding = "/account"
)

type LoginResult struct {
	Success    bool   `json:"success"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// Manager owns the session lifecycle for every client context: credential
// checks against the roster, persistence into the slot, logout.
type Manager struct {
	roster *roster.Roster
	slot   slot.SessionSlot
	delay  latency.Latency
	now    func() time.Time
}

func NewManager(r *roster.Roster, s slot.SessionSlot, delay latency.Latency) *Manager {
	return &Manager{
		roster: r,
		slot:   s,
		delay:  delay,
		now:    time.Now,
	}
}

// WithClock overrides the id clock; tests inject deterministic time.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Current restores the session persisted for the client context.
// Absent or unreadable slots mean unauthenticated, never an error.
func (m *Manager) Current(ctx context.Context, clientID string) (*domain.User, error) {
	user, err := m.slot.Load(ctx, clientID)
	if err != nil {
		if errors.Is(err, slot.ErrNoSession) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Login checks the credential pair against the roster after the simulated
// processing delay. A mismatch is an ordinary negative result.
func (m *Manager) Login(ctx context.Context, clientID, email, password string) (LoginResult, error) {
	if err := m.delay.Wait(ctx); err != nil {
		return LoginResult{}, err
	}

	user, err := m.roster.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, roster.ErrInvalidCredentials) {
			return LoginResult{Success: false}, nil
		}
		return LoginResult{}, err
	}

	if err := m.slot.Save(ctx, clientID, user); err != nil {
		return LoginResult{}, err
	}

	redirect := AccountLanding
	if user.Role == domain.RoleAdmin {
		redirect = AdminLanding
	}
	log.Printf("session established for %s (role=%s)", user.Email, user.Role)
	return LoginResult{Success: true, RedirectTo: redirect}, nil
}

// Register creates a customer account and logs it in immediately. Email
// format and password strength are the caller's checks, not this store's.
func (m *Manager) Register(ctx context.Context, clientID, email, password, name string) (bool, error) {
	if err := m.delay.Wait(ctx); err != nil {
		return false, err
	}

	user := domain.User{
		ID:    strconv.FormatInt(m.now().UnixMilli(), 10),
		Email: email,
		Name:  name,
		Role:  domain.RoleCustomer,
	}

	if err := m.roster.Add(user, password); err != nil {
		if errors.Is(err, roster.ErrEmailTaken) {
			return false, nil
		}
		return false, err
	}

	if err := m.slot.Save(ctx, clientID, &user); err != nil {
		return false, err
	}
	return true, nil
}

// Logout destroys the session. No confirmation step, immediate.
func (m *Manager) Logout(ctx context.Context, clientID string) error {
	return m.slot.Clear(ctx, clientID)
}
