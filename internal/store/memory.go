package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/google/uuid"
)

// Memory is an in-memory Store for tests and local runs without a database.
type Memory struct {
	mu          sync.RWMutex
	users       map[uuid.UUID]*domain.User
	simulations map[uuid.UUID]*domain.Simulation // keyed by user id
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:       make(map[uuid.UUID]*domain.User),
		simulations: make(map[uuid.UUID]*domain.Simulation),
	}
}

// CreateUser registers a new user. Emails are matched case-insensitively.
func (m *Memory) CreateUser(_ context.Context, email, name, passwordHash string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrEmailTaken
		}
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	m.users[user.ID] = user

	copied := *user
	return &copied, nil
}

// GetUser fetches a user by id.
func (m *Memory) GetUser(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// GetUserByEmail fetches a user by email, case-insensitively.
func (m *Memory) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// SetPremium toggles the premium entitlement flag.
func (m *Memory) SetPremium(_ context.Context, id uuid.UUID, premium bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	user.IsPremium = premium
	return nil
}

// SaveWizard upserts the user's simulation with fresh wizard answers.
func (m *Memory) SaveWizard(_ context.Context, userID uuid.UUID, profile domain.Profile) (*domain.Simulation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return nil, ErrNotFound
	}

	sim, ok := m.simulations[userID]
	if !ok {
		sim = &domain.Simulation{ID: uuid.New(), UserID: userID}
		m.simulations[userID] = sim
	}
	sim.Profile = profile
	sim.ReportData = nil
	sim.Status = domain.SimulationDraft
	sim.UpdatedAt = time.Now().UTC()

	copied := *sim
	return &copied, nil
}

// GetSimulation fetches the user's latest simulation.
func (m *Memory) GetSimulation(_ context.Context, userID uuid.UUID) (*domain.Simulation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sim, ok := m.simulations[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *sim
	return &copied, nil
}

// SaveReport stores the rendered report and marks the simulation completed.
func (m *Memory) SaveReport(_ context.Context, userID uuid.UUID, report json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sim, ok := m.simulations[userID]
	if !ok {
		return ErrNotFound
	}
	sim.ReportData = report
	sim.Status = domain.SimulationCompleted
	sim.UpdatedAt = time.Now().UTC()
	return nil
}
