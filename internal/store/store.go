// Package store provides persistence for users and simulations. The engine
// itself is stateless; this package is the collaborator that keeps the
// latest wizard answers and the latest generated report per user.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a user or simulation does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")
)

// Store is the persistence surface the HTTP layer depends on.
type Store interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	SetPremium(ctx context.Context, id uuid.UUID, premium bool) error

	// SaveWizard upserts the user's single simulation record with the latest
	// wizard answers and resets it to draft.
	SaveWizard(ctx context.Context, userID uuid.UUID, profile domain.Profile) (*domain.Simulation, error)
	GetSimulation(ctx context.Context, userID uuid.UUID) (*domain.Simulation, error)
	SaveReport(ctx context.Context, userID uuid.UUID, report json.RawMessage) error
}
