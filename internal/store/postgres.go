package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edooconnect/studycost/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is the production Store backed by a pgx connection pool.
// Wizard answers and rendered reports are stored as JSONB.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes and verifies a connection pool.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Migrate creates the tables the store needs. It is idempotent and safe to
// run on every startup.
func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	is_premium BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS simulations (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
	wizard_data JSONB NOT NULL,
	report_data JSONB,
	status TEXT NOT NULL DEFAULT 'draft',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// CreateUser inserts a new user row.
func (p *Postgres) CreateUser(ctx context.Context, email, name, passwordHash string) (*domain.User, error) {
	user := &domain.User{Email: email, Name: name, PasswordHash: passwordHash}
	err := p.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash)
		 VALUES (lower($1), $2, $3)
		 RETURNING id, email, created_at`,
		email, name, passwordHash,
	).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return p.scanUser(p.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, is_premium, created_at
		 FROM users WHERE id = $1`, id))
}

// GetUserByEmail fetches a user by email.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.scanUser(p.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, is_premium, created_at
		 FROM users WHERE email = lower($1)`, email))
}

func (p *Postgres) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.IsPremium, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// SetPremium toggles the premium entitlement flag.
func (p *Postgres) SetPremium(ctx context.Context, id uuid.UUID, premium bool) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE users SET is_premium = $1 WHERE id = $2`, premium, id)
	if err != nil {
		return fmt.Errorf("failed to update premium flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveWizard upserts the user's single simulation row with fresh wizard
// answers, clearing any previously generated report.
func (p *Postgres) SaveWizard(ctx context.Context, userID uuid.UUID, profile domain.Profile) (*domain.Simulation, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	sim := &domain.Simulation{UserID: userID, Profile: profile, Status: domain.SimulationDraft}
	err = p.pool.QueryRow(ctx,
		`INSERT INTO simulations (user_id, wizard_data, report_data, status)
		 VALUES ($1, $2, NULL, 'draft')
		 ON CONFLICT (user_id)
		 DO UPDATE SET wizard_data = $2, report_data = NULL, status = 'draft', updated_at = NOW()
		 RETURNING id, updated_at`,
		userID, profileJSON,
	).Scan(&sim.ID, &sim.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save wizard data: %w", err)
	}
	return sim, nil
}

// GetSimulation fetches the user's latest simulation.
func (p *Postgres) GetSimulation(ctx context.Context, userID uuid.UUID) (*domain.Simulation, error) {
	var (
		sim         domain.Simulation
		profileJSON []byte
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id, user_id, wizard_data, report_data, status, updated_at
		 FROM simulations WHERE user_id = $1`, userID,
	).Scan(&sim.ID, &sim.UserID, &profileJSON, &sim.ReportData, &sim.Status, &sim.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch simulation: %w", err)
	}
	if err := json.Unmarshal(profileJSON, &sim.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard data: %w", err)
	}
	return &sim, nil
}

// SaveReport stores the rendered report and marks the simulation completed.
func (p *Postgres) SaveReport(ctx context.Context, userID uuid.UUID, report json.RawMessage) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE simulations
		 SET report_data = $1, status = 'completed', updated_at = NOW()
		 WHERE user_id = $2`,
		report, userID)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
