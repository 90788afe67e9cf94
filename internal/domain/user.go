package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is an account in the surrounding service. The premium flag selects
// which report tier the report layer returns.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	IsPremium    bool      `json:"isPremium"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Simulation statuses.
const (
	SimulationDraft     = "draft"
	SimulationCompleted = "completed"
)

// Simulation holds a user's latest wizard answers and, once generated, the
// latest report. The engine itself never reads or writes these records.
type Simulation struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	Profile    Profile         `json:"profile"`
	ReportData json.RawMessage `json:"reportData,omitempty"`
	Status     string          `json:"status"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
