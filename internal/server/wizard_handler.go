package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/edooconnect/studycost/internal/calculation"
	"github.com/edooconnect/studycost/internal/domain"
)

type wizardResponse struct {
	Simulation   *domain.Simulation `json:"simulation"`
	Completeness int                `json:"completeness"`
}

// handleSaveWizard upserts the caller's wizard answers. Saving resets the
// simulation to a draft, so any previously generated report is dropped and
// its cache entry invalidated.
func (s *Server) handleSaveWizard(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sim, err := s.store.SaveWizard(r.Context(), userID, profile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := s.cache.Delete(r.Context(), reportCacheKey(userID)); err != nil {
		log.Printf("report cache invalidation failed for %s: %v", userID, err)
	}

	writeJSON(w, http.StatusOK, wizardResponse{
		Simulation:   sim,
		Completeness: calculation.WizardCompleteness(sim.Profile),
	})
}

func (s *Server) handleGetWizard(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	sim, err := s.store.GetSimulation(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wizardResponse{
		Simulation:   sim,
		Completeness: calculation.WizardCompleteness(sim.Profile),
	})
}

func reportCacheKey(userID uuid.UUID) string {
	return "report:" + userID.String()
}
