package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/edooconnect/studycost/internal/calculation"
)

// handleGenerateReport runs the full estimation pipeline over the caller's
// saved wizard answers. Free users get the basic report, premium users the
// full analysis. The rendered JSON is persisted and cached.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	sim, err := s.store.GetSimulation(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if sim.Profile.Country == "" || sim.Profile.City == "" {
		writeServiceError(w, calculation.ErrIncompleteProfile)
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	analysis, err := s.engine.Analyze(sim.Profile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var report interface{}
	if user.IsPremium {
		report = calculation.BuildPremiumReport(analysis, sim.Profile, true, s.now().UTC())
	} else {
		report = calculation.BuildBasicReport(analysis)
	}

	payload, err := json.Marshal(report)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	if err := s.store.SaveReport(r.Context(), userID, payload); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := s.cache.Set(r.Context(), reportCacheKey(userID), string(payload)); err != nil {
		log.Printf("report cache write failed for %s: %v", userID, err)
	}

	writeRawJSON(w, http.StatusOK, payload)
}

// handleGetReport serves the latest generated report, cache first.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	if cached, ok := s.cache.Get(r.Context(), reportCacheKey(userID)); ok {
		writeRawJSON(w, http.StatusOK, []byte(cached))
		return
	}

	sim, err := s.store.GetSimulation(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(sim.ReportData) == 0 {
		writeServiceError(w, ErrNoReport)
		return
	}

	if err := s.cache.Set(r.Context(), reportCacheKey(userID), string(sim.ReportData)); err != nil {
		log.Printf("report cache write failed for %s: %v", userID, err)
	}

	writeRawJSON(w, http.StatusOK, sim.ReportData)
}

func writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
