package server

import (
	"log"
	"net/http"

	"github.com/google/uuid"
)

type upgradeResponse struct {
	IsPremium bool `json:"isPremium"`
}

// handleUpgrade marks the caller premium. The cached report is dropped so
// the next generation produces the full analysis.
func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	if err := s.store.SetPremium(r.Context(), userID, true); err != nil {
		writeServiceError(w, err)
		return
	}

	if err := s.cache.Delete(r.Context(), reportCacheKey(userID)); err != nil {
		log.Printf("report cache invalidation failed for %s: %v", userID, err)
	}

	writeJSON(w, http.StatusOK, upgradeResponse{IsPremium: true})
}
