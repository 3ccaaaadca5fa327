// cmd/verinews/health.go
package main

import "net/http"

// handleHealth reports service status, metrics and recent errors.
// GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snapshot := s.metrics.Snapshot(s.cache)

	response := map[string]interface{}{
		"status":       "OK",
		"version":      AppVersion,
		"metrics":      snapshot,
		"aiConfigured": s.ai != nil,
		"recentErrors": s.errors.Recent(10),
	}

	respondWithJSON(w, http.StatusOK, response)
}
