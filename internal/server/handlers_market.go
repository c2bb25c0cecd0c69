package server

import "net/http"

// handleMarketSummary handles GET /api/market/summary.
func (s *Server) handleMarketSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"summary": s.app.RecommendationService.FetchMarketSummary(r.Context()),
	})
}
