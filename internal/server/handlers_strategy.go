package server

import (
	"net/http"

	"github.com/bobmcallan/stockwise/internal/common"
	"github.com/bobmcallan/stockwise/internal/models"
	"github.com/bobmcallan/stockwise/internal/services/strategy"
)

// handleStrategies handles GET /api/strategies.
// Anonymous callers get the catalog with nothing selected.
func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	var sel strategy.Selection
	if id := common.ResolveSessionID(r.Context()); id != "" {
		if sess, err := s.app.Sessions.Get(id); err == nil {
			sel = sess.Selection()
		}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"strategies": strategy.Options(sel),
	})
}

// handleStrategyToggle handles POST /api/strategies/toggle.
// Body: {"strategy": "<key, id or label>"}.
func (s *Server) handleStrategyToggle(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Strategy string `json:"strategy"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	st, err := models.ParseStrategyType(req.Strategy)
	if err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "unknown_strategy")
		return
	}

	sel := sess.ToggleStrategy(st)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"selection":  sel,
		"strategies": strategy.Options(sel),
	})
}

// handleScan handles POST /api/scan: runs the recommendation pipeline for
// the session's selection. At most one scan per session is outstanding.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	sel := sess.Selection()
	if sel.Empty() {
		WriteErrorWithCode(w, http.StatusBadRequest, "Select at least one strategy", "empty_selection")
		return
	}

	if !sess.TryStartScan() {
		WriteErrorWithCode(w, http.StatusConflict, "A scan is already in progress", "scan_in_progress")
		return
	}
	defer sess.FinishScan()

	stocks := s.app.RecommendationService.FetchRecommendations(r.Context(), sel.Strategies())

	s.logger.Debug().
		Str("session", sess.ID).
		Strs("strategies", sel.Labels()).
		Int("stocks", len(stocks)).
		Msg("Scan complete")

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"selection": sel,
		"stocks":    stocks,
	})
}
