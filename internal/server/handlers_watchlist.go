package server

import (
	"net/http"

	"github.com/bobmcallan/stockwise/internal/models"
)

// handleWatchlist handles GET and POST /api/watchlist.
func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodGet {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"watchlist": sess.User().Watchlist,
		})
		return
	}

	var req struct {
		Stock models.Stock `json:"stock"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if models.NormalizeSymbol(req.Stock.Symbol) == "" {
		WriteError(w, http.StatusBadRequest, "stock.symbol is required")
		return
	}

	var added bool
	user := sess.UpdateUser(func(u models.User) models.User {
		next := s.app.WatchlistService.Add(u, req.Stock)
		added = len(next.Watchlist) > len(u.Watchlist)
		return next
	})

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	WriteJSON(w, status, map[string]interface{}{
		"added":     added,
		"watchlist": user.Watchlist,
	})
}

// handleWatchlistItem handles DELETE /api/watchlist/{symbol}.
func (s *Server) handleWatchlistItem(w http.ResponseWriter, r *http.Request, symbol string) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	user := sess.UpdateUser(func(u models.User) models.User {
		return s.app.WatchlistService.Remove(u, symbol)
	})
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"watchlist": user.Watchlist,
	})
}

// handleWatchlistChart handles GET /api/watchlist/chart, returning a PNG.
func (s *Server) handleWatchlistChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	wl := sess.User().Watchlist
	if len(wl) == 0 {
		WriteError(w, http.StatusNotFound, "Watchlist is empty")
		return
	}

	png, err := s.app.WatchlistService.RenderChart(wl)
	if err != nil {
		s.logger.Error().Err(err).Str("session", sess.ID).Msg("Watchlist chart render failed")
		WriteError(w, http.StatusInternalServerError, "Chart rendering failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
