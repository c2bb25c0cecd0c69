package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bobmcallan/stockwise/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)
	mux.Handle("/metrics", promhttp.Handler())

	// Auth
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)
	mux.HandleFunc("/api/auth/logout", s.handleAuthLogout)
	mux.HandleFunc("/api/session", s.handleSession)

	// Strategies and scanning
	mux.HandleFunc("/api/strategies/toggle", s.handleStrategyToggle)
	mux.HandleFunc("/api/strategies", s.handleStrategies)
	mux.HandleFunc("/api/scan", s.handleScan)

	// Market
	mux.HandleFunc("/api/market/summary", s.handleMarketSummary)

	// Watchlist
	mux.HandleFunc("/api/watchlist/", s.routeWatchlist) // handles chart, {symbol}
	mux.HandleFunc("/api/watchlist", s.handleWatchlist)

	// Admin
	mux.HandleFunc("/api/admin/users", s.handleAdminListUsers)
}

// routeWatchlist dispatches /api/watchlist/{symbol} and /api/watchlist/chart.
func (s *Server) routeWatchlist(w http.ResponseWriter, r *http.Request) {
	symbol := PathParam(r, "/api/watchlist/", "")
	switch symbol {
	case "":
		s.handleWatchlist(w, r)
	case "chart":
		s.handleWatchlistChart(w, r)
	default:
		s.handleWatchlistItem(w, r, symbol)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, common.CurrentBuildInfo())
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
