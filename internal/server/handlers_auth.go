package server

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/stockwise/internal/auth"
)

// handleAuthLogin handles POST /api/auth/login.
// Body: {"credential": "<google id token>"}. An empty credential or the demo
// credential signs in as the guest.
func (s *Server) handleAuthLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Credential string `json:"credential"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, token, summary, err := s.app.SignIn(r.Context(), req.Credential)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityDecode) {
			WriteErrorWithCode(w, http.StatusBadRequest, "Invalid credential", "invalid_credential")
			return
		}
		s.logger.Error().Err(err).Msg("Sign-in failed")
		WriteError(w, http.StatusInternalServerError, "Sign-in failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token":          token,
		"user":           sess.User(),
		"market_summary": summary,
	})
}

// handleAuthLogout handles POST /api/auth/logout.
func (s *Server) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	s.app.Sessions.End(sess.ID)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSession handles GET /api/session.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":       sess.User(),
		"selection":  sess.Selection(),
		"ai_enabled": s.app.AIEnabled,
	})
}
