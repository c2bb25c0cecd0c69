package server

import "net/http"

// handleAdminListUsers handles GET /api/admin/users.
// Only sessions carrying the admin role may list users.
func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	if !sess.User().IsAdmin() {
		WriteErrorWithCode(w, http.StatusForbidden, "Admin role required", "forbidden")
		return
	}

	users := s.app.ListUsers()
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}
