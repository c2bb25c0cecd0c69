package auth

import (
	"sync"
	"time"

	"github.com/bobmcallan/stockwise/internal/models"
	"github.com/bobmcallan/stockwise/internal/services/strategy"
)

// Session holds one signed-in user's state for the lifetime of the session:
// the user record, the strategy selection and the scan busy flag.
// All updates replace whole values under mu.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time // zero means no expiry

	mu        sync.Mutex
	user      models.User
	selection strategy.Selection
	active    bool
	scanning  bool
}

// NewSession creates an inactive session with the given ID.
func NewSession(id string) *Session {
	return &Session{ID: id, CreatedAt: time.Now()}
}

// Expired reports whether the session has outlived its token at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Begin activates the session for user, resetting selection and busy state.
func (s *Session) Begin(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user.Clone()
	s.selection = strategy.Selection{}
	s.active = true
	s.scanning = false
}

// End deactivates the session and discards the user.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = models.User{}
	s.selection = strategy.Selection{}
	s.active = false
	s.scanning = false
}

// Active reports whether the session has begun and not ended.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// User returns a copy of the session user.
func (s *Session) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// UpdateUser replaces the session user with fn's result.
// fn receives a copy and must return the new value.
func (s *Session) UpdateUser(fn func(models.User) models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = fn(s.user.Clone())
	return s.user.Clone()
}

// Selection returns the current strategy selection.
func (s *Session) Selection() strategy.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SetSelection replaces the strategy selection.
func (s *Session) SetSelection(sel strategy.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = sel
}

// ToggleStrategy toggles st in the selection and returns the new selection.
func (s *Session) ToggleStrategy(st models.StrategyType) strategy.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.Toggle(st)
	return s.selection
}

// TryStartScan marks a recommendation request as outstanding. It returns
// false if one already is; callers must then skip the request.
func (s *Session) TryStartScan() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning {
		return false
	}
	s.scanning = true
	return true
}

// FinishScan clears the busy flag set by TryStartScan.
func (s *Session) FinishScan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanning = false
}
