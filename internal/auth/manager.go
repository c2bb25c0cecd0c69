package auth

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/stockwise/internal/common"
	"github.com/bobmcallan/stockwise/internal/models"
)

// ErrSessionNotFound is returned when a token does not resolve to a live session.
var ErrSessionNotFound = errors.New("session not found")

// Manager keeps active sessions in memory and issues their bearer tokens.
type Manager struct {
	secret []byte
	expiry time.Duration
	logger *common.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager from auth config.
func NewManager(cfg common.AuthConfig, logger *common.Logger) *Manager {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		expiry:   cfg.GetTokenExpiry(),
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Begin starts a new session for user and returns it with its bearer token.
func (m *Manager) Begin(user models.User) (*Session, string, error) {
	sess := NewSession(uuid.New().String())
	sess.CreatedAt = m.now()
	sess.ExpiresAt = sess.CreatedAt.Add(m.expiry)
	sess.Begin(user)

	token, err := signSessionToken(sess.ID, user.ID, string(user.Role), m.secret, m.expiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	m.mu.Lock()
	m.sweepLocked()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.logger.Info().Str("session", sess.ID).Str("user", user.ID).Str("role", string(user.Role)).Msg("Session started")
	return sess, token, nil
}

// Lookup validates token and returns its live session.
func (m *Manager) Lookup(token string) (*Session, error) {
	claims, err := validateSessionToken(token, m.secret)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	return m.Get(claims.Subject)
}

// Get returns the live session with the given ID. An expired session is
// ended and forgotten.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || !sess.Active() {
		return nil, ErrSessionNotFound
	}
	if sess.Expired(m.now()) {
		m.End(id)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// End ends and forgets the session with the given ID. Unknown IDs are ignored.
func (m *Manager) End(id string) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		sess.End()
		m.logger.Info().Str("session", id).Msg("Session ended")
	}
}

// Users returns the users of all live sessions, oldest session first.
func (m *Manager) Users() []models.User {
	m.mu.Lock()
	m.sweepLocked()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	users := make([]models.User, 0, len(sessions))
	for _, s := range sessions {
		if s.Active() {
			users = append(users, s.User())
		}
	}
	return users
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	return len(m.sessions)
}

// sweepLocked ends and drops expired sessions. m.mu must be held.
func (m *Manager) sweepLocked() {
	now := m.now()
	for id, sess := range m.sessions {
		if sess.Expired(now) {
			delete(m.sessions, id)
			sess.End()
			m.logger.Info().Str("session", id).Msg("Session expired")
		}
	}
}
