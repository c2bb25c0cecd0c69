package models

// Role is the trusted role carried by a signed-in user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the session-scoped view of a signed-in person.
// Watchlist is ordered by insertion and unique by symbol.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      Role    `json:"role"`
	Watchlist []Stock `json:"watchlist"`
	Picture   string  `json:"picture,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FindBySymbol returns the watchlist entry for symbol and its index, or -1.
func (u User) FindBySymbol(symbol string) (*Stock, int) {
	symbol = NormalizeSymbol(symbol)
	for i := range u.Watchlist {
		if NormalizeSymbol(u.Watchlist[i].Symbol) == symbol {
			return &u.Watchlist[i], i
		}
	}
	return nil, -1
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	if u.Watchlist != nil {
		wl := make([]Stock, len(u.Watchlist))
		for i, s := range u.Watchlist {
			wl[i] = s.Clone()
		}
		u.Watchlist = wl
	}
	return u
}

// ParsedIdentity is the typed result of decoding an external sign-in credential.
type ParsedIdentity struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}
