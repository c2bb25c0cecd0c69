// Package directory holds the in-memory user directory shown on the admin view.
package directory

import (
	"github.com/bobmcallan/stockwise/internal/interfaces"
	"github.com/bobmcallan/stockwise/internal/models"
)

var _ interfaces.UserDirectory = (*Directory)(nil)

// Directory is a fixed list of demo users. It is read-only after construction.
type Directory struct {
	users []models.User
}

// New returns a directory over users. The first user seeds new sessions.
func New(users ...models.User) *Directory {
	d := &Directory{users: make([]models.User, len(users))}
	for i, u := range users {
		d.users[i] = u.Clone()
	}
	return d
}

// NewDemo returns the directory of demo accounts the dashboard ships with.
func NewDemo() *Directory {
	return New(
		models.User{
			ID:    "1",
			Name:  "Guest User",
			Email: "guest@stockwise.ai",
			Role:  models.RoleUser,
			Watchlist: []models.Stock{
				{Symbol: "AMD", Name: "Advanced Micro Devices", Price: 180.0, Change: 2.5, ChangePercent: 1.4, Volume: "40M", Market: models.MarketUS},
			},
		},
		models.User{
			ID:    "2",
			Name:  "Alice Chen",
			Email: "alice@example.tw",
			Role:  models.RoleUser,
			Watchlist: []models.Stock{
				{Symbol: "2330.TW", Name: "TSMC", Price: 780.0, Change: 5.0, ChangePercent: 0.65, Volume: "20M", Market: models.MarketTW},
			},
		},
	)
}

// List returns copies of all users.
func (d *Directory) List() []models.User {
	out := make([]models.User, len(d.users))
	for i, u := range d.users {
		out[i] = u.Clone()
	}
	return out
}

// Seed returns a copy of the user whose watchlist new sessions inherit,
// or the zero user for an empty directory.
func (d *Directory) Seed() models.User {
	if len(d.users) == 0 {
		return models.User{}
	}
	return d.users[0].Clone()
}
