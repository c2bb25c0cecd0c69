package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/stockwise/internal/models"
)

func TestNewDemo(t *testing.T) {
	d := NewDemo()
	users := d.List()
	require.Len(t, users, 2)

	assert.Equal(t, "Guest User", users[0].Name)
	require.Len(t, users[0].Watchlist, 1)
	assert.Equal(t, "AMD", users[0].Watchlist[0].Symbol)

	assert.Equal(t, "Alice Chen", users[1].Name)
	assert.Equal(t, "2330.TW", users[1].Watchlist[0].Symbol)

	assert.Equal(t, "AMD", d.Seed().Watchlist[0].Symbol)
}

func TestList_ReturnsCopies(t *testing.T) {
	d := NewDemo()
	users := d.List()
	users[0].Name = "mutated"
	users[0].Watchlist[0].Symbol = "mutated"

	fresh := d.List()
	assert.Equal(t, "Guest User", fresh[0].Name)
	assert.Equal(t, "AMD", fresh[0].Watchlist[0].Symbol)
}

func TestSeed_EmptyDirectory(t *testing.T) {
	assert.Equal(t, models.User{}, New().Seed())
}
