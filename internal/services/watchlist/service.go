// Package watchlist provides per-user watchlist management services
package watchlist

import (
	"github.com/bobmcallan/stockwise/internal/common"
	"github.com/bobmcallan/stockwise/internal/interfaces"
	"github.com/bobmcallan/stockwise/internal/models"
)

// Compile-time interface check
var _ interfaces.WatchlistService = (*Service)(nil)

// Service implements WatchlistService. It holds no state: every operation
// takes a user value and returns a new one, leaving the input untouched.
type Service struct {
	logger *common.Logger
}

// NewService creates a new watchlist service
func NewService(logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		logger: logger,
	}
}

// Add appends stock to the user's watchlist unless its symbol is already
// tracked, in which case the user is returned unchanged.
func (s *Service) Add(user models.User, stock models.Stock) models.User {
	if _, idx := user.FindBySymbol(stock.Symbol); idx >= 0 {
		s.logger.Debug().Str("user", user.ID).Str("symbol", stock.Symbol).Msg("Watchlist already contains symbol")
		return user
	}

	// Fresh backing array so the caller's slice is never written.
	wl := make([]models.Stock, 0, len(user.Watchlist)+1)
	wl = append(wl, user.Watchlist...)
	wl = append(wl, stock.Clone())
	user.Watchlist = wl

	s.logger.Info().Str("user", user.ID).Str("symbol", stock.Symbol).Int("size", len(wl)).Msg("Watchlist item added")
	return user
}

// Remove drops the entry for symbol. Unknown symbols are a no-op.
func (s *Service) Remove(user models.User, symbol string) models.User {
	_, idx := user.FindBySymbol(symbol)
	if idx < 0 {
		return user
	}

	wl := make([]models.Stock, 0, len(user.Watchlist)-1)
	wl = append(wl, user.Watchlist[:idx]...)
	wl = append(wl, user.Watchlist[idx+1:]...)
	user.Watchlist = wl

	s.logger.Info().Str("user", user.ID).Str("symbol", symbol).Int("size", len(wl)).Msg("Watchlist item removed")
	return user
}

// RenderChart renders the watchlist's daily change as a PNG bar chart.
func (s *Service) RenderChart(watchlist []models.Stock) ([]byte, error) {
	return RenderChangeChart(watchlist)
}
