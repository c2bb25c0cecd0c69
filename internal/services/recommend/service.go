// Package recommend implements the recommendation and market summary pipelines.
//
// Both pipelines call a RecommendationProvider once, without retries, and
// resolve every provider error to a local fallback value. Callers never see
// an error.
package recommend

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bobmcallan/stockwise/internal/common"
	"github.com/bobmcallan/stockwise/internal/interfaces"
	"github.com/bobmcallan/stockwise/internal/models"
)

// summaryTimeout bounds the shared market summary call, which outlives
// cancelled callers.
const summaryTimeout = 30 * time.Second

// Compile-time interface check
var _ interfaces.RecommendationService = (*Service)(nil)

// Service implements RecommendationService
type Service struct {
	provider interfaces.RecommendationProvider
	logger   *common.Logger
	summary  singleflight.Group
	now      func() time.Time
}

// NewService creates a new recommendation service. A nil provider is
// replaced with NullProvider.
func NewService(provider interfaces.RecommendationProvider, logger *common.Logger) *Service {
	if provider == nil {
		provider = NullProvider{}
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// FetchRecommendations returns stocks for the selected strategies. Provider
// absence or any provider failure yields the filtered fallback catalog.
func (s *Service) FetchRecommendations(ctx context.Context, strategies []models.StrategyType) (stocks []models.Stock) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error().Interface("panic", rec).Msg("Recommendation provider panicked, using fallback catalog")
			providerRequests.WithLabelValues(pipelineRecommendations, "request_failed").Inc()
			stocks = FilterFallback(strategies)
		}
		recommendationsReturned.Observe(float64(len(stocks)))
	}()

	if len(strategies) == 0 {
		return FilterFallback(strategies)
	}

	start := s.now()
	result, err := s.provider.GetStocks(ctx, strategies)
	providerDuration.WithLabelValues(pipelineRecommendations).Observe(s.now().Sub(start).Seconds())
	providerRequests.WithLabelValues(pipelineRecommendations, classify(err)).Inc()

	if err != nil {
		s.logFallback(pipelineRecommendations, err, strategies)
		return FilterFallback(strategies)
	}

	if result == nil {
		result = []models.Stock{}
	}
	s.logger.Info().
		Strs("strategies", models.StrategyLabels(strategies)).
		Int("count", len(result)).
		Msg("Recommendations received from provider")
	return result
}

// FetchMarketSummary returns a market sentiment sentence. Concurrent callers
// share a single outstanding provider call. The shared call is detached from
// any one caller's cancellation; each caller stops waiting when its own ctx
// is done and gets the failure fallback.
func (s *Service) FetchMarketSummary(ctx context.Context) string {
	detached := context.WithoutCancel(ctx)
	ch := s.summary.DoChan(pipelineSummary, func() (interface{}, error) {
		shared, cancel := context.WithTimeout(detached, summaryTimeout)
		defer cancel()
		return s.fetchSummary(shared), nil
	})

	select {
	case res := <-ch:
		summary, _ := res.Val.(string)
		if summary == "" {
			return SummaryFallbackFailed
		}
		return summary
	case <-ctx.Done():
		s.logger.Debug().Err(ctx.Err()).Msg("Market summary caller gave up waiting")
		return SummaryFallbackFailed
	}
}

func (s *Service) fetchSummary(ctx context.Context) (summary string) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error().Interface("panic", rec).Msg("Summary provider panicked, using fallback")
			providerRequests.WithLabelValues(pipelineSummary, "request_failed").Inc()
			summary = SummaryFallbackFailed
		}
	}()

	start := s.now()
	text, err := s.provider.GetSummary(ctx)
	providerDuration.WithLabelValues(pipelineSummary).Observe(s.now().Sub(start).Seconds())
	providerRequests.WithLabelValues(pipelineSummary, classify(err)).Inc()

	if err != nil {
		s.logFallback(pipelineSummary, err, nil)
		if errors.Is(err, ErrProviderUnavailable) {
			return SummaryFallbackNoProvider
		}
		return SummaryFallbackFailed
	}
	if text == "" {
		return SummaryFallbackFailed
	}
	return text
}

// logFallback records why a pipeline fell back. Missing credentials are
// expected in demo mode and logged at warn; everything else is an error.
func (s *Service) logFallback(pipeline string, err error, strategies []models.StrategyType) {
	event := s.logger.Error()
	if errors.Is(err, ErrProviderUnavailable) {
		event = s.logger.Warn()
	}
	event.
		Str("pipeline", pipeline).
		Str("outcome", classify(err)).
		Strs("strategies", models.StrategyLabels(strategies)).
		Err(err).
		Msg("Provider call failed, using fallback")
}
