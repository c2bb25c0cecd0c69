package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/stockwise/internal/auth"
	"github.com/bobmcallan/stockwise/internal/clients/gemini"
	"github.com/bobmcallan/stockwise/internal/common"
	"github.com/bobmcallan/stockwise/internal/directory"
	"github.com/bobmcallan/stockwise/internal/interfaces"
	"github.com/bobmcallan/stockwise/internal/models"
	"github.com/bobmcallan/stockwise/internal/services/recommend"
	"github.com/bobmcallan/stockwise/internal/services/watchlist"
)

// App holds all initialized services and clients.
// It is the shared core behind cmd/stockwise-server and the HTTP server.
type App struct {
	Config                *common.Config
	Logger                *common.Logger
	GeminiClient          interfaces.GeminiClient
	RecommendationService interfaces.RecommendationService
	WatchlistService      interfaces.WatchlistService
	Directory             interfaces.UserDirectory
	Sessions              *auth.Manager
	AIEnabled             bool
	StartupTime           time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and initializes all services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	if configPath == "" {
		configPath = os.Getenv("STOCKWISE_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "stockwise.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/stockwise.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	return NewAppWithConfig(config, logger), nil
}

// NewAppWithConfig wires services from an already loaded config.
// Without a Gemini API key the recommendation pipeline runs on its
// fallback data only.
func NewAppWithConfig(config *common.Config, logger *common.Logger) *App {
	startupStart := time.Now()
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	ctx := context.Background()

	var provider interfaces.RecommendationProvider = recommend.NullProvider{}
	var geminiClient interfaces.GeminiClient

	geminiKey, err := common.ResolveAPIKey("gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - recommendations will use fallback data")
	} else {
		client, err := gemini.NewClient(ctx, geminiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithRateLimit(config.Clients.Gemini.RateLimit),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			geminiClient = client
			provider = recommend.NewGeminiProvider(client)
		}
	}

	a := &App{
		Config:                config,
		Logger:                logger,
		GeminiClient:          geminiClient,
		RecommendationService: recommend.NewService(provider, logger),
		WatchlistService:      watchlist.NewService(logger),
		Directory:             directory.NewDemo(),
		Sessions:              auth.NewManager(config.Auth, logger),
		AIEnabled:             geminiClient != nil,
		StartupTime:           startupStart,
	}

	logger.Info().
		Bool("ai_enabled", a.AIEnabled).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a
}

// SignIn decodes credential, builds the session user and begins a session.
// It returns the session, its bearer token and the market summary shown on
// the dashboard header.
func (a *App) SignIn(ctx context.Context, credential string) (*auth.Session, string, string, error) {
	identity, err := auth.DecodeCredential(credential)
	if err != nil {
		return nil, "", "", err
	}

	user := auth.NewUser(
		identity,
		auth.UserID(credential),
		a.Config.Auth.IsAdminEmail(identity.Email),
		a.Directory.Seed().Watchlist,
	)

	sess, token, err := a.Sessions.Begin(user)
	if err != nil {
		return nil, "", "", err
	}

	return sess, token, a.RecommendationService.FetchMarketSummary(ctx), nil
}

// ListUsers returns the demo directory followed by the users of live sessions.
func (a *App) ListUsers() []models.User {
	return append(a.Directory.List(), a.Sessions.Users()...)
}

// Close releases resources held by the App.
func (a *App) Close() {
	a.Logger.Debug().Int("sessions", a.Sessions.Count()).Msg("App closed")
}
