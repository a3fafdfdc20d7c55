// Package app wires configuration, clients, and services together
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/folio/internal/charts"
	folio "github.com/bobmcallan/folio/internal/clients/folio"
	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/services/actions"
	"github.com/bobmcallan/folio/internal/services/analysis"
	"github.com/bobmcallan/folio/internal/services/dashboard"
	"github.com/bobmcallan/folio/internal/services/stress"
	"github.com/bobmcallan/folio/internal/ui"
)

// App holds the initialized client and services shared by every
// subcommand.
type App struct {
	Config *common.Config
	Logger *common.Logger

	Client           interfaces.FolioClient
	Modals           *ui.ModalController
	ChartRegistry    *charts.Registry
	DashboardService interfaces.DashboardService
	AnalysisService  interfaces.AnalysisService
	ActionService    interfaces.ActionService
	StressService    interfaces.StressService

	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and initializes the client and services.
// configPath may be empty, in which case FOLIO_CONFIG and the binary
// directory are tried in order.
func NewApp(configPath string) (*App, error) {
	if configPath == "" {
		configPath = os.Getenv("FOLIO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "folio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/folio.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level, config.Logging.Format)

	if !filepath.IsAbs(config.Charts.Dir) {
		config.Charts.Dir = filepath.Join(getBinaryDir(), config.Charts.Dir)
	}

	client := folio.NewClient(config.Portfolio,
		folio.WithBaseURL(config.Server.BaseURL),
		folio.WithRateLimit(config.Server.RateLimit),
		folio.WithTimeout(config.Server.GetTimeout()),
		folio.WithLogger(logger),
	)

	imageCache := charts.NewImageCache(config.Charts.Dir, logger)
	registry := charts.NewRegistry(imageCache, logger)
	renderer := charts.NewRenderer(config.Charts.Width, config.Charts.Height, charts.NewPalette(config.Charts.Seed))

	dashboardService := dashboard.NewService(client, logger)
	analysisService := analysis.NewService(client, registry, renderer,
		config.Benchmark, config.Refresh.GetCacheTTL(), logger)
	actionService := actions.NewService(client, dashboardService, logger)
	stressService := stress.NewService(client, logger)

	logger.Debug().
		Str("server", config.Server.BaseURL).
		Str("portfolio", config.Portfolio).
		Msg("App initialized")

	return &App{
		Config:           config,
		Logger:           logger,
		Client:           client,
		Modals:           ui.NewModalController(ui.ModalAddAsset, ui.ModalAddTransaction, ui.ModalCSVUpload),
		ChartRegistry:    registry,
		DashboardService: dashboardService,
		AnalysisService:  analysisService,
		ActionService:    actionService,
		StressService:    stressService,
		StartupTime:      time.Now(),
	}, nil
}
