// Package stress runs market scenario simulations
package stress

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
)

// presets are the scenario identifiers the server understands.
var presets = map[string]bool{
	models.ScenarioCrisis2008:    true,
	models.ScenarioCovid2020:     true,
	models.ScenarioInflation2022: true,
	models.ScenarioRatesShock:    true,
	models.ScenarioCustom:        true,
}

// Service implements StressService
type Service struct {
	client   interfaces.FolioClient
	logger   *common.Logger
	validate *validator.Validate
}

// NewService creates a new stress-test service
func NewService(client interfaces.FolioClient, logger *common.Logger) *Service {
	return &Service{
		client:   client,
		logger:   logger,
		validate: validator.New(),
	}
}

// NewCustomScenario builds a custom scenario from percent inputs
// (-20 means a 20% drop). Impacts are converted to fractional shocks
// and every asset class without an explicit figure gets the default.
func NewCustomScenario(percentImpacts map[string]float64) *models.StressScenario {
	impacts := make(map[string]float64, len(models.StressAssetClasses))
	for class, pct := range percentImpacts {
		impacts[class] = pct / 100
	}
	for _, class := range models.StressAssetClasses {
		if _, ok := impacts[class]; !ok {
			impacts[class] = models.DefaultImpact
		}
	}
	return &models.StressScenario{
		Scenario: models.ScenarioCustom,
		Impacts:  impacts,
	}
}

// Run validates and executes a scenario, returning the result and its
// markdown rendering.
func (s *Service) Run(ctx context.Context, scenario *models.StressScenario) (*models.StressResult, string, error) {
	if err := s.validate.Struct(scenario); err != nil {
		return nil, "", fmt.Errorf("invalid scenario: %w", err)
	}
	if !presets[scenario.Scenario] {
		return nil, "", fmt.Errorf("unknown scenario %q", scenario.Scenario)
	}
	if scenario.Scenario == models.ScenarioCustom && len(scenario.Impacts) == 0 {
		return nil, "", fmt.Errorf("custom scenario needs at least one impact")
	}

	s.logger.Info().Str("scenario", scenario.Scenario).Msg("Running stress test")

	result, err := s.client.RunStressTest(ctx, scenario)
	if err != nil {
		return nil, "", fmt.Errorf("stress test failed: %w", err)
	}

	return result, FormatResult(result), nil
}

// Ensure Service implements StressService
var _ interfaces.StressService = (*Service)(nil)
