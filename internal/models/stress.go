package models

// Preset stress scenario identifiers understood by the server.
// "custom" carries an explicit per-asset-class impact map.
const (
	ScenarioCrisis2008    = "crisis_2008"
	ScenarioCovid2020     = "covid_2020"
	ScenarioInflation2022 = "inflation_2022"
	ScenarioRatesShock    = "rates_shock"
	ScenarioCustom        = "custom"
)

// StressAssetClasses are the classes a custom scenario can shock.
var StressAssetClasses = []string{"Equity", "Bond", "Commodity", "RealEstate", "Cash", "Crypto"}

// DefaultImpact is the fractional shock applied to asset classes a
// custom scenario leaves uncovered.
const DefaultImpact = -0.15

// StressScenario is the request body for a stress-test run. Impacts are
// fractional (-0.15 means -15%) and only present for custom scenarios.
type StressScenario struct {
	Scenario string             `json:"scenario" validate:"required"`
	Impacts  map[string]float64 `json:"impacts,omitempty" validate:"omitempty,dive,gte=-1,lte=1"`
}

// AssetImpact is the stressed outcome for a single holding.
type AssetImpact struct {
	Type           string  `json:"type"`
	ImpactPct      float64 `json:"impact_pct"`
	OriginalValue  float64 `json:"original_value"`
	StressedValue  float64 `json:"stressed_value"`
	AbsoluteImpact float64 `json:"absolute_impact"`
}

// StressResult is the server's stress-test response.
type StressResult struct {
	Scenario         string                 `json:"scenario"`
	Description      string                 `json:"description"`
	CurrentValue     float64                `json:"current_value"`
	StressedValue    float64                `json:"stressed_value"`
	AbsoluteImpact   float64                `json:"absolute_impact"`
	PercentageImpact float64                `json:"percentage_impact"`
	ImpactByAsset    map[string]AssetImpact `json:"impact_by_asset"`
}
