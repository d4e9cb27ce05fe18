package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductType is the savings vehicle the advisor recommends
type ProductType string

const (
	// ProductAPV is the tax-advantaged voluntary retirement savings product
	ProductAPV ProductType = "APV"
	// ProductCuenta2 is the liquid voluntary savings account
	ProductCuenta2 ProductType = "CUENTA2"
)

// String returns a human readable product name
func (p ProductType) String() string {
	switch p {
	case ProductAPV:
		return "APV (retirement savings)"
	case ProductCuenta2:
		return "Cuenta 2 (liquid savings)"
	default:
		return string(p)
	}
}

// RegimeType is one of the two mutually exclusive APV tax regimes
type RegimeType string

const (
	RegimeA RegimeType = "A"
	RegimeB RegimeType = "B"
)

// ParseRegimeType converts a regime letter into a RegimeType
func ParseRegimeType(s string) (RegimeType, error) {
	switch RegimeType(s) {
	case RegimeA, RegimeB:
		return RegimeType(s), nil
	}
	return "", fmt.Errorf("unknown regime %q (valid: A, B)", s)
}

// Other returns the opposite regime
func (r RegimeType) Other() RegimeType {
	if r == RegimeA {
		return RegimeB
	}
	return RegimeA
}

// ProductRecommendation is the outcome of evaluating one regime
type ProductRecommendation struct {
	Type             ProductType     `json:"type"`
	Regime           RegimeType      `json:"regime,omitempty"`
	Badge            string          `json:"badge"`
	PrimaryMessage   string          `json:"primaryMessage"`
	SecondaryMessage string          `json:"secondaryMessage"`
	BenefitValue     decimal.Decimal `json:"benefitValue"`
	IsRecommended    bool            `json:"isRecommended"`
}

// RegimeComparison pairs both regime outcomes with the regime the engine picked
type RegimeComparison struct {
	RegimeA           ProductRecommendation `json:"regimeA"`
	RegimeB           ProductRecommendation `json:"regimeB"`
	RecommendedRegime RegimeType            `json:"recommendedRegime"`
}

// Regime returns the outcome for r
func (rc RegimeComparison) Regime(r RegimeType) ProductRecommendation {
	if r == RegimeA {
		return rc.RegimeA
	}
	return rc.RegimeB
}

// Selected returns the regime to display first. A non-nil override wins over the
// engine's pick; RecommendedRegime itself is never changed.
func (rc RegimeComparison) Selected(override *RegimeType) ProductRecommendation {
	if override != nil {
		return rc.Regime(*override)
	}
	return rc.Regime(rc.RecommendedRegime)
}

// Alternative returns the regime not returned by Selected
func (rc RegimeComparison) Alternative(override *RegimeType) ProductRecommendation {
	if override != nil {
		return rc.Regime(override.Other())
	}
	return rc.Regime(rc.RecommendedRegime.Other())
}

// SimulationOutput is the advisor's top-level recommendation. Exactly one of
// APVComparison (for APV) or AvailableFunds (for CUENTA2) is set.
type SimulationOutput struct {
	BestProduct    ProductType       `json:"bestProduct"`
	APVComparison  *RegimeComparison `json:"apvComparison,omitempty"`
	AvailableFunds []FundOption      `json:"availableFunds,omitempty"`
}

// ProjectionScenario compares a single-fund strategy against the user's own mix
type ProjectionScenario struct {
	FundType   FundType        `json:"fundType"`
	Amount     decimal.Decimal `json:"amount"`
	Color      string          `json:"color"`
	Difference decimal.Decimal `json:"difference"` // Amount minus the user's strategy amount
}

// ProjectionResult is a finished projection of the user's mix and every single-fund alternative
type ProjectionResult struct {
	UserStrategyAmount decimal.Decimal      `json:"userStrategyAmount"`
	Scenarios          []ProjectionScenario `json:"scenarios"`
}

// BestScenario returns the scenario with the highest projected amount
func (pr ProjectionResult) BestScenario() (ProjectionScenario, bool) {
	if len(pr.Scenarios) == 0 {
		return ProjectionScenario{}, false
	}
	best := pr.Scenarios[0]
	for _, s := range pr.Scenarios[1:] {
		if s.Amount.GreaterThan(best.Amount) {
			best = s
		}
	}
	return best, true
}

// LowestScenario returns the scenario with the lowest projected amount
func (pr ProjectionResult) LowestScenario() (ProjectionScenario, bool) {
	if len(pr.Scenarios) == 0 {
		return ProjectionScenario{}, false
	}
	lowest := pr.Scenarios[0]
	for _, s := range pr.Scenarios[1:] {
		if s.Amount.LessThan(lowest.Amount) {
			lowest = s
		}
	}
	return lowest, true
}
