package report

import (
	"fmt"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

// UserStrategyName labels the user's own allocation in comparisons
const UserStrategyName = "Your allocation"

// ScenarioRow is one line of a projection comparison
type ScenarioRow struct {
	Name     string          `json:"name"`
	FundType domain.FundType `json:"fundType,omitempty"`
	Color    string          `json:"color,omitempty"`
	Amount   decimal.Decimal `json:"amount"`

	// Comparison to the user's allocation
	DiffFromBase decimal.Decimal `json:"diffFromBase"`
	PctFromBase  decimal.Decimal `json:"pctFromBase"`
}

// Comparison lays the user's projected balance next to every single-fund alternative
type Comparison struct {
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	Years               int             `json:"years"`
	Base                ScenarioRow     `json:"base"`
	Alternatives        []ScenarioRow   `json:"alternatives"`
	Recommendations     []string        `json:"recommendations"`
}

// NewComparison builds a comparison from a finalized projection
func NewComparison(result domain.ProjectionResult, monthlyContribution decimal.Decimal, years int) *Comparison {
	c := &Comparison{
		MonthlyContribution: monthlyContribution,
		Years:               years,
		Base: ScenarioRow{
			Name:   UserStrategyName,
			Amount: result.UserStrategyAmount,
		},
		Alternatives: make([]ScenarioRow, 0, len(result.Scenarios)),
	}

	for _, scenario := range result.Scenarios {
		row := ScenarioRow{
			Name:         fmt.Sprintf("Fund %s", scenario.FundType),
			FundType:     scenario.FundType,
			Color:        scenario.Color,
			Amount:       scenario.Amount,
			DiffFromBase: scenario.Difference,
		}
		if !result.UserStrategyAmount.IsZero() {
			row.PctFromBase = scenario.Difference.
				Div(result.UserStrategyAmount).
				Mul(decimal.NewFromInt(100))
		}
		c.Alternatives = append(c.Alternatives, row)
	}

	c.Recommendations = GenerateRecommendations(result)
	return c
}

// GenerateRecommendations summarizes which tiers beat or trail the user's allocation
func GenerateRecommendations(result domain.ProjectionResult) []string {
	recommendations := []string{}

	best, ok := result.BestScenario()
	if !ok {
		return recommendations
	}
	if best.Difference.IsPositive() {
		recommendations = append(recommendations,
			fmt.Sprintf("Highest balance: Fund %s would end %s above your allocation",
				best.FundType, FormatMoneyExact(best.Difference)))
	} else {
		recommendations = append(recommendations,
			"Your allocation matches or beats every single-fund alternative")
	}

	if lowest, _ := result.LowestScenario(); lowest.Difference.IsNegative() {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest balance: Fund %s would end %s below your allocation",
				lowest.FundType, FormatMoneyExact(lowest.Difference.Abs())))
	}

	return recommendations
}
