package calculation

import (
	"math"
	"testing"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleFund(rate float64) []domain.FundOption {
	return []domain.FundOption{{Type: domain.FundC, Percent: 100, AnnualRate: decimal.NewFromFloat(rate)}}
}

func TestCalculateProjection_ZeroRateIsLinear(t *testing.T) {
	tests := []struct {
		amount int64
		years  int
	}{
		{100000, 5},
		{1, 1},
		{250000, 30},
		{100000, 0},
	}

	for _, tt := range tests {
		got := CalculateProjection(decimal.NewFromInt(tt.amount), tt.years, singleFund(0))
		want := decimal.NewFromInt(tt.amount * int64(tt.years) * 12)
		assert.True(t, got.Equal(want), "amount=%d years=%d: want %s got %s", tt.amount, tt.years, want, got)
	}
}

func TestCalculateProjection_EmptyAllocation(t *testing.T) {
	got := CalculateProjection(decimal.NewFromInt(1000), 2, nil)
	assert.True(t, got.Equal(decimal.NewFromInt(24000)))
}

func TestCalculateProjection_MatchesAnnuityFormula(t *testing.T) {
	got := CalculateProjection(decimal.NewFromInt(100000), 5, singleFund(0.04))

	r := 0.04 / 12
	want := 100000 * (math.Pow(1+r, 60) - 1) / r

	assert.InDelta(t, want, got.InexactFloat64(), 0.01)
}

func TestCalculateProjection_ZeroYears(t *testing.T) {
	got := CalculateProjection(decimal.NewFromInt(100000), 0, singleFund(0.06))
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestCalculateProjection_MonotonicInRate(t *testing.T) {
	amount := decimal.NewFromInt(100000)
	previous := decimal.Zero

	for i, rate := range []float64{0, 0.01, 0.02, 0.03, 0.04, 0.05, 0.06} {
		got := CalculateProjection(amount, 10, singleFund(rate))
		if i > 0 {
			assert.True(t, got.GreaterThanOrEqual(previous), "rate %.2f: %s < %s", rate, got, previous)
		}
		previous = got
	}
}

func TestCalculateProjection_NegativeInputsAreNotRejected(t *testing.T) {
	got := CalculateProjection(decimal.NewFromInt(-1000), 2, singleFund(0))
	assert.True(t, got.Equal(decimal.NewFromInt(-24000)))

	got = CalculateProjection(decimal.NewFromInt(1000), -1, singleFund(0.06))
	assert.True(t, got.IsNegative(), "negative horizon yields a negative amount, got %s", got)
}

func TestWeightedAnnualRate(t *testing.T) {
	allocation := FundCatalog()
	allocation[0].Percent = 50 // A 6%
	allocation[4].Percent = 50 // E 2%

	assert.True(t, WeightedAnnualRate(allocation).Equal(decimal.NewFromFloat(0.04)))

	// shares below 100 are blended as given
	allocation[4].Percent = 0
	assert.True(t, WeightedAnnualRate(allocation).Equal(decimal.NewFromFloat(0.03)))

	// negative shares are ignored
	allocation[1].Percent = -20
	assert.True(t, WeightedAnnualRate(allocation).Equal(decimal.NewFromFloat(0.03)))
}

func TestCalculateProjection_BlendEqualsSingleFundOfSameRate(t *testing.T) {
	allocation := FundCatalog()
	allocation[0].Percent = 50
	allocation[4].Percent = 50

	blended := CalculateProjection(decimal.NewFromInt(100000), 5, allocation)
	fundC, ok := GetFundData(domain.FundC)
	require.True(t, ok)
	fundC.Percent = 100
	single := CalculateProjection(decimal.NewFromInt(100000), 5, []domain.FundOption{fundC})

	assert.True(t, blended.Equal(single), "%s vs %s", blended, single)
}

func TestBuildProjectionResult(t *testing.T) {
	allocation := FundCatalog()
	allocation[2].Percent = 100 // all in C

	result := BuildProjectionResult(decimal.NewFromInt(100000), 5, allocation)

	require.Len(t, result.Scenarios, 5)
	for i, ft := range domain.FundTypes {
		scenario := result.Scenarios[i]
		assert.Equal(t, ft, scenario.FundType)
		assert.True(t, scenario.Difference.Equal(scenario.Amount.Sub(result.UserStrategyAmount)))
		assert.NotEmpty(t, scenario.Color)
	}

	assert.True(t, result.Scenarios[2].Difference.IsZero(), "fund C matches the user's all-C strategy")
	assert.True(t, result.Scenarios[0].Difference.IsPositive(), "fund A outgrows C")
	assert.True(t, result.Scenarios[4].Difference.IsNegative(), "fund E trails C")

	best, ok := result.BestScenario()
	require.True(t, ok)
	assert.Equal(t, domain.FundA, best.FundType)
}
