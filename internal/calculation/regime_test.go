package calculation

import (
	"testing"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateRegimes_BelowThreshold(t *testing.T) {
	engine := NewEngine()

	comp := engine.EvaluateRegimes(profile(1000000, 100000, domain.GoalPension, 10))

	assert.True(t, comp.RegimeA.BenefitValue.Equal(decimal.NewFromInt(180000)), "got %s", comp.RegimeA.BenefitValue)
	assert.True(t, comp.RegimeB.BenefitValue.Equal(decimal.NewFromInt(276000)), "got %s", comp.RegimeB.BenefitValue)
	assert.Equal(t, domain.RegimeA, comp.RecommendedRegime, "B is larger but salary is below the threshold")
	assert.True(t, comp.RegimeA.IsRecommended)
	assert.False(t, comp.RegimeB.IsRecommended)
}

func TestEvaluateRegimes_HighIncome(t *testing.T) {
	engine := NewEngine()

	comp := engine.EvaluateRegimes(profile(5000000, 100000, domain.GoalPension, 10))

	assert.Equal(t, domain.RegimeB, comp.RecommendedRegime)
	assert.False(t, comp.RegimeA.IsRecommended)
	assert.True(t, comp.RegimeB.IsRecommended)
}

func TestEvaluateRegimes_ThresholdIsInclusive(t *testing.T) {
	engine := NewEngine()

	comp := engine.EvaluateRegimes(profile(HighIncomeThreshold, 100000, domain.GoalPension, 10))
	assert.Equal(t, domain.RegimeB, comp.RecommendedRegime)

	comp = engine.EvaluateRegimes(profile(HighIncomeThreshold-1, 100000, domain.GoalPension, 10))
	assert.Equal(t, domain.RegimeA, comp.RecommendedRegime)
}

func TestEvaluateRegimes_RegimeACap(t *testing.T) {
	engine := NewEngine()

	// 500k a month is 6M a year; 15% would be 900k, capped at 6 UTM.
	comp := engine.EvaluateRegimes(profile(1000000, 500000, domain.GoalPension, 10))

	assert.True(t, comp.RegimeA.BenefitValue.Equal(decimal.NewFromInt(6*64793)), "got %s", comp.RegimeA.BenefitValue)
	assert.True(t, comp.RegimeB.BenefitValue.Equal(decimal.NewFromInt(1380000)), "regime B is uncapped")
}

func TestEvaluateRegimes_ZeroContributionKeepsRegimeA(t *testing.T) {
	engine := NewEngine()

	comp := engine.EvaluateRegimes(profile(10000000, 0, domain.GoalPension, 10))

	assert.True(t, comp.RegimeA.BenefitValue.IsZero())
	assert.True(t, comp.RegimeB.BenefitValue.IsZero())
	assert.Equal(t, domain.RegimeA, comp.RecommendedRegime, "a tie keeps the default")
}

func TestEvaluateRegimes_NegativeContribution(t *testing.T) {
	engine := NewEngine()

	comp := engine.EvaluateRegimes(profile(10000000, -1000, domain.GoalPension, 10))

	assert.True(t, comp.RegimeA.BenefitValue.Equal(decimal.NewFromInt(-1800)))
	assert.True(t, comp.RegimeB.BenefitValue.Equal(decimal.NewFromInt(-2760)))
	assert.Equal(t, domain.RegimeA, comp.RecommendedRegime)
}

func TestEvaluateRegimes_SelectionRule(t *testing.T) {
	engine := NewEngine()
	threshold := decimal.NewFromInt(HighIncomeThreshold)
	capA := decimal.NewFromInt(6 * UTMValue)

	salaries := []int64{1, 2000000, HighIncomeThreshold, 9000000}
	contributions := []int64{0, 10000, 100000, 216000, 1000000}

	for _, salary := range salaries {
		for _, contribution := range contributions {
			p := profile(salary, contribution, domain.GoalPension, 10)
			annual := decimal.NewFromInt(contribution * 12)
			a := decimal.Min(annual.Mul(decimal.NewFromFloat(0.15)), capA)
			b := annual.Mul(decimal.NewFromFloat(0.23))

			want := domain.RegimeA
			if p.Salary.GreaterThanOrEqual(threshold) && b.GreaterThan(a) {
				want = domain.RegimeB
			}

			comp := engine.EvaluateRegimes(p)
			assert.Equal(t, want, comp.RecommendedRegime, "salary=%d contribution=%d", salary, contribution)
			assert.NotEqual(t, comp.RegimeA.IsRecommended, comp.RegimeB.IsRecommended, "exactly one regime is recommended")
		}
	}
}

func TestEvaluateRegimes_DisplayMetadata(t *testing.T) {
	comp := DefaultRules().EvaluateRegimes(profile(1000000, 100000, domain.GoalPension, 10))

	assert.Equal(t, domain.ProductAPV, comp.RegimeA.Type)
	assert.Equal(t, domain.RegimeA, comp.RegimeA.Regime)
	assert.Equal(t, "Regime A", comp.RegimeA.PrimaryMessage)
	assert.Equal(t, "State bonus", comp.RegimeA.Badge)
	assert.Equal(t, domain.RegimeB, comp.RegimeB.Regime)
	assert.Equal(t, "Tax efficiency", comp.RegimeB.Badge)
}
