package calculation

import (
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// UTMValue is the monthly tax unit used to cap the Regime A bonus
	UTMValue = 64793
	// HighIncomeThreshold is the monthly salary from which Regime B's rebate can beat Regime A
	HighIncomeThreshold = 4867941
	// MinRetirementHorizon is the shortest horizon, in years, routed to the retirement product
	MinRetirementHorizon = 5
)

// Rules holds the engine's fixed regulatory parameters
type Rules struct {
	UTM                 decimal.Decimal
	HighIncomeThreshold decimal.Decimal
	RegimeARate         decimal.Decimal // state bonus on annual contributions
	RegimeACapUTM       decimal.Decimal // cap on the bonus, in UTM
	RegimeBRate         decimal.Decimal // tax rebate on annual contributions
	MinHorizon          int
}

// DefaultRules returns the parameters the advisor ships with
func DefaultRules() Rules {
	return Rules{
		UTM:                 decimal.NewFromInt(UTMValue),
		HighIncomeThreshold: decimal.NewFromInt(HighIncomeThreshold),
		RegimeARate:         decimal.NewFromFloat(0.15),
		RegimeACapUTM:       decimal.NewFromInt(6),
		RegimeBRate:         decimal.NewFromFloat(0.23),
		MinHorizon:          MinRetirementHorizon,
	}
}

// RegimeACap is the largest Regime A bonus payable in a year
func (r Rules) RegimeACap() decimal.Decimal {
	return r.RegimeACapUTM.Mul(r.UTM)
}

// RegimeABenefit returns the capped state bonus for an annual contribution
func (r Rules) RegimeABenefit(annual decimal.Decimal) decimal.Decimal {
	return decimal.Min(annual.Mul(r.RegimeARate), r.RegimeACap())
}

// RegimeBBenefit returns the uncapped tax rebate for an annual contribution
func (r Rules) RegimeBBenefit(annual decimal.Decimal) decimal.Decimal {
	return annual.Mul(r.RegimeBRate)
}

// EvaluateRegimes computes both APV regimes for the profile and picks one. Regime A is the
// default; Regime B wins only for high incomes and only when its benefit is strictly larger.
func (r Rules) EvaluateRegimes(profile domain.UserProfile) domain.RegimeComparison {
	annual := profile.AnnualContribution()

	optionA := buildRegime(domain.RegimeA, r.RegimeABenefit(annual))
	optionB := buildRegime(domain.RegimeB, r.RegimeBBenefit(annual))

	recommended := domain.RegimeA
	if profile.Salary.GreaterThanOrEqual(r.HighIncomeThreshold) && optionB.BenefitValue.GreaterThan(optionA.BenefitValue) {
		recommended = domain.RegimeB
	}

	optionA.IsRecommended = recommended == domain.RegimeA
	optionB.IsRecommended = recommended == domain.RegimeB

	return domain.RegimeComparison{
		RegimeA:           optionA,
		RegimeB:           optionB,
		RecommendedRegime: recommended,
	}
}

func buildRegime(regime domain.RegimeType, benefit decimal.Decimal) domain.ProductRecommendation {
	rec := domain.ProductRecommendation{
		Type:           domain.ProductAPV,
		Regime:         regime,
		PrimaryMessage: "Regime " + string(regime),
		BenefitValue:   benefit,
	}
	if regime == domain.RegimeA {
		rec.Badge = "State bonus"
		rec.SecondaryMessage = "Tax bonus (15%)"
	} else {
		rec.Badge = "Tax efficiency"
		rec.SecondaryMessage = "Income tax rebate"
	}
	return rec
}
