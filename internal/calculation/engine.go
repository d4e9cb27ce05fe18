package calculation

import (
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine is the recommendation and projection engine. Every method is a pure function of
// its arguments; the engine keeps no state between calls besides its rules and logger.
type Engine struct {
	Rules  Rules
	Logger Logger
}

// NewEngine creates an engine with the default rules and a no-op logger
func NewEngine() *Engine {
	return &Engine{
		Rules:  DefaultRules(),
		Logger: NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Recommend picks the savings product for a profile. It returns nil while the salary is
// not positive, meaning the profile has not been filled in yet.
func (e *Engine) Recommend(profile domain.UserProfile) *domain.SimulationOutput {
	if profile.Salary.LessThanOrEqual(decimal.Zero) {
		e.Logger.Debugf("no recommendation: salary %s is not positive", profile.Salary.String())
		return nil
	}

	if profile.Goal.NeedsLiquidity() || profile.Horizon < e.Rules.MinHorizon {
		e.Logger.Debugf("recommending %s: goal=%s horizon=%d", domain.ProductCuenta2, profile.Goal, profile.Horizon)
		return &domain.SimulationOutput{
			BestProduct:    domain.ProductCuenta2,
			AvailableFunds: FundCatalog(),
		}
	}

	comparison := e.EvaluateRegimes(profile)
	return &domain.SimulationOutput{
		BestProduct:   domain.ProductAPV,
		APVComparison: &comparison,
	}
}

// EvaluateRegimes computes both APV regime outcomes for the profile
func (e *Engine) EvaluateRegimes(profile domain.UserProfile) domain.RegimeComparison {
	comparison := e.Rules.EvaluateRegimes(profile)
	e.Logger.Debugf("regime A benefit=%s regime B benefit=%s recommended=%s",
		comparison.RegimeA.BenefitValue.StringFixed(2),
		comparison.RegimeB.BenefitValue.StringFixed(2),
		comparison.RecommendedRegime)
	return comparison
}

// BuildProjectionResult projects the user's allocation against every single-fund tier
func (e *Engine) BuildProjectionResult(monthlyAmount decimal.Decimal, years int, allocation []domain.FundOption) domain.ProjectionResult {
	result := BuildProjectionResult(monthlyAmount, years, allocation)
	e.Logger.Debugf("projection result: monthly=%s years=%d weighted rate=%s user amount=%s scenarios=%d",
		monthlyAmount.StringFixed(2), years, WeightedAnnualRate(allocation).String(),
		result.UserStrategyAmount.StringFixed(2), len(result.Scenarios))
	return result
}
