// Package session holds the state a presentation layer keeps between engine calls:
// the user's profile, the allocation being edited, the regime display override and the
// last finalized projection. The engine itself stays stateless.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rgehrsitz/savings-advisor/internal/allocation"
	"github.com/rgehrsitz/savings-advisor/internal/calculation"
	"github.com/rgehrsitz/savings-advisor/internal/domain"
)

var (
	// ErrInvalidDistribution is returned when finalizing an allocation that does not total 100%
	ErrInvalidDistribution = errors.New("fund allocation must total 100%")
	// ErrNoFundProduct is returned when a projection is requested without a fund-based recommendation
	ErrNoFundProduct = errors.New("current recommendation does not use a fund allocation")
)

// Session is safe for concurrent use. Every getter returns a copy.
type Session struct {
	mu sync.RWMutex

	engine         *calculation.Engine
	profile        domain.UserProfile
	funds          []domain.FundOption
	regimeOverride *domain.RegimeType
	result         *domain.ProjectionResult
}

// New creates a session with the default profile. A nil engine uses calculation.NewEngine.
func New(engine *calculation.Engine) *Session {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &Session{
		engine:  engine,
		profile: domain.DefaultProfile(),
	}
}

// Profile returns the current profile
func (s *Session) Profile() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile replaces the whole profile and discards everything derived from the old one
func (s *Session) SetProfile(profile domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.resetLocked()
}

// UpdateProfile changes a single field. Like SetProfile it discards the edited
// allocation, the regime override and the last projection.
func (s *Session) UpdateProfile(field domain.ProfileField, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.profile.With(field, value)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	s.profile = updated
	s.resetLocked()
	return nil
}

func (s *Session) resetLocked() {
	s.funds = nil
	s.regimeOverride = nil
	s.result = nil
}

// Recommendation recomputes the recommendation for the current profile; nil while the
// salary is not positive.
func (s *Session) Recommendation() *domain.SimulationOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Recommend(s.profile)
}

// Funds returns the allocation being edited. It is seeded from the recommendation's
// catalog snapshot the first time a CUENTA2 recommendation is seen.
func (s *Session) Funds() []domain.FundOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureFundsLocked()
	return allocation.Clone(s.funds)
}

func (s *Session) ensureFundsLocked() {
	if len(s.funds) > 0 {
		return
	}
	rec := s.engine.Recommend(s.profile)
	if rec != nil && rec.BestProduct == domain.ProductCuenta2 {
		s.funds = allocation.Clone(rec.AvailableFunds)
	}
}

// ToggleFund applies the toggle rule to the edited allocation and returns the result
func (s *Session) ToggleFund(fundType domain.FundType) []domain.FundOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureFundsLocked()
	s.funds = allocation.ToggleFund(s.funds, fundType)
	s.result = nil
	return allocation.Clone(s.funds)
}

// SetFundPercent sets a fund's share directly and returns the result
func (s *Session) SetFundPercent(fundType domain.FundType, percent int) []domain.FundOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureFundsLocked()
	s.funds = allocation.SetPercent(s.funds, fundType, percent)
	s.result = nil
	return allocation.Clone(s.funds)
}

// SetAllocation overwrites the shares of the listed tiers; unlisted tiers keep theirs
func (s *Session) SetAllocation(percentages map[domain.FundType]int) []domain.FundOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureFundsLocked()
	s.funds = allocation.FromPercentages(s.funds, percentages)
	s.result = nil
	return allocation.Clone(s.funds)
}

// TotalPercent sums the edited allocation
func (s *Session) TotalPercent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureFundsLocked()
	return allocation.TotalPercent(s.funds)
}

// IsValidDistribution reports whether the edited allocation totals exactly 100
func (s *Session) IsValidDistribution() bool {
	return s.TotalPercent() == allocation.FullAllocation
}

// SelectRegime records the regime the user prefers to look at. The engine's
// recommendation is left untouched.
func (s *Session) SelectRegime(regime domain.RegimeType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regimeOverride = &regime
}

// ClearRegimeOverride goes back to showing the engine's pick
func (s *Session) ClearRegimeOverride() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regimeOverride = nil
}

// RegimeOverride returns the user's display preference, if any
func (s *Session) RegimeOverride() (domain.RegimeType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.regimeOverride == nil {
		return "", false
	}
	return *s.regimeOverride, true
}

// SelectedRegime returns the regime to feature: the override if set, otherwise the
// recommended one. ok is false unless the current recommendation is APV.
func (s *Session) SelectedRegime() (rec domain.ProductRecommendation, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.engine.Recommend(s.profile)
	if out == nil || out.APVComparison == nil {
		return domain.ProductRecommendation{}, false
	}
	return out.APVComparison.Selected(s.regimeOverride), true
}

// AlternativeRegime returns the regime not featured by SelectedRegime
func (s *Session) AlternativeRegime() (rec domain.ProductRecommendation, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.engine.Recommend(s.profile)
	if out == nil || out.APVComparison == nil {
		return domain.ProductRecommendation{}, false
	}
	return out.APVComparison.Alternative(s.regimeOverride), true
}

// FinalizeProjection projects the edited allocation against every single-fund tier.
// It refuses to run unless the recommendation is CUENTA2 and the allocation totals 100.
func (s *Session) FinalizeProjection() (domain.ProjectionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.engine.Recommend(s.profile)
	if rec == nil || rec.BestProduct != domain.ProductCuenta2 {
		return domain.ProjectionResult{}, ErrNoFundProduct
	}

	s.ensureFundsLocked()
	if total := allocation.TotalPercent(s.funds); total != allocation.FullAllocation {
		return domain.ProjectionResult{}, fmt.Errorf("%w: currently %d%%", ErrInvalidDistribution, total)
	}

	result := s.engine.BuildProjectionResult(s.profile.MonthlyContribution, s.profile.Horizon, s.funds)
	stored := cloneResult(result)
	s.result = &stored
	return result, nil
}

// ProjectionResult returns the last finalized projection, if it is still current
func (s *Session) ProjectionResult() (domain.ProjectionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return domain.ProjectionResult{}, false
	}
	return cloneResult(*s.result), true
}

func cloneResult(r domain.ProjectionResult) domain.ProjectionResult {
	scenarios := make([]domain.ProjectionScenario, len(r.Scenarios))
	copy(scenarios, r.Scenarios)
	r.Scenarios = scenarios
	return r
}
