package calculation

import (
	"testing"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.True(t, engine.Rules.UTM.Equal(decimal.NewFromInt(64793)))
	assert.True(t, engine.Rules.HighIncomeThreshold.Equal(decimal.NewFromInt(4867941)))
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_LogsDecisions(t *testing.T) {
	engine := NewEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	engine.Recommend(profile(1000000, 100000, domain.GoalPension, 10))
	assert.NotEmpty(t, logger.messages)
}

func TestRecommend_NoSalary(t *testing.T) {
	engine := NewEngine()

	for _, salary := range []int64{0, -1, -1000000} {
		p := profile(salary, 100000, domain.GoalPension, 20)
		assert.Nil(t, engine.Recommend(p), "salary %d should not produce a recommendation", salary)
	}
}

func TestRecommend_LiquidityGoals(t *testing.T) {
	engine := NewEngine()

	for _, goal := range []domain.Goal{domain.GoalFlexibility, domain.GoalEmergency, domain.GoalProject} {
		for _, salary := range []int64{1, 1000000, 10000000} {
			out := engine.Recommend(profile(salary, 100000, goal, 20))
			require.NotNil(t, out)
			assert.Equal(t, domain.ProductCuenta2, out.BestProduct, "goal %s salary %d", goal, salary)
			assert.Nil(t, out.APVComparison)
			assert.Len(t, out.AvailableFunds, 5)
		}
	}
}

func TestRecommend_ShortHorizon(t *testing.T) {
	engine := NewEngine()

	for horizon := -1; horizon < 5; horizon++ {
		out := engine.Recommend(profile(10000000, 100000, domain.GoalPension, horizon))
		require.NotNil(t, out)
		assert.Equal(t, domain.ProductCuenta2, out.BestProduct, "horizon %d", horizon)
	}
}

func TestRecommend_Pension(t *testing.T) {
	engine := NewEngine()

	for _, horizon := range []int{5, 10, 40} {
		out := engine.Recommend(profile(1000000, 100000, domain.GoalPension, horizon))
		require.NotNil(t, out)
		assert.Equal(t, domain.ProductAPV, out.BestProduct)
		require.NotNil(t, out.APVComparison)
		assert.Nil(t, out.AvailableFunds)
	}
}

func TestRecommend_FundSnapshotIsIndependent(t *testing.T) {
	engine := NewEngine()
	p := profile(1000000, 100000, domain.GoalEmergency, 20)

	first := engine.Recommend(p)
	require.NotNil(t, first)
	for _, f := range first.AvailableFunds {
		assert.Equal(t, 0, f.Percent, "catalog snapshot should start unallocated")
	}

	first.AvailableFunds[0].Percent = 100

	second := engine.Recommend(p)
	assert.Equal(t, 0, second.AvailableFunds[0].Percent, "mutating a snapshot must not leak into the catalog")
}

func TestRecommend_Idempotent(t *testing.T) {
	engine := NewEngine()

	for _, p := range []domain.UserProfile{
		profile(0, 0, domain.GoalPension, 5),
		profile(1000000, 100000, domain.GoalPension, 10),
		profile(5000000, 100000, domain.GoalPension, 10),
		profile(800000, 50000, domain.GoalProject, 3),
	} {
		assert.Equal(t, engine.Recommend(p), engine.Recommend(p))
	}
}

func TestEngine_BuildProjectionResultLogsWeightedRate(t *testing.T) {
	engine := NewEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	allocation := FundCatalog()
	allocation[2].Percent = 100
	result := engine.BuildProjectionResult(decimal.NewFromInt(100000), 5, allocation)

	require.Len(t, result.Scenarios, len(domain.FundTypes))
	require.NotEmpty(t, logger.messages)
	assert.Contains(t, logger.messages[len(logger.messages)-1], "weighted rate=%s")
}

func profile(salary, contribution int64, goal domain.Goal, horizon int) domain.UserProfile {
	return domain.UserProfile{
		Salary:              decimal.NewFromInt(salary),
		MonthlyContribution: decimal.NewFromInt(contribution),
		Goal:                goal,
		Horizon:             horizon,
		Age:                 30,
	}
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
