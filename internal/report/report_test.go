package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/savings-advisor/internal/calculation"
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() domain.ProjectionResult {
	return domain.ProjectionResult{
		UserStrategyAmount: decimal.NewFromInt(1000000),
		Scenarios: []domain.ProjectionScenario{
			{FundType: domain.FundA, Amount: decimal.NewFromInt(1200000), Color: "#d32f2f", Difference: decimal.NewFromInt(200000)},
			{FundType: domain.FundC, Amount: decimal.NewFromInt(1000000), Color: "#fbc02d", Difference: decimal.Zero},
			{FundType: domain.FundE, Amount: decimal.NewFromInt(900000), Color: "#1976d2", Difference: decimal.NewFromInt(-100000)},
		},
	}
}

func apvOutput() *domain.SimulationOutput {
	profile := domain.UserProfile{
		Salary:              decimal.NewFromInt(1000000),
		MonthlyContribution: decimal.NewFromInt(100000),
		Goal:                domain.GoalPension,
		Horizon:             10,
		Age:                 35,
	}
	return calculation.NewEngine().Recommend(profile)
}

func TestNewComparison(t *testing.T) {
	c := NewComparison(sampleResult(), decimal.NewFromInt(50000), 10)

	assert.Equal(t, UserStrategyName, c.Base.Name)
	require.Len(t, c.Alternatives, 3)
	assert.Equal(t, "Fund A", c.Alternatives[0].Name)
	assert.True(t, c.Alternatives[0].PctFromBase.Equal(decimal.NewFromInt(20)))
	assert.True(t, c.Alternatives[2].PctFromBase.Equal(decimal.NewFromInt(-10)))

	require.Len(t, c.Recommendations, 2)
	assert.Equal(t, "Highest balance: Fund A would end CLP 200000 above your allocation", c.Recommendations[0])
	assert.Equal(t, "Lowest balance: Fund E would end CLP 100000 below your allocation", c.Recommendations[1])
}

func TestNewComparison_ZeroBase(t *testing.T) {
	result := domain.ProjectionResult{
		UserStrategyAmount: decimal.Zero,
		Scenarios: []domain.ProjectionScenario{
			{FundType: domain.FundA, Amount: decimal.NewFromInt(10), Difference: decimal.NewFromInt(10)},
		},
	}
	c := NewComparison(result, decimal.Zero, 0)
	assert.True(t, c.Alternatives[0].PctFromBase.IsZero(), "no division by a zero base")
}

func TestGenerateRecommendations_UserBeatsAll(t *testing.T) {
	result := domain.ProjectionResult{
		UserStrategyAmount: decimal.NewFromInt(100),
		Scenarios: []domain.ProjectionScenario{
			{FundType: domain.FundD, Amount: decimal.NewFromInt(100), Difference: decimal.Zero},
		},
	}
	recs := GenerateRecommendations(result)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "matches or beats")

	assert.Empty(t, GenerateRecommendations(domain.ProjectionResult{}))
}

func TestGenerateRecommendations_NegativeContribution(t *testing.T) {
	// with withdrawals the highest-rate fund ends lowest
	allocation := calculation.FundCatalog()
	allocation[2].Percent = 100
	result := calculation.BuildProjectionResult(decimal.NewFromInt(-100000), 5, allocation)

	recs := GenerateRecommendations(result)
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "Highest balance: Fund E")
	assert.Contains(t, recs[1], "Lowest balance: Fund A")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "CLP 1.20M", FormatMoney(decimal.NewFromInt(1200000)))
	assert.Equal(t, "-CLP 45.6K", FormatMoney(decimal.NewFromInt(-45600)))
	assert.Equal(t, "CLP 999", FormatMoney(decimal.NewFromInt(999)))
	assert.Equal(t, "CLP 180000", FormatMoneyExact(decimal.NewFromInt(180000)))
	assert.Equal(t, "-CLP 5", FormatMoneyExact(decimal.NewFromInt(-5)))
}

func TestTableFormatter_FormatProjection(t *testing.T) {
	tf := &TableFormatter{}
	out := tf.FormatProjection(NewComparison(sampleResult(), decimal.NewFromInt(50000), 10))

	assert.Contains(t, out, "PROJECTION COMPARISON")
	assert.Contains(t, out, "CLP 50000 over 10 years")
	assert.Contains(t, out, UserStrategyName)
	assert.Contains(t, out, "CLP 1.00M")
	assert.Contains(t, out, "+CLP 200.0K")
	assert.Contains(t, out, "-CLP 100.0K")
	assert.Contains(t, out, "+20.0%")
	assert.Contains(t, out, "SUMMARY")
}

func TestTableFormatter_FormatRecommendation(t *testing.T) {
	tf := &TableFormatter{}

	t.Run("no salary", func(t *testing.T) {
		out := tf.FormatRecommendation(nil, nil)
		assert.Contains(t, out, "No recommendation")
	})

	t.Run("APV", func(t *testing.T) {
		out := tf.FormatRecommendation(apvOutput(), nil)
		assert.Contains(t, out, "APV")
		assert.Contains(t, out, "Regime A")
		assert.Contains(t, out, "Regime B")
		assert.Contains(t, out, "CLP 180000")
		assert.Contains(t, out, "CLP 276000")
		assert.Contains(t, out, "recommended: Regime A")
	})

	t.Run("APV with override", func(t *testing.T) {
		override := domain.RegimeB
		out := tf.FormatRecommendation(apvOutput(), &override)
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, "<- viewing") {
				assert.Contains(t, line, "Regime B")
			}
		}
		assert.Contains(t, out, "recommended: Regime A")
	})

	t.Run("CUENTA2", func(t *testing.T) {
		rec := &domain.SimulationOutput{
			BestProduct:    domain.ProductCuenta2,
			AvailableFunds: calculation.FundCatalog(),
		}
		out := tf.FormatRecommendation(rec, nil)
		assert.Contains(t, out, "CUENTA2")
		assert.Contains(t, out, "6.0%")
		assert.Contains(t, out, "2.0%")
		assert.Contains(t, out, "Total")
	})
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	tf := &TableFormatter{}
	out := tf.FormatCompact(NewComparison(sampleResult(), decimal.NewFromInt(50000), 10))
	assert.Equal(t, "Your allocation: CLP 1.00M | A: +CLP 200.0K | C: = | E: -CLP 100.0K", out)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(999), "999"},
		{decimal.NewFromInt(1500), "1.5K"},
		{decimal.NewFromInt(2500000), "2.50M"},
		{decimal.NewFromInt(-2500000), "-2.50M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in))
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	c := NewComparison(sampleResult(), decimal.NewFromInt(50000), 10)

	compact, err := (&JSONFormatter{}).Format(c)
	require.NoError(t, err)
	assert.NotContains(t, compact, "\n")

	pretty, err := (&JSONFormatter{Pretty: true}).Format(c)
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n  ")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(pretty), &decoded))
	assert.Contains(t, decoded, "alternatives")
	assert.Contains(t, decoded, "recommendations")
}

func TestJSONFormatter_SimulationOutputFields(t *testing.T) {
	out, err := (&JSONFormatter{}).Format(apvOutput())
	require.NoError(t, err)
	assert.Contains(t, out, `"bestProduct":"APV"`)
	assert.Contains(t, out, `"recommendedRegime":"A"`)
}

func TestCSVFormatter_FormatProjection(t *testing.T) {
	out, err := (&CSVFormatter{}).FormatProjection(NewComparison(sampleResult(), decimal.NewFromInt(50000), 10))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Scenario,Type,Fund,Final Balance,Diff from Base,% Change", lines[0])
	assert.Equal(t, "Your allocation,base,,1000000.00,0.00,0.00", lines[1])
	assert.Equal(t, "Fund E,alternative,E,900000.00,-100000.00,-10.00", lines[4])
}

func TestCSVFormatter_FormatRecommendation(t *testing.T) {
	cf := &CSVFormatter{}

	out, err := cf.FormatRecommendation(apvOutput())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "APV,A,State bonus,180000.00,true", lines[1])
	assert.Equal(t, "APV,B,Tax efficiency,276000.00,false", lines[2])

	out, err = cf.FormatRecommendation(&domain.SimulationOutput{
		BestProduct:    domain.ProductCuenta2,
		AvailableFunds: calculation.FundCatalog(),
	})
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
	assert.Contains(t, out, "A,")
	assert.Contains(t, out, "0.0600")
}

func TestRenderer(t *testing.T) {
	c := NewComparison(sampleResult(), decimal.NewFromInt(50000), 10)

	for _, format := range []string{"table", "json", "csv", "JSON"} {
		r := NewRenderer(format, true)
		out, err := r.Projection(c)
		require.NoError(t, err, format)
		assert.NotEmpty(t, out)

		out, err = r.Recommendation(apvOutput(), nil)
		require.NoError(t, err, format)
		assert.NotEmpty(t, out)

		out, err = r.Catalog(calculation.FundCatalog())
		require.NoError(t, err, format)
		assert.NotEmpty(t, out)
	}

	_, err := NewRenderer("xml", false).Projection(c)
	assert.Error(t, err)
}
