package calculation

import (
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// WeightedAnnualRate blends the annual rates of every fund with a positive share.
// Shares are not required to total 100.
func WeightedAnnualRate(allocation []domain.FundOption) decimal.Decimal {
	rate := decimal.Zero
	for _, fund := range allocation {
		if fund.Percent > 0 {
			weight := decimal.NewFromInt(int64(fund.Percent)).Div(hundred)
			rate = rate.Add(weight.Mul(fund.AnnualRate))
		}
	}
	return rate
}

// CalculateProjection returns the future value of contributing monthlyAmount at the end of
// every month for years years, growing at the allocation's weighted rate compounded monthly.
// A zero rate degrades to the plain sum of contributions. Negative inputs are not rejected;
// the result for them is whatever the annuity formula yields.
func CalculateProjection(monthlyAmount decimal.Decimal, years int, allocation []domain.FundOption) decimal.Decimal {
	monthlyRate := WeightedAnnualRate(allocation).Div(monthsInYear)
	months := decimal.NewFromInt(int64(years) * 12)

	if monthlyRate.IsZero() {
		return monthlyAmount.Mul(months)
	}

	growth := decimal.NewFromInt(1).Add(monthlyRate).Pow(months)
	return monthlyAmount.Mul(growth.Sub(decimal.NewFromInt(1)).Div(monthlyRate))
}

// BuildProjectionResult projects the user's allocation and, for comparison, a 100%
// allocation to each catalog tier in A..E order. Each scenario carries its signed
// difference from the user's amount.
func BuildProjectionResult(monthlyAmount decimal.Decimal, years int, allocation []domain.FundOption) domain.ProjectionResult {
	userAmount := CalculateProjection(monthlyAmount, years, allocation)

	scenarios := make([]domain.ProjectionScenario, 0, len(domain.FundTypes))
	for _, fundType := range domain.FundTypes {
		fund, ok := GetFundData(fundType)
		if !ok {
			continue
		}
		fund.Percent = 100
		amount := CalculateProjection(monthlyAmount, years, []domain.FundOption{fund})

		scenarios = append(scenarios, domain.ProjectionScenario{
			FundType:   fundType,
			Amount:     amount,
			Color:      fund.Color,
			Difference: amount.Sub(userAmount),
		})
	}

	return domain.ProjectionResult{
		UserStrategyAmount: userAmount,
		Scenarios:          scenarios,
	}
}
