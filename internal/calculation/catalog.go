package calculation

import (
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

// fundsCatalog is the reference list of fund tiers. Callers only ever see clones.
var fundsCatalog = []domain.FundOption{
	{Type: domain.FundA, Label: "Most aggressive", Description: "Aggressive investment", Color: "#d32f2f", AnnualRate: decimal.NewFromFloat(0.06)},
	{Type: domain.FundB, Label: "Aggressive", Description: "High growth", Color: "#e64a19", AnnualRate: decimal.NewFromFloat(0.05)},
	{Type: domain.FundC, Label: "Moderate", Description: "Balanced growth", Color: "#fbc02d", AnnualRate: decimal.NewFromFloat(0.04)},
	{Type: domain.FundD, Label: "Conservative", Description: "Low risk", Color: "#388e3c", AnnualRate: decimal.NewFromFloat(0.03)},
	{Type: domain.FundE, Label: "Most conservative", Description: "Maximum safety", Color: "#1976d2", AnnualRate: decimal.NewFromFloat(0.02)},
}

// FundCatalog returns a fresh copy of every fund tier with its default (zero) share.
// The returned slice is owned by the caller.
func FundCatalog() []domain.FundOption {
	return CloneFunds(fundsCatalog)
}

// CloneFunds copies funds into a new slice. FundOption holds no references, so a
// shallow element copy is already independent of the source.
func CloneFunds(funds []domain.FundOption) []domain.FundOption {
	if funds == nil {
		return nil
	}
	out := make([]domain.FundOption, len(funds))
	copy(out, funds)
	return out
}

// GetFundData looks up the catalog entry for a tier
func GetFundData(fundType domain.FundType) (domain.FundOption, bool) {
	for _, f := range fundsCatalog {
		if f.Type == fundType {
			return f, true
		}
	}
	return domain.FundOption{}, false
}
