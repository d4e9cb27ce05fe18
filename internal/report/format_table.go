package report

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

const ruleWidth = 72

// TableFormatter formats advisor output as console tables
type TableFormatter struct{}

// FormatRecommendation renders the product recommendation. For APV both regimes are
// shown; override, when non-nil, marks the regime the user chose to view.
func (tf *TableFormatter) FormatRecommendation(out *domain.SimulationOutput, override *domain.RegimeType) string {
	var sb strings.Builder

	sb.WriteString("SAVINGS RECOMMENDATION\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	if out == nil {
		sb.WriteString("No recommendation: enter a monthly salary greater than zero.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Recommended product: %s [%s]\n\n", out.BestProduct.String(), string(out.BestProduct)))

	switch {
	case out.APVComparison != nil:
		cmp := out.APVComparison
		selected := cmp.Selected(override).Regime
		for _, regime := range []domain.RegimeType{domain.RegimeA, domain.RegimeB} {
			rec := cmp.Regime(regime)
			marker := " "
			if rec.IsRecommended {
				marker = "*"
			}
			viewing := ""
			if regime == selected {
				viewing = "  <- viewing"
			}
			sb.WriteString(fmt.Sprintf("%s %-10s %-16s %-24s %12s%s\n",
				marker,
				rec.PrimaryMessage,
				rec.Badge,
				rec.SecondaryMessage,
				FormatMoneyExact(rec.BenefitValue),
				viewing))
		}
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		sb.WriteString(fmt.Sprintf("* recommended: Regime %s (annual benefit)\n", cmp.RecommendedRegime))
	case len(out.AvailableFunds) > 0:
		sb.WriteString(tf.FormatCatalog(out.AvailableFunds))
	}

	return sb.String()
}

// FormatCatalog renders fund tiers with their rates and current shares
func (tf *TableFormatter) FormatCatalog(funds []domain.FundOption) string {
	var sb strings.Builder

	labelWidth := 22
	sb.WriteString(fmt.Sprintf("%-6s %-*s %8s %8s  %s\n", "Fund", labelWidth, "Profile", "Rate", "Share", "Description"))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	total := 0
	for _, f := range funds {
		total += f.Percent
		sb.WriteString(fmt.Sprintf("%-6s %-*s %7s%% %7d%%  %s\n",
			f.Type,
			labelWidth, tf.truncate(f.Label, labelWidth),
			f.AnnualRate.Mul(decimal.NewFromInt(100)).StringFixed(1),
			f.Percent,
			f.Description))
	}
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	sb.WriteString(fmt.Sprintf("%-6s %-*s %8s %7d%%\n", "Total", labelWidth, "", "", total))

	return sb.String()
}

// FormatProjection renders a projection comparison
func (tf *TableFormatter) FormatProjection(c *Comparison) string {
	var sb strings.Builder

	sb.WriteString("PROJECTION COMPARISON\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly contribution: %s over %d years\n\n",
		FormatMoneyExact(c.MonthlyContribution), c.Years))

	nameWidth := 20
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Final Balance",
		numWidth, "Difference",
		numWidth, "Change"))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, c.Base.Name,
		numWidth, FormatMoney(c.Base.Amount),
		numWidth, "-",
		numWidth, "-"))

	if len(c.Alternatives) > 0 {
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, alt := range c.Alternatives {
			sb.WriteString(tf.formatRow(alt, nameWidth, numWidth))
		}
	}
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	if len(c.Recommendations) > 0 {
		sb.WriteString("\nSUMMARY\n")
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, rec := range c.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(row ScenarioRow, nameWidth, numWidth int) string {
	symbol := tf.deltaSymbol(row.DiffFromBase)
	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, tf.truncate(row.Name, nameWidth),
		numWidth, FormatMoney(row.Amount),
		numWidth, symbol+FormatMoney(row.DiffFromBase.Abs()),
		numWidth, symbol+row.PctFromBase.Abs().StringFixed(1)+"%")
}

// FormatCompact creates a single-line summary of a comparison
func (tf *TableFormatter) FormatCompact(c *Comparison) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s | ", c.Base.Name, FormatMoney(c.Base.Amount)))
	for i, alt := range c.Alternatives {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.DiffFromBase.IsPositive() {
			change = "+" + FormatMoney(alt.DiffFromBase)
		} else if alt.DiffFromBase.IsNegative() {
			change = "-" + FormatMoney(alt.DiffFromBase.Abs())
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.FundType, change))
	}

	return sb.String()
}

// deltaSymbol returns the sign prefix for a difference
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// Currency is the ISO code printed with every amount. Contributions, the UTM and the
// income threshold are all in Chilean pesos.
const Currency = "CLP"

// FormatMoney abbreviates an amount and labels it with the currency, e.g. "CLP 1.20M"
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + Currency + " " + FormatAmount(d.Abs())
	}
	return Currency + " " + FormatAmount(d)
}

// FormatMoneyExact prints a whole amount with the currency, e.g. "CLP 180000"
func FormatMoneyExact(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + Currency + " " + d.Abs().StringFixed(0)
	}
	return Currency + " " + d.StringFixed(0)
}

// FormatAmount abbreviates an amount as 1.23M, 45.6K or a whole number
func FormatAmount(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}
