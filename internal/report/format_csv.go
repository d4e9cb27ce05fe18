package report

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
)

// CSVFormatter formats advisor output as CSV
type CSVFormatter struct{}

// FormatProjection writes one row for the user's allocation and one per fund tier
func (cf *CSVFormatter) FormatProjection(c *Comparison) (string, error) {
	rows := [][]string{
		{"Scenario", "Type", "Fund", "Final Balance", "Diff from Base", "% Change"},
		cf.projectionRow(c.Base, "base"),
	}
	for _, alt := range c.Alternatives {
		rows = append(rows, cf.projectionRow(alt, "alternative"))
	}
	return cf.write(rows)
}

// FormatRecommendation writes the regime comparison or the fund catalog, whichever applies
func (cf *CSVFormatter) FormatRecommendation(out *domain.SimulationOutput) (string, error) {
	if out == nil {
		return cf.write([][]string{{"Product"}})
	}

	if out.APVComparison != nil {
		rows := [][]string{{"Product", "Regime", "Badge", "Benefit", "Recommended"}}
		for _, regime := range []domain.RegimeType{domain.RegimeA, domain.RegimeB} {
			rec := out.APVComparison.Regime(regime)
			rows = append(rows, []string{
				string(rec.Type),
				string(rec.Regime),
				rec.Badge,
				rec.BenefitValue.StringFixed(2),
				strconv.FormatBool(rec.IsRecommended),
			})
		}
		return cf.write(rows)
	}

	return cf.FormatCatalog(out.AvailableFunds)
}

// FormatCatalog writes one row per fund tier
func (cf *CSVFormatter) FormatCatalog(funds []domain.FundOption) (string, error) {
	rows := [][]string{{"Fund", "Label", "Annual Rate", "Percent", "Color"}}
	for _, f := range funds {
		rows = append(rows, []string{
			string(f.Type),
			f.Label,
			f.AnnualRate.StringFixed(4),
			strconv.Itoa(f.Percent),
			f.Color,
		})
	}
	return cf.write(rows)
}

func (cf *CSVFormatter) projectionRow(row ScenarioRow, scenarioType string) []string {
	return []string{
		row.Name,
		scenarioType,
		string(row.FundType),
		row.Amount.StringFixed(2),
		row.DiffFromBase.StringFixed(2),
		row.PctFromBase.StringFixed(2),
	}
}

func (cf *CSVFormatter) write(rows [][]string) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
