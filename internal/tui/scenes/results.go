package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/report"
	"github.com/rgehrsitz/savings-advisor/internal/tui/components"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuistyles"
)

// ResultsModel closes the wizard. For CUENTA2 it shows the finished projection next to
// every single-fund alternative; for APV it shows the regime the user settled on.
type ResultsModel struct {
	comparison  *report.Comparison
	regime      *domain.ProductRecommendation
	alternative domain.ProductRecommendation
	width       int
	height      int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResult updates the projection to display
func (m *ResultsModel) SetResult(result domain.ProjectionResult, monthlyContribution decimal.Decimal, years int) {
	m.comparison = report.NewComparison(result, monthlyContribution, years)
}

// Clear removes the displayed projection
func (m *ResultsModel) Clear() {
	m.comparison = nil
}

// SetRegimeChoice records the featured APV regime and the one it was chosen over
func (m *ResultsModel) SetRegimeChoice(selected, alternative domain.ProductRecommendation) {
	m.regime = &selected
	m.alternative = alternative
}

// ClearRegimeChoice removes the regime summary
func (m *ResultsModel) ClearRegimeChoice() {
	m.regime = nil
	m.alternative = domain.ProductRecommendation{}
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	// read-only
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.comparison == nil {
		if m.regime != nil {
			return m.renderRegimeChoice()
		}
		return tuistyles.BorderStyle.Render("No projection yet.\n\nBuild an allocation that totals 100% and press enter.")
	}

	c := m.comparison
	header := tuistyles.TitleStyle.Render("Projection") + "\n" +
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("%s per month for %d years",
			tuistyles.FormatCurrency(c.MonthlyContribution), c.Years))

	userCard := components.NewMetricCard(c.Base.Name, tuistyles.FormatCurrency(c.Base.Amount)).
		WithDescription("Projected balance").
		WithWidth(34).
		SetHighlighted(true)

	chart := components.NewBarChart("Single-fund alternatives").WithWidth(36)
	chart.AddBar("Yours", c.Base.Amount, tuistyles.ColorPrimary)
	for _, alt := range c.Alternatives {
		chart.AddBar(alt.Name, alt.Amount, tuistyles.FundColor(alt.Color))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		userCard.Render(),
		"",
		chart.Render(),
		"",
		renderDifferences(c),
		"",
		renderSummary(c),
		"",
		tuistyles.HelpDescStyle.Render("esc adjust funds • q quit"),
	)
}

func renderDifferences(c *report.Comparison) string {
	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-10s %14s %14s", "Fund", "Balance", "Difference")))
	sb.WriteString("\n")
	for _, alt := range c.Alternatives {
		diff := tuistyles.FormatCurrency(alt.DiffFromBase)
		if alt.DiffFromBase.IsPositive() {
			diff = "+" + diff
		}
		diffStyle := tuistyles.TableCellStyle
		if !alt.DiffFromBase.IsZero() {
			diffStyle = tuistyles.MetricTrendStyle(alt.DiffFromBase.IsPositive())
		}
		sb.WriteString(fmt.Sprintf("%-10s %14s ", alt.Name, tuistyles.FormatCurrency(alt.Amount)))
		sb.WriteString(diffStyle.Render(fmt.Sprintf("%14s", diff)))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderSummary(c *report.Comparison) string {
	lines := make([]string, 0, len(c.Recommendations))
	for _, rec := range c.Recommendations {
		lines = append(lines, "• "+rec)
	}
	return tuistyles.InfoStyle.Render(strings.Join(lines, "\n"))
}

func (m *ResultsModel) renderRegimeChoice() string {
	sel := m.regime
	header := tuistyles.TitleStyle.Render("Your APV plan") + "\n" +
		tuistyles.SubtitleStyle.Render("Tax benefit of the regime you chose")

	card := components.NewMetricCard(sel.PrimaryMessage, tuistyles.FormatCurrency(sel.BenefitValue)+" / year").
		WithBadge(sel.Badge).
		WithDescription(sel.SecondaryMessage).
		WithWidth(34).
		SetHighlighted(sel.IsRecommended).
		SetSelected(true)

	var note string
	if sel.IsRecommended {
		note = tuistyles.MetricPositiveStyle.Render(fmt.Sprintf("Regime %s is the advisor's recommendation (Regime %s: %s / year).",
			sel.Regime, m.alternative.Regime, tuistyles.FormatCurrency(m.alternative.BenefitValue)))
	} else {
		note = tuistyles.MetricNegativeStyle.Render(fmt.Sprintf("The advisor recommends Regime %s (%s / year) for your income.",
			m.alternative.Regime, tuistyles.FormatCurrency(m.alternative.BenefitValue)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		card.Render(),
		"",
		note,
		"",
		tuistyles.HelpDescStyle.Render("esc change regime • q quit"),
	)
}
