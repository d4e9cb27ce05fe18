package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/tui/components"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuimsg"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuistyles"
)

// RecommendationModel shows the recommended product. For APV it shows both regimes
// and lets the user switch which one is in view.
type RecommendationModel struct {
	output   *domain.SimulationOutput
	override *domain.RegimeType
	profile  domain.UserProfile
	width    int
	height   int
}

// NewRecommendationModel creates an empty recommendation scene
func NewRecommendationModel() *RecommendationModel {
	return &RecommendationModel{}
}

// SetRecommendation updates what the scene displays
func (m *RecommendationModel) SetRecommendation(profile domain.UserProfile, output *domain.SimulationOutput, override *domain.RegimeType) {
	m.profile = profile
	m.output = output
	m.override = override
}

// SetSize updates the scene dimensions
func (m *RecommendationModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the recommendation scene
func (m *RecommendationModel) Update(msg tea.Msg) (*RecommendationModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.output == nil {
		return m, nil
	}

	if m.output.APVComparison != nil {
		selected := m.output.APVComparison.Selected(m.override).Regime
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "right", "tab"))):
			return m, selectRegime(selected.Other())
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("a"))):
			return m, selectRegime(domain.RegimeA)
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("b"))):
			return m, selectRegime(domain.RegimeB)
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("r"))):
			return m, func() tea.Msg { return tuimsg.RegimeClearedMsg{} }
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
			return m, func() tea.Msg { return tuimsg.NextStepMsg{} }
		}
		return m, nil
	}

	if key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))) {
		return m, func() tea.Msg { return tuimsg.NextStepMsg{} }
	}
	return m, nil
}

func selectRegime(r domain.RegimeType) tea.Cmd {
	return func() tea.Msg {
		return tuimsg.RegimeSelectedMsg{Regime: r}
	}
}

// View renders the recommendation scene
func (m *RecommendationModel) View() string {
	if m.output == nil {
		return tuistyles.BorderStyle.Render(
			"No recommendation yet.\n\n" +
				"Enter a monthly salary greater than zero on the profile step.")
	}

	header := tuistyles.TitleStyle.Render("Recommended product: "+m.output.BestProduct.String()) + "\n" +
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("Goal %s, %d year horizon", m.profile.Goal, m.profile.Horizon))

	if m.output.APVComparison != nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", m.renderRegimes(), "", renderRecommendationHelp(true))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.renderLiquidAccount(), "", renderRecommendationHelp(false))
}

func (m *RecommendationModel) renderRegimes() string {
	cmp := m.output.APVComparison
	selected := cmp.Selected(m.override).Regime

	cards := make([]*components.MetricCard, 0, 2)
	for _, r := range []domain.RegimeType{domain.RegimeA, domain.RegimeB} {
		rec := cmp.Regime(r)
		card := components.NewMetricCard(rec.PrimaryMessage, tuistyles.FormatCurrency(rec.BenefitValue)+" / year").
			WithBadge(rec.Badge).
			WithDescription(rec.SecondaryMessage).
			WithWidth(34).
			SetHighlighted(rec.IsRecommended).
			SetSelected(r == selected)
		if rec.IsRecommended {
			card.WithTrend(true, "recommended")
		}
		cards = append(cards, card)
	}

	var note string
	if selected != cmp.RecommendedRegime {
		alt := cmp.Alternative(m.override)
		note = "\n" + tuistyles.InfoStyle.Render(fmt.Sprintf(
			"Viewing Regime %s. The advisor recommends Regime %s (%s / year).",
			selected, alt.Regime, tuistyles.FormatCurrency(alt.BenefitValue)))
	}

	return components.MetricGrid(cards, 2) + note
}

func (m *RecommendationModel) renderLiquidAccount() string {
	var content strings.Builder
	content.WriteString("Your goal needs money you can reach before retirement, so a liquid\n")
	content.WriteString("account fits better than a retirement product.\n\n")
	content.WriteString(tuistyles.MetricLabelStyle.Render("Available funds"))
	content.WriteString("\n")
	for _, f := range m.output.AvailableFunds {
		swatch := lipgloss.NewStyle().Foreground(tuistyles.FundColor(f.Color)).Render("■")
		content.WriteString(fmt.Sprintf("  %s Fund %s  %-18s %s\n", swatch, f.Type, f.Label,
			tuistyles.SubtitleStyle.Render(f.Description)))
	}
	return tuistyles.BorderStyle.Render(strings.TrimRight(content.String(), "\n"))
}

func renderRecommendationHelp(apv bool) string {
	if apv {
		return tuistyles.HelpDescStyle.Render("←/→ switch regime • a/b pick • r reset to recommended • enter confirm • esc back")
	}
	return tuistyles.HelpDescStyle.Render("enter choose funds • esc back")
}
