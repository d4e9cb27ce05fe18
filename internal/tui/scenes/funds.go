package scenes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/savings-advisor/internal/allocation"
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/tui/components"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuimsg"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuistyles"
)

// PercentStep is how much left/right moves a fund's share
const PercentStep = 5

// FundsModel lets the user build an allocation across fund tiers
type FundsModel struct {
	funds   []domain.FundOption
	focused int
	message string
	width   int
	height  int
}

// NewFundsModel creates an empty funds scene
func NewFundsModel() *FundsModel {
	return &FundsModel{}
}

// SetFunds replaces the displayed allocation
func (m *FundsModel) SetFunds(funds []domain.FundOption) {
	m.funds = funds
	if m.focused >= len(funds) {
		m.focused = 0
	}
	if allocation.IsValidDistribution(funds) {
		m.message = ""
	}
}

// SetMessage shows a validation message under the allocation bar
func (m *FundsModel) SetMessage(msg string) {
	m.message = msg
}

// SetSize updates the scene dimensions
func (m *FundsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focused returns the index of the focused fund
func (m *FundsModel) Focused() int {
	return m.focused
}

// Update handles messages for the funds scene
func (m *FundsModel) Update(msg tea.Msg) (*FundsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.funds) == 0 {
		return m, nil
	}

	current := m.funds[m.focused]
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.focused > 0 {
			m.focused--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.focused < len(m.funds)-1 {
			m.focused++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "x"))):
		return m, func() tea.Msg { return tuimsg.FundToggledMsg{Fund: current.Type} }
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "+", "l"))):
		return m, setPercent(current.Type, min(current.Percent+PercentStep, allocation.FullAllocation))
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "-", "h"))):
		return m, setPercent(current.Type, max(current.Percent-PercentStep, 0))
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		return m, func() tea.Msg { return tuimsg.ProjectionRequestedMsg{} }
	}
	return m, nil
}

func setPercent(ft domain.FundType, pct int) tea.Cmd {
	return func() tea.Msg {
		return tuimsg.FundPercentChangedMsg{Fund: ft, Percent: pct}
	}
}

// View renders the funds scene
func (m *FundsModel) View() string {
	if len(m.funds) == 0 {
		return tuistyles.BorderStyle.Render("No funds available for the current recommendation.")
	}

	title := tuistyles.TitleStyle.Render("Choose your funds")
	list := components.FundSliderList(m.funds, m.focused, 25)
	bar := components.NewAllocationBar(m.funds).WithLabel("Allocation").WithWidth(50).Render()

	sections := []string{title, "", list, "", bar}
	if m.message != "" {
		sections = append(sections, "", tuistyles.ErrorStyle.Render(m.message))
	} else if !allocation.IsValidDistribution(m.funds) {
		sections = append(sections, "", tuistyles.InfoStyle.Render(
			fmt.Sprintf("Shares must total %d%% before projecting", allocation.FullAllocation)))
	}
	sections = append(sections, "", tuistyles.HelpDescStyle.Render(
		"↑/↓ select • space toggle • ←/→ adjust by 5 • enter project • esc back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
