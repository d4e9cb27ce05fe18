package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneProfile:
		content = m.profileModel.View()
	case SceneRecommendation:
		content = m.recommendationModel.View()
	case SceneFunds:
		content = m.fundsModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 5 // title (2) + status (2) + padding (1)
	if contentHeight < 1 {
		contentHeight = 1
	}

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	))
}

// renderTitleBar renders the application title and the wizard breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Savings Advisor")

	steps := make([]string, 0, len(wizardSteps))
	for _, s := range wizardSteps {
		if s == m.currentScene {
			steps = append(steps, SelectedItemStyle.Render(s.String()))
		} else {
			steps = append(steps, SubtitleStyle.Render(s.String()))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		strings.Join(steps, SubtitleStyle.Render(" › ")),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	if m.currentScene == SceneProfile {
		shortcuts = []string{
			formatShortcut("tab", "next field"),
			formatShortcut("ctrl+s", "continue"),
			formatShortcut("ctrl+c", "quit"),
		}
	} else {
		shortcuts = []string{
			formatShortcut("esc", "back"),
			formatShortcut("?", "help"),
			formatShortcut("q", "quit"),
		}
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.profilePath != "" {
		profileName := SubtitleStyle.Render(m.profilePath)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(profileName) - 4
		statusText = statusText + strings.Repeat(" ", max(0, width)) + profileName
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
	return m.renderApp(content)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
Savings Advisor

STEPS:
  Profile         salary, contribution, goal, horizon and age
  Recommendation  APV with both tax regimes, or a liquid account
  Funds           liquid account only: split your contribution across funds A to E
  Result          the APV regime you chose, or your projected balance
                  against each single fund

KEYBOARD SHORTCUTS:
  tab/↑/↓  Move between profile fields
  ←/→      Change goal, switch regime, adjust a fund share
  space    Add or remove a fund
  enter    Continue
  ESC      Go back
  ?        Show this help
  q/Ctrl+C Quit
`

	return BorderStyle.Render(helpText)
}
