package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/savings-advisor/internal/allocation"
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/session"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.profileModel.SetSize(msg.Width, msg.Height)
		m.recommendationModel.SetSize(msg.Width, msg.Height)
		m.fundsModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ProfileLoadedMsg:
		return m.applyProfileInput(msg)

	case ProjectionCompleteMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, session.ErrInvalidDistribution) {
				m.fundsModel.SetMessage(fmt.Sprintf("The shares must total %d%% (currently %d%%)",
					allocation.FullAllocation, m.session.TotalPercent()))
				return m, nil
			}
			m.err = msg.Err
			return m, nil
		}
		m.refresh()
		return m, navigate(SceneResults)

	// Scene messages
	case tuimsg.ProfileFieldChangedMsg:
		if err := m.session.UpdateProfile(msg.Field, msg.Value); err != nil {
			m.err = err
			return m, nil
		}
		m.refresh()
		return m, nil

	case tuimsg.ProfileSubmittedMsg:
		return m, navigate(SceneRecommendation)

	case tuimsg.RegimeSelectedMsg:
		m.session.SelectRegime(msg.Regime)
		m.refresh()
		return m, nil

	case tuimsg.RegimeClearedMsg:
		m.session.ClearRegimeOverride()
		m.refresh()
		return m, nil

	case tuimsg.NextStepMsg:
		return m.nextStep()

	case tuimsg.FundToggledMsg:
		m.session.ToggleFund(msg.Fund)
		m.refresh()
		return m, nil

	case tuimsg.FundPercentChangedMsg:
		m.session.SetFundPercent(msg.Fund, msg.Percent)
		m.refresh()
		return m, nil

	case tuimsg.ProjectionRequestedMsg:
		return m, finalizeProjectionCmd(m.session)
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// applyProfileInput loads a profile file into the session
func (m Model) applyProfileInput(msg ProfileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Input == nil {
		return m, nil
	}

	m.session.SetProfile(msg.Input.Profile)
	m.profileModel.SetProfile(msg.Input.Profile)

	percentages, err := msg.Input.FundPercentages()
	if err != nil {
		m.err = err
		return m, nil
	}
	if len(percentages) > 0 {
		m.session.SetAllocation(percentages)
	}

	override, err := msg.Input.Override()
	if err != nil {
		m.err = err
		return m, nil
	}
	if override != nil {
		m.session.SelectRegime(*override)
	}

	m.refresh()
	return m, navigate(SceneRecommendation)
}

// nextStep advances from the recommendation: CUENTA2 goes on to the fund picker,
// APV skips it and shows the chosen regime
func (m Model) nextStep() (tea.Model, tea.Cmd) {
	if m.currentScene != SceneRecommendation {
		return m, nil
	}
	rec := m.session.Recommendation()
	if rec == nil {
		return m, nil
	}
	if rec.BestProduct == domain.ProductCuenta2 {
		return m, navigate(SceneFunds)
	}
	return m, navigate(SceneResults)
}

// stepBack returns the scene esc leads to. APV results return to the regime choice.
func (m Model) stepBack(s Scene) (Scene, bool) {
	if s == SceneResults {
		if rec := m.session.Recommendation(); rec != nil && rec.BestProduct == domain.ProductAPV {
			return SceneRecommendation, true
		}
	}
	return previousStep(s)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// any key dismisses an error
	if m.err != nil {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.err = nil
		return m, nil
	}

	// the profile form takes every printable key
	editing := m.currentScene == SceneProfile

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if !editing {
			return m, tea.Quit
		}

	case "?":
		if !editing && m.currentScene != SceneHelp {
			return m, navigate(SceneHelp)
		}

	case "esc":
		if m.currentScene == SceneHelp {
			return m, navigate(m.previousScene)
		}
		if prev, ok := m.stepBack(m.currentScene); ok {
			return m, navigate(prev)
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// previousStep returns the wizard step before s
func previousStep(s Scene) (Scene, bool) {
	for i, step := range wizardSteps {
		if step == s && i > 0 {
			return wizardSteps[i-1], true
		}
	}
	return s, false
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneProfile:
		m.profileModel, cmd = m.profileModel.Update(msg)
	case SceneRecommendation:
		m.recommendationModel, cmd = m.recommendationModel.Update(msg)
	case SceneFunds:
		m.fundsModel, cmd = m.fundsModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
