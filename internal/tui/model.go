package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/savings-advisor/internal/config"
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/session"
	"github.com/rgehrsitz/savings-advisor/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Optional profile file loaded at start
	profilePath string

	// All advisor state lives in the session; scenes only render copies of it
	session *session.Session

	profileModel        *scenes.ProfileModel
	recommendationModel *scenes.RecommendationModel
	fundsModel          *scenes.FundsModel
	resultsModel        *scenes.ResultsModel

	// Error state
	err error
}

// NewModel creates a new application model. A nil session starts a fresh one.
func NewModel(sess *session.Session, profilePath string) Model {
	if sess == nil {
		sess = session.New(nil)
	}
	m := Model{
		currentScene:        SceneProfile,
		profilePath:         profilePath,
		session:             sess,
		profileModel:        scenes.NewProfileModel(),
		recommendationModel: scenes.NewRecommendationModel(),
		fundsModel:          scenes.NewFundsModel(),
		resultsModel:        scenes.NewResultsModel(),
		width:               80,
		height:              24,
	}
	m.profileModel.SetProfile(sess.Profile())
	m.refresh()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.profilePath == "" {
		return nil
	}
	return loadProfileCmd(m.profilePath)
}

// Session exposes the advisor state behind the wizard
func (m Model) Session() *session.Session {
	return m.session
}

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// Err returns the error being displayed, if any
func (m Model) Err() error {
	return m.err
}

// loadProfileCmd returns a command that loads a profile file
func loadProfileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{Input: input}
	}
}

// finalizeProjectionCmd returns a command that validates the allocation and projects it
func finalizeProjectionCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		result, err := sess.FinalizeProjection()
		return ProjectionCompleteMsg{Result: result, Err: err}
	}
}

// refresh pushes the session's current state into every scene
func (m *Model) refresh() {
	var override *domain.RegimeType
	if r, ok := m.session.RegimeOverride(); ok {
		override = &r
	}
	m.recommendationModel.SetRecommendation(m.session.Profile(), m.session.Recommendation(), override)
	m.fundsModel.SetFunds(m.session.Funds())

	if result, ok := m.session.ProjectionResult(); ok {
		p := m.session.Profile()
		m.resultsModel.SetResult(result, p.MonthlyContribution, p.Horizon)
	} else {
		m.resultsModel.Clear()
	}

	selected, ok := m.session.SelectedRegime()
	alternative, _ := m.session.AlternativeRegime()
	if ok {
		m.resultsModel.SetRegimeChoice(selected, alternative)
	} else {
		m.resultsModel.ClearRegimeChoice()
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneProfile:
		return "Profile"
	case SceneRecommendation:
		return "Recommendation"
	case SceneFunds:
		return "Funds"
	case SceneResults:
		return "Result"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
