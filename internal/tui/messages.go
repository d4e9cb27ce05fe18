package tui

import (
	"github.com/rgehrsitz/savings-advisor/internal/config"
	"github.com/rgehrsitz/savings-advisor/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneProfile Scene = iota
	SceneRecommendation
	SceneFunds
	SceneResults
	SceneHelp
)

// wizardSteps are the scenes shown in the breadcrumb, in order
var wizardSteps = []Scene{SceneProfile, SceneRecommendation, SceneFunds, SceneResults}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ProfileLoadedMsg signals a profile file has been read
type ProfileLoadedMsg struct {
	Input *config.ProfileInput
}

// ProjectionCompleteMsg signals the allocation was finalized, or why it could not be
type ProjectionCompleteMsg struct {
	Result domain.ProjectionResult
	Err    error
}
