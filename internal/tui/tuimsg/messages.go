// Package tuimsg holds the messages scenes send to the root wizard model.
// It exists so scenes do not import the tui package.
package tuimsg

import (
	"github.com/rgehrsitz/savings-advisor/internal/domain"
)

// ProfileFieldChangedMsg carries a parsed value for one profile field
type ProfileFieldChangedMsg struct {
	Field domain.ProfileField
	Value any
}

// ProfileSubmittedMsg signals the user finished the profile form
type ProfileSubmittedMsg struct{}

// RegimeSelectedMsg asks to view a regime other than the recommended one
type RegimeSelectedMsg struct {
	Regime domain.RegimeType
}

// RegimeClearedMsg drops the regime display override
type RegimeClearedMsg struct{}

// NextStepMsg asks the wizard to move past the current scene
type NextStepMsg struct{}

// FundToggledMsg toggles a fund's membership in the allocation
type FundToggledMsg struct {
	Fund domain.FundType
}

// FundPercentChangedMsg sets a fund's share directly
type FundPercentChangedMsg struct {
	Fund    domain.FundType
	Percent int
}

// ProjectionRequestedMsg asks the wizard to finalize the allocation
type ProjectionRequestedMsg struct{}
