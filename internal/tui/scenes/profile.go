package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuimsg"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuistyles"
)

var fieldLabels = map[domain.ProfileField]string{
	domain.FieldSalary:              "Monthly salary",
	domain.FieldMonthlyContribution: "Monthly contribution",
	domain.FieldGoal:                "Savings goal",
	domain.FieldHorizon:             "Horizon (years)",
	domain.FieldAge:                 "Age",
}

// ProfileModel is the profile entry form
type ProfileModel struct {
	fields    []domain.ProfileField
	inputs    map[domain.ProfileField]textinput.Model
	goalIndex int
	focus     int
	errs      map[domain.ProfileField]string
	width     int
	height    int
}

// NewProfileModel creates the form with one text input per numeric field
func NewProfileModel() *ProfileModel {
	m := &ProfileModel{
		fields: domain.ProfileFields,
		inputs: make(map[domain.ProfileField]textinput.Model),
		errs:   make(map[domain.ProfileField]string),
	}
	for _, f := range m.fields {
		if f == domain.FieldGoal {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 15
		ti.Width = 20
		m.inputs[f] = ti
	}
	m.SetProfile(domain.DefaultProfile())
	m.focusCurrent()
	return m
}

// SetProfile fills the form from a profile
func (m *ProfileModel) SetProfile(p domain.UserProfile) {
	m.setInput(domain.FieldSalary, p.Salary.String())
	m.setInput(domain.FieldMonthlyContribution, p.MonthlyContribution.String())
	m.setInput(domain.FieldHorizon, strconv.Itoa(p.Horizon))
	m.setInput(domain.FieldAge, strconv.Itoa(p.Age))
	m.goalIndex = 0
	for i, g := range domain.Goals {
		if g == p.Goal {
			m.goalIndex = i
		}
	}
	m.errs = make(map[domain.ProfileField]string)
}

// SetSize updates the scene dimensions
func (m *ProfileModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// FocusedField returns the field with keyboard focus
func (m *ProfileModel) FocusedField() domain.ProfileField {
	return m.fields[m.focus]
}

// Goal returns the goal currently shown in the selector
func (m *ProfileModel) Goal() domain.Goal {
	return domain.Goals[m.goalIndex]
}

// FieldError returns the parse error shown next to a field, if any
func (m *ProfileModel) FieldError(field domain.ProfileField) string {
	return m.errs[field]
}

func (m *ProfileModel) setInput(field domain.ProfileField, value string) {
	ti := m.inputs[field]
	ti.SetValue(value)
	m.inputs[field] = ti
}

// Update handles messages for the profile scene
func (m *ProfileModel) Update(msg tea.Msg) (*ProfileModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+s"))):
		return m, tea.Batch(m.commit(), submit)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		cmd := m.commit()
		if m.focus == len(m.fields)-1 {
			return m, tea.Batch(cmd, submit)
		}
		m.move(1)
		return m, cmd

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "down"))):
		cmd := m.commit()
		m.move(1)
		return m, cmd

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("shift+tab", "up"))):
		cmd := m.commit()
		m.move(-1)
		return m, cmd
	}

	if m.FocusedField() == domain.FieldGoal {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h"))):
			m.goalIndex = (m.goalIndex + len(domain.Goals) - 1) % len(domain.Goals)
			return m, m.commit()
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", " "))):
			m.goalIndex = (m.goalIndex + 1) % len(domain.Goals)
			return m, m.commit()
		}
		return m, nil
	}

	field := m.FocusedField()
	ti, cmd := m.inputs[field].Update(keyMsg)
	m.inputs[field] = ti
	return m, cmd
}

func submit() tea.Msg {
	return tuimsg.ProfileSubmittedMsg{}
}

// move shifts focus, wrapping around the form
func (m *ProfileModel) move(delta int) {
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.focusCurrent()
}

func (m *ProfileModel) focusCurrent() {
	for i, f := range m.fields {
		ti, ok := m.inputs[f]
		if !ok {
			continue
		}
		if i == m.focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[f] = ti
	}
}

// commit parses the focused field and, when it parses, emits a change message
func (m *ProfileModel) commit() tea.Cmd {
	field := m.FocusedField()
	value, err := m.parse(field)
	if err != nil {
		m.errs[field] = err.Error()
		return nil
	}
	delete(m.errs, field)
	return func() tea.Msg {
		return tuimsg.ProfileFieldChangedMsg{Field: field, Value: value}
	}
}

func (m *ProfileModel) parse(field domain.ProfileField) (any, error) {
	if field == domain.FieldGoal {
		return m.Goal(), nil
	}

	raw := strings.TrimSpace(m.inputs[field].Value())
	switch field {
	case domain.FieldSalary, domain.FieldMonthlyContribution:
		if raw == "" {
			return decimal.Zero, nil
		}
		amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return amount, nil
	default:
		if raw == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("not a whole number")
		}
		return n, nil
	}
}

// View renders the profile form
func (m *ProfileModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render("Your profile"))
	content.WriteString("\n\n")

	for i, f := range m.fields {
		focused := i == m.focus
		labelStyle := tuistyles.UnselectedItemStyle
		cursor := "  "
		if focused {
			labelStyle = tuistyles.SelectedItemStyle
			cursor = "› "
		}

		var value string
		if f == domain.FieldGoal {
			value = m.renderGoalSelector(focused)
		} else {
			value = m.inputs[f].View()
		}

		line := fmt.Sprintf("%s%s %s", cursor, labelStyle.Render(fmt.Sprintf("%-22s", fieldLabels[f])), value)
		if e, ok := m.errs[f]; ok {
			line += "  " + tuistyles.ErrorStyle.Render(e)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.InfoStyle.Render("Enter on the last field or ctrl+s to see your recommendation"))

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}

func (m *ProfileModel) renderGoalSelector(focused bool) string {
	parts := make([]string, 0, len(domain.Goals))
	for i, g := range domain.Goals {
		if i == m.goalIndex {
			style := tuistyles.SelectedItemStyle
			if !focused {
				style = tuistyles.MetricValueStyle
			}
			parts = append(parts, style.Render("["+g.String()+"]"))
		} else {
			parts = append(parts, tuistyles.SubtitleStyle.Render(g.String()))
		}
	}
	return strings.Join(parts, " ")
}
