package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/tui/tuistyles"
)

// FundSlider displays one fund tier and the user's share in it
type FundSlider struct {
	Fund      domain.FundOption
	Width     int // width of the slider track
	IsFocused bool
}

// NewFundSlider creates a slider for a fund
func NewFundSlider(fund domain.FundOption) *FundSlider {
	return &FundSlider{
		Fund:  fund,
		Width: 30,
	}
}

// WithWidth sets the slider width
func (s *FundSlider) WithWidth(width int) *FundSlider {
	s.Width = width
	return s
}

// SetFocused sets the focus state
func (s *FundSlider) SetFocused(focused bool) *FundSlider {
	s.IsFocused = focused
	return s
}

// Render returns a single line: marker, tier, label, track and share
func (s *FundSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	cursor := "  "
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		cursor = "› "
	}

	check := "[ ]"
	if s.Fund.IsActive() {
		check = "[x]"
	}

	swatch := lipgloss.NewStyle().
		Foreground(tuistyles.FundColor(s.Fund.Color)).
		Render("■")

	rate := s.Fund.AnnualRate.Mul(decimal.NewFromInt(100)).StringFixed(1)
	label := labelStyle.Render(fmt.Sprintf("Fund %s %-18s", s.Fund.Type, s.Fund.Label))
	value := valueStyle.Render(fmt.Sprintf("%3d%%", s.Fund.Percent))

	return fmt.Sprintf("%s%s %s %s %s %s  %s",
		cursor, check, swatch, label,
		tuistyles.SubtitleStyle.Render(rate+"%/yr"),
		s.renderTrack(), value)
}

// renderTrack draws the share as a filled bar in the fund's color
func (s *FundSlider) renderTrack() string {
	pct := s.Fund.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > domainFull {
		pct = domainFull
	}
	filled := s.Width * pct / domainFull
	empty := s.Width - filled

	fill := lipgloss.NewStyle().Foreground(tuistyles.FundColor(s.Fund.Color))

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 0 {
		bar.WriteString(fill.Render(strings.Repeat("━", filled)))
	}
	if empty > 0 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", empty)))
	}
	bar.WriteString("]")
	return bar.String()
}

// FundSliderList renders sliders for every fund, focusing the one at focused
func FundSliderList(funds []domain.FundOption, focused, width int) string {
	lines := make([]string, 0, len(funds))
	for i, f := range funds {
		lines = append(lines, NewFundSlider(f).WithWidth(width).SetFocused(i == focused).Render())
	}
	return strings.Join(lines, "\n")
}
