// Package tuistyles holds the lipgloss palette and styles shared by the wizard,
// its scenes and its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/savings-advisor/internal/report"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#1976d2")
	ColorSecondary = lipgloss.Color("#5c6bc0")
	ColorAccent    = lipgloss.Color("#fbc02d")
	ColorSuccess   = lipgloss.Color("#388e3c")
	ColorDanger    = lipgloss.Color("#d32f2f")
	ColorInfo      = lipgloss.Color("#0288d1")

	ColorForeground = lipgloss.AdaptiveColor{Light: "#212121", Dark: "#eeeeee"}
	ColorMuted      = lipgloss.Color("#9e9e9e")
	ColorBorder     = lipgloss.Color("#616161")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorBorder)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Bold(true)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Italic(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)
)

// MetricTrendStyle colors a trend green when it favours the user and red otherwise
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the trend direction
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders an amount the way the reports do, e.g. "CLP 1.20M"
func FormatCurrency(d decimal.Decimal) string {
	return report.FormatMoney(d)
}

// FundColor returns the display color stored on a fund, falling back to the muted color
func FundColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return ColorMuted
	}
	return lipgloss.Color(hex)
}
