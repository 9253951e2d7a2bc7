// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"fmt"
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Colors read by components that style bubbles widgets directly.
var (
	ColorAccent color.Color
	ColorDim    color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	WarningStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	MutedStyle         lipgloss.Style

	// Picker dialog.
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	NavStyle         lipgloss.Style
	WeekdayStyle     lipgloss.Style
	CellStyle        lipgloss.Style
	CellOtherStyle   lipgloss.Style
	CellBlockedStyle lipgloss.Style
	CellTodayStyle   lipgloss.Style
	CellChosenStyle  lipgloss.Style
	CellCursorStyle  lipgloss.Style
	ColumnTitleStyle lipgloss.Style

	ButtonStyle         lipgloss.Style
	ButtonSelectedStyle lipgloss.Style

	// Form field styles.
	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p
	ColorAccent = p.Accent
	ColorDim = p.Dim

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Dim)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Ok)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warn)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Err)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Dim)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Dim).
		MarginTop(1)
	NavStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	WeekdayStyle = lipgloss.NewStyle().
		Foreground(p.Heading)

	CellStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Align(lipgloss.Right)
	CellOtherStyle = CellStyle.
		Foreground(p.OtherMonth)
	CellBlockedStyle = CellStyle.
		Foreground(p.Forbidden).
		Strikethrough(true)
	CellTodayStyle = CellStyle.
		Foreground(p.Today).
		Bold(true)
	CellChosenStyle = CellStyle.
		Background(p.Chosen).
		Foreground(p.Base).
		Bold(true)
	CellCursorStyle = CellStyle.
		Background(p.Accent).
		Foreground(p.Base).
		Bold(true)
	ColumnTitleStyle = lipgloss.NewStyle().
		Foreground(p.Heading).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Panel).
		Foreground(p.Dim)
	ButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Accent).
		Foreground(p.Base).
		Bold(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(p.Dim)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Dim).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Accent).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(p.Err)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(p.Dim)
}

// UseTheme activates a built-in theme by name.
func UseTheme(name string) error {
	p, ok := GetPalette(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	SetTheme(p)
	return nil
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
