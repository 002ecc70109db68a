package ui

import "github.com/charmbracelet/lipgloss"

// Some predefined colors

var (
	ColorRed        = lipgloss.Color("1")
	ColorBlack      = lipgloss.Color("0")
	ColorWhite      = lipgloss.Color("15")
	ColorLink       = lipgloss.Color("33")
	ColorLightGray  = lipgloss.Color("243")
	ColorGray       = lipgloss.Color("238")
	ColorPaleBlue   = lipgloss.Color("153")
	ColorOrange     = lipgloss.Color("214")
	ColorSelection  = lipgloss.Color("237")
	ColorSelectPale = lipgloss.Color("254")
)

// RowStyle is everything a RowView needs to draw itself.
type RowStyle struct {
	NameTextStyle       lipgloss.Style
	CursorArrowStyle    lipgloss.Style
	SelectedRowStyle    lipgloss.Style
	FollowButtonStyle   lipgloss.Style // call to action
	UnfollowButtonStyle lipgloss.Style // outlined

	ButtonWidth int
}

type Theme struct {
	Row RowStyle

	AlertDialogContainerStyle lipgloss.Style
	BorderIdleContainerStyle  lipgloss.Style

	MutedTextStyle   lipgloss.Style
	ErrorTextStyle   lipgloss.Style
	PrimaryTextStyle lipgloss.Style

	BreadcrumbBarStyle lipgloss.Style
	HelpBarStyle       lipgloss.Style
	LoggerBarStyle     lipgloss.Style
}

const defaultButtonWidth = 12

var DarkTheme = Theme{
	Row: RowStyle{
		NameTextStyle: lipgloss.NewStyle().
			Foreground(ColorWhite),
		CursorArrowStyle: lipgloss.NewStyle().
			Foreground(ColorLink),
		SelectedRowStyle: lipgloss.NewStyle().
			Background(ColorSelection),
		FollowButtonStyle: lipgloss.NewStyle().
			Background(ColorLink).
			Foreground(ColorWhite).
			Bold(true),
		UnfollowButtonStyle: lipgloss.NewStyle().
			Foreground(ColorLink),
		ButtonWidth: defaultButtonWidth,
	},

	AlertDialogContainerStyle: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorRed).
		Padding(2, 4),
	BorderIdleContainerStyle: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray),

	MutedTextStyle: lipgloss.NewStyle().
		Foreground(ColorLightGray),
	ErrorTextStyle: lipgloss.NewStyle().
		Foreground(ColorRed).
		Bold(true),
	PrimaryTextStyle: lipgloss.NewStyle().
		Foreground(ColorLink),

	BreadcrumbBarStyle: lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorLink).
		Foreground(ColorWhite),
	HelpBarStyle: lipgloss.NewStyle().
		Padding(0, 1),
	LoggerBarStyle: lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorOrange).
		Foreground(ColorBlack),
}

var LightTheme = Theme{
	Row: RowStyle{
		NameTextStyle: lipgloss.NewStyle().
			Foreground(ColorBlack),
		CursorArrowStyle: lipgloss.NewStyle().
			Foreground(ColorLink),
		SelectedRowStyle: lipgloss.NewStyle().
			Background(ColorSelectPale),
		FollowButtonStyle: lipgloss.NewStyle().
			Background(ColorLink).
			Foreground(ColorWhite).
			Bold(true),
		UnfollowButtonStyle: lipgloss.NewStyle().
			Foreground(ColorLink),
		ButtonWidth: defaultButtonWidth,
	},

	AlertDialogContainerStyle: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorRed).
		Padding(2, 4),
	BorderIdleContainerStyle: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorLightGray),

	MutedTextStyle: lipgloss.NewStyle().
		Foreground(ColorGray),
	ErrorTextStyle: lipgloss.NewStyle().
		Foreground(ColorRed).
		Bold(true),
	PrimaryTextStyle: lipgloss.NewStyle().
		Foreground(ColorLink),

	BreadcrumbBarStyle: lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorLink).
		Foreground(ColorWhite),
	HelpBarStyle: lipgloss.NewStyle().
		Padding(0, 1),
	LoggerBarStyle: lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPaleBlue).
		Foreground(ColorBlack),
}

// ThemeByName returns the theme registered under name ("dark" or "light").
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "dark":
		return DarkTheme, true
	case "light":
		return LightTheme, true
	default:
		return Theme{}, false
	}
}
