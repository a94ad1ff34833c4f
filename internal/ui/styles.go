package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorMaroon  = lipgloss.Color("#7B1E1E")
	ColorHaldi   = lipgloss.Color("#F2B632")
	ColorLeaf    = lipgloss.Color("#4F7942")
	ColorCream   = lipgloss.Color("#FBF6EE")
	ColorMuted   = lipgloss.Color("#A38B7A")
	ColorText    = lipgloss.Color("#F5EBDD")
	ColorRed     = lipgloss.Color("#E06C5A")
	ColorGreen   = lipgloss.Color("#9CCB8A")
	ColorOverlay = lipgloss.Color("#140C08")
)

// Navbar styles. The transparent variant is used at the top of the page and
// the solid one once the page has scrolled past the threshold.
var (
	NavTransparentStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 1).
				BorderStyle(lipgloss.HiddenBorder()).
				BorderBottom(true)

	NavSolidStyle = lipgloss.NewStyle().
			Foreground(ColorMaroon).
			Background(ColorCream).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	NavBrandTransparent = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	NavBrandSolid       = lipgloss.NewStyle().Foreground(ColorMaroon).Background(ColorCream).Bold(true)
	NavSubTransparent   = lipgloss.NewStyle().Foreground(ColorHaldi)
	NavSubSolid         = lipgloss.NewStyle().Foreground(ColorLeaf).Background(ColorCream)
	NavLinkTransparent  = lipgloss.NewStyle().Foreground(ColorText)
	NavLinkSolid        = lipgloss.NewStyle().Foreground(ColorMaroon).Background(ColorCream)

	NavCTATransparent = lipgloss.NewStyle().
				Foreground(ColorMaroon).
				Background(ColorText).
				Bold(true).
				Padding(0, 1)

	NavCTASolid = lipgloss.NewStyle().
			Foreground(ColorCream).
			Background(ColorMaroon).
			Bold(true).
			Padding(0, 1)

	DrawerStyle = lipgloss.NewStyle().
			Foreground(ColorMaroon).
			Background(ColorCream).
			Padding(1, 3)

	DrawerSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorCream).
				Background(ColorMaroon).
				Bold(true)
)

// Page styles
var (
	EyebrowStyle = lipgloss.NewStyle().
			Foreground(ColorHaldi).
			Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	HeroTitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	HeroAccentStyle = lipgloss.NewStyle().
			Foreground(ColorHaldi).
			Bold(true)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	QuoteStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(ColorHaldi).
			PaddingLeft(1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorMaroon).
			Background(ColorText).
			Bold(true).
			Padding(0, 2)

	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(ColorMaroon).
				Background(ColorHaldi).
				Bold(true).
				Padding(0, 2)

	CardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted)

	CardActiveStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorHaldi)

	StarStyle = lipgloss.NewStyle().
			Foreground(ColorHaldi)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorCream).
			Background(ColorMaroon).
			Bold(true).
			Padding(0, 1)
)

// Shared chrome, kept from the list screens.
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorHaldi).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHaldi)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorHaldi).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ActiveBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorHaldi).
				Padding(0, 1)

	ErrorBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorRed).
				Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	SuccessPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.DoubleBorder()).
				BorderForeground(ColorHaldi).
				Padding(1, 4)
)

// Lightbox styles
var (
	OverlayStyle = lipgloss.NewStyle().
			Background(ColorOverlay)

	LightboxControlStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	LightboxTitleStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	LightboxPositionStyle = lipgloss.NewStyle().
				Foreground(ColorHaldi)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)
