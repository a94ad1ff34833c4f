package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// SetupSettings are the answers collected on first run.
type SetupSettings struct {
	Images bool
	Mouse  bool
}

// saveSetupSettings writes the answers into the config file, keeping any
// other keys already present.
func saveSetupSettings(path string, settings SetupSettings) error {
	doc := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	doc["setup_done"] = true
	doc["images"] = settings.Images
	doc["mouse"] = settings.Mouse

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

type onboardingStep int

const (
	stepImages onboardingStep = iota
	stepMouse
	stepDone
)

type onboardingModel struct {
	step     onboardingStep
	choice   bool
	settings SetupSettings
	status   string
	width    int
	height   int
}

var (
	obColorMuted  = lipgloss.Color("#A38B7A")
	obColorText   = lipgloss.Color("#F5EBDD")
	obColorAccent = lipgloss.Color("#F2B632")
	obColorDanger = lipgloss.Color("#E06C5A")

	obTitleStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obHeaderStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obTabsStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obTabInactive = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 2)

	obTabActive = lipgloss.NewStyle().
			Foreground(obColorText).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	obPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorMuted).
			Padding(1, 2)

	obLabelStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obMutedStyle = lipgloss.NewStyle().
			Foreground(obColorMuted)

	obOptionStyle = lipgloss.NewStyle().
			Foreground(obColorText)

	obOptionSelected = lipgloss.NewStyle().
				Foreground(obColorAccent).
				Bold(true)

	obWarnStyle = lipgloss.NewStyle().
			Foreground(obColorDanger)

	obFooterStyle = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(obColorMuted)
)

func newOnboardingModel(current SetupSettings) onboardingModel {
	return onboardingModel{
		step:     stepImages,
		choice:   current.Images,
		settings: current,
	}
}

func (m onboardingModel) Init() tea.Cmd { return nil }

func (m onboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.step == stepDone {
			return m, tea.Quit
		}
		switch msg.String() {
		case "y", "Y":
			m.choice = true
			return m.commit()
		case "n", "N":
			m.choice = false
			return m.commit()
		case "up", "k", "left", "h":
			m.choice = true
			return m, nil
		case "down", "j", "right", "l":
			m.choice = false
			return m, nil
		case "enter":
			// Enter commits the currently selected option
			return m.commit()
		case "ctrl+c", "q":
			m.status = "Setup skipped. Defaults kept."
			m.step = stepDone
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m onboardingModel) commit() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepImages:
		m.settings.Images = m.choice
		m.step = stepMouse
		m.choice = m.settings.Mouse
		return m, nil
	case stepMouse:
		m.settings.Mouse = m.choice
		m.step = stepDone
		m.status = "Setup saved."
		if !m.settings.Images {
			m.status = "Setup saved. Gallery photos disabled."
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m onboardingModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 28
	}

	header := m.renderHeader(width)
	tabs := m.renderTabs(width)
	footer := m.renderFooter(width)

	contentHeight := height - 6
	if contentHeight < 8 {
		contentHeight = 8
	}
	content := m.renderContent(width, contentHeight)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, footer)

	return lipgloss.NewStyle().
		Foreground(obColorText).
		Width(width).
		Height(height).
		Render(ui)
}

func (m onboardingModel) renderHeader(width int) string {
	left := "  " + obTitleStyle.Render("SHREE KRISHNA") + " " + obMutedStyle.Render("› Setup")
	right := obMutedStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return obHeaderStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m onboardingModel) renderTabs(width int) string {
	imagesTab := obTabInactive.Render("Photos")
	mouseTab := obTabInactive.Render("Mouse")
	if m.step == stepImages {
		imagesTab = obTabActive.Render("Photos")
	}
	if m.step == stepMouse {
		mouseTab = obTabActive.Render("Mouse")
	}
	return obTabsStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Left, "  ", imagesTab, mouseTab))
}

func (m onboardingModel) renderFooter(width int) string {
	if m.step == stepDone {
		return obFooterStyle.Width(width).Render("Setup complete")
	}
	return obFooterStyle.Width(width).Render("↑↓/jk to choose  y/n enter to confirm  q skip")
}

func (m onboardingModel) renderContent(width, height int) string {
	cardWidth := min(92, width-6)
	if cardWidth < 40 {
		cardWidth = width - 2
	}

	var body string
	switch m.step {
	case stepImages:
		body = m.renderQuestion(
			"Show gallery photos in the viewer?",
			"Download and draw photos",
			"Titles only",
			"Photos are fetched from the web when you open the gallery viewer.",
		)
	case stepMouse:
		body = m.renderQuestion(
			"Enable mouse clicks?",
			"Click outside a photo to close it",
			"Keyboard only",
			"Mouse capture stops your terminal's own text selection.",
		)
	default:
		msg := obMutedStyle.Render(m.status)
		if strings.Contains(strings.ToLower(m.status), "disabled") {
			msg = obWarnStyle.Render(m.status)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, obLabelStyle.Render("Welcome"), "", msg)
	}

	card := obPanelStyle.Width(cardWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}

func (m onboardingModel) renderQuestion(question, on, off, note string) string {
	var onDisplay, offDisplay string
	if m.choice {
		onDisplay = "  " + obOptionSelected.Render("→ "+on)
		offDisplay = "    " + obOptionStyle.Render(off)
	} else {
		onDisplay = "    " + obOptionStyle.Render(on)
		offDisplay = "  " + obOptionSelected.Render("→ "+off)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		obLabelStyle.Render(question),
		"",
		onDisplay,
		offDisplay,
		"",
		obMutedStyle.Render(note),
		obMutedStyle.Render("You can change this later in ~/.shree/config.yaml"),
	)
}

func runOnboarding(config *Config) (SetupSettings, error) {
	current := SetupSettings{Images: config.Images, Mouse: config.Mouse}
	prog := tea.NewProgram(newOnboardingModel(current), tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return SetupSettings{}, fmt.Errorf("onboarding tui failed: %w", err)
	}
	m, ok := finalModel.(onboardingModel)
	if !ok {
		return SetupSettings{}, fmt.Errorf("unexpected onboarding model type")
	}
	if err := saveSetupSettings(config.ConfigPath, m.settings); err != nil {
		return SetupSettings{}, err
	}
	return m.settings, nil
}
