package ui

import (
	"strings"

	"shree/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// helpContext is what the footer help line depends on.
type helpContext struct {
	focus    model.Focus
	drawer   bool
	lightbox bool
}

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(ctx helpContext, width int) string {
	switch {
	case ctx.lightbox:
		return renderLightboxHelp(width)
	case ctx.drawer:
		return renderDrawerHelp(width)
	}

	switch ctx.focus {
	case model.FocusGallery:
		return renderGalleryHelp(width)
	case model.FocusOrder:
		return renderOrderHelp(width)
	case model.FocusForm:
		return renderFormHelp(width)
	default:
		return renderPageHelp(width)
	}
}

func renderPageHelp(width int) string {
	keys := []string{
		helpKey("j/k", "scroll"),
		helpKey("1-6", "jump"),
		helpKey("m", "menu"),
		helpKey("tab", "next region"),
		helpKey("r", "reserve"),
		helpKey("o", "order"),
		helpKey("?", "help"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderGalleryHelp(width int) string {
	keys := []string{
		helpKey("h/l", "choose photo"),
		helpKey("enter", "view"),
		helpKey("tab", "next region"),
		helpKey("esc", "back to page"),
	}
	return renderHelpLine(keys, width)
}

func renderOrderHelp(width int) string {
	keys := []string{
		helpKey("h/l", "choose platform"),
		helpKey("enter/c", "copy link"),
		helpKey("tab", "next region"),
		helpKey("esc", "back to page"),
	}
	return renderHelpLine(keys, width)
}

func renderFormHelp(width int) string {
	keys := []string{
		helpKey("tab", "next field"),
		helpKey("shift+tab", "prev field"),
		helpKey("←/→", "change option"),
		helpKey("ctrl+s", "reserve"),
		helpKey("esc", "leave form"),
	}
	return renderHelpLine(keys, width)
}

func renderDrawerHelp(width int) string {
	keys := []string{
		helpKey("j/k", "move"),
		helpKey("enter", "go"),
		helpKey("1-6", "jump"),
		helpKey("m/esc", "close menu"),
	}
	return renderHelpLine(keys, width)
}

func renderLightboxHelp(width int) string {
	keys := []string{
		helpKey("h/←", "previous"),
		helpKey("l/→", "next"),
		helpKey("esc/x", "close"),
		helpKey("click outside", "close"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Page"),
		helpSection([]helpItem{
			{"j / ↓", "Scroll down"},
			{"k / ↑", "Scroll up"},
			{"ctrl+d / ctrl+u", "Half page down / up"},
			{"pgdn / pgup", "Page down / up"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"1-6", "Home, About, Menu, Gallery, Reviews, Book"},
			{"m", "Open or close the menu"},
			{"tab / shift+tab", "Cycle gallery, order links and booking form"},
			{"r", "Reserve a table"},
			{"o", "Order online"},
			{"q", "Quit"},
			{"?", "Toggle help"},
		}),
		titleSection("Gallery"),
		helpSection([]helpItem{
			{"h / l", "Choose photo"},
			{"enter", "Open the viewer"},
			{"← / → in viewer", "Previous / next, wrapping around"},
			{"esc / x", "Close the viewer"},
			{"click outside photo", "Close the viewer"},
		}),
		titleSection("Booking Form"),
		helpSection([]helpItem{
			{"tab", "Next field"},
			{"shift+tab", "Previous field"},
			{"← / →", "Change time or guests"},
			{"ctrl+s", "Request the table"},
			{"esc", "Leave the form"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
