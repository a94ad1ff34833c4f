package ui

import (
	"fmt"
	"strings"

	"shree/internal/gallery"
	"shree/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

const (
	navHeight    = 2
	desktopWidth = 110
)

// navHotspot is a clickable navbar region in screen cells. An empty anchor
// marks the drawer toggle.
type navHotspot struct {
	rect   gallery.Rect
	anchor nav.Anchor
}

// drawerEntries are the drawer rows: the links followed by the reserve button.
func drawerEntries() []nav.Link {
	return append(nav.Links(), nav.Link{Name: "Reserve Table", Anchor: nav.AnchorBook})
}

// renderNavbar draws the fixed bar. It is transparent at the top of the page
// and solid once the page has scrolled past the threshold.
func (m Model) renderNavbar() (string, []navHotspot) {
	solid := m.nav.Scroll().IsPastThreshold
	barStyle, brandStyle, subStyle, linkStyle, ctaStyle := NavTransparentStyle, NavBrandTransparent, NavSubTransparent, NavLinkTransparent, NavCTATransparent
	if solid {
		barStyle, brandStyle, subStyle, linkStyle, ctaStyle = NavSolidStyle, NavBrandSolid, NavSubSolid, NavLinkSolid, NavCTASolid
	}

	b := m.content.Brand
	left := brandStyle.Render(strings.ToUpper(b.Name)) + subStyle.Render(" · "+b.Subtitle)
	inner := m.width - 2

	var hotspots []navHotspot
	var right string
	if m.width >= desktopWidth {
		var segs []string
		offsets := []int{}
		w := 0
		for i, l := range nav.Links() {
			seg := linkStyle.Render(fmt.Sprintf("%d %s", i+1, l.Name))
			if i > 0 {
				w += 2
			}
			offsets = append(offsets, w)
			w += lipgloss.Width(seg)
			segs = append(segs, seg)
		}
		cta := ctaStyle.Render("Reserve Table")
		offsets = append(offsets, w+2)
		right = strings.Join(segs, linkStyle.Render("  ")) + linkStyle.Render("  ") + cta

		start := 1 + max(0, inner-lipgloss.Width(right))
		for i, l := range drawerEntries() {
			segW := lipgloss.Width(cta)
			if i < len(segs) {
				segW = lipgloss.Width(segs[i])
			}
			x := start + offsets[i]
			hotspots = append(hotspots, navHotspot{
				rect:   gallery.Rect{MinX: x, MinY: 0, MaxX: x + segW, MaxY: 1},
				anchor: l.Anchor,
			})
		}
	} else {
		icon := "≡ menu (m)"
		if m.nav.Menu().IsOpen {
			icon = "✕ close (m)"
		}
		right = linkStyle.Render(icon)
	}

	padding := max(0, inner-lipgloss.Width(left)-lipgloss.Width(right))
	if m.width < desktopWidth {
		x := 1 + lipgloss.Width(left) + padding
		hotspots = append(hotspots, navHotspot{
			rect: gallery.Rect{MinX: x, MinY: 0, MaxX: x + lipgloss.Width(right), MaxY: 1},
		})
	}
	bar := left + linkStyle.Render(strings.Repeat(" ", padding)) + right
	return barStyle.Width(m.width).Render(bar), hotspots
}

// renderDrawer draws the open drawer. Entry i sits on screen row
// navHeight+1+i.
func (m Model) renderDrawer() string {
	var lines []string
	for i, l := range drawerEntries() {
		label := fmt.Sprintf("%d  %s", i+1, l.Name)
		if i == len(drawerEntries())-1 {
			label = "r  " + l.Name
		}
		if i == m.drawerCursor {
			lines = append(lines, DrawerSelectedStyle.Render("› "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	return DrawerStyle.Width(m.width).Render(strings.Join(lines, "\n"))
}

// drawerEntryAt maps a screen row to a drawer entry.
func (m Model) drawerEntryAt(y int) (nav.Link, bool) {
	i := y - navHeight - 1
	entries := drawerEntries()
	if i < 0 || i >= len(entries) {
		return nav.Link{}, false
	}
	return entries[i], true
}

// drawerContains reports whether screen row y is covered by the drawer.
func (m Model) drawerContains(y int) bool {
	h := len(drawerEntries()) + 2
	return y >= navHeight && y < navHeight+h
}
