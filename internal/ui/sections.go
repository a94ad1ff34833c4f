package ui

import (
	"fmt"
	"strings"
	"sync"

	"shree/internal/gallery"
	"shree/internal/model"
	"shree/internal/nav"
	"shree/internal/reservation"
	"shree/internal/util"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	tileWidth  = 28
	tileHeight = 5
	tileGap    = 2
)

var sectionStyle = lipgloss.NewStyle().Padding(1, 2)

// pageLayout records where things ended up in the rendered page, in page
// rows and columns, so scroll jumps and mouse clicks can find them.
type pageLayout struct {
	anchors map[nav.Anchor]int
	tiles   []gallery.Rect
	orders  []gallery.Rect
	height  int
}

// markdownCache keeps rendered markdown per wrap width.
type markdownCache struct {
	mu   sync.Mutex
	out  map[int]string
	fail bool
}

func newMarkdownCache() *markdownCache {
	return &markdownCache{out: make(map[int]string)}
}

func (c *markdownCache) render(md string, width int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.out[width]; ok {
		return s
	}
	if c.fail {
		return BodyStyle.Width(width).Render(md)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		c.fail = true
		return BodyStyle.Width(width).Render(md)
	}
	s, err := r.Render(md)
	if err != nil {
		c.fail = true
		return BodyStyle.Width(width).Render(md)
	}
	s = strings.Trim(s, "\n")
	c.out[width] = s
	return s
}

// renderPage draws every section top to bottom.
func (m *Model) renderPage() (string, pageLayout) {
	width := max(m.width, 20)
	layout := pageLayout{anchors: make(map[nav.Anchor]int)}

	type block struct {
		anchor nav.Anchor
		render func(width, top int, layout *pageLayout) string
	}
	blocks := []block{
		{nav.AnchorHome, m.renderHero},
		{nav.AnchorAbout, m.renderAbout},
		{nav.AnchorMenu, m.renderMenu},
		{nav.AnchorGallery, m.renderGallery},
		{"", m.renderOrder},
		{nav.AnchorReviews, m.renderReviews},
		{nav.AnchorBook, m.renderBooking},
		{"", m.renderLocation},
		{"", m.renderFooter},
	}

	var parts []string
	row := 0
	for _, b := range blocks {
		if b.anchor != "" {
			layout.anchors[b.anchor] = row
		}
		s := b.render(width, row, &layout)
		parts = append(parts, s)
		row += lipgloss.Height(s)
	}
	layout.height = row
	return strings.Join(parts, "\n"), layout
}

func (m *Model) renderHero(width, _ int, _ *pageLayout) string {
	b := m.content.Brand
	inner := width - 4

	cta := ButtonStyle.Render("Reserve Table (r)") + "  " + ButtonStyle.Render("Order Online (o)")
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		EyebrowStyle.Render(strings.ToUpper(b.Tagline)),
		"",
		HeroTitleStyle.Render(b.Headline),
		HeroAccentStyle.Render(b.Accent),
		"",
		BodyStyle.Width(inner).Render(b.Pitch),
		"",
		cta,
	)
	return sectionStyle.Width(width).Render(body)
}

func (m *Model) renderAbout(width, _ int, _ *pageLayout) string {
	a := m.content.About
	inner := width - 4

	parts := []string{
		EyebrowStyle.Render(strings.ToUpper(a.Eyebrow)),
		SectionTitleStyle.Render(a.Title),
		"",
		m.about.render(a.Body, inner),
	}
	if a.Quote != "" {
		parts = append(parts, "", QuoteStyle.Width(inner-2).Render(a.Quote))
	}
	return sectionStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderMenu(width, _ int, _ *pageLayout) string {
	mn := m.content.Menu
	inner := width - 4

	cols := 1
	if inner >= 60 {
		cols = 2
	}
	cardWidth := (inner-(cols-1)*tileGap)/cols - 2

	var rows []string
	var row []string
	for i, cat := range mn.Categories {
		card := CardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(
			lipgloss.Left,
			LabelStyle.Render(cat.Title),
			HelpDescStyle.Render(cat.Description),
		))
		row = append(row, card)
		if len(row) == cols || i == len(mn.Categories)-1 {
			rows = append(rows, joinWithGap(row))
			row = nil
		}
	}

	parts := []string{
		EyebrowStyle.Render(strings.ToUpper(mn.Eyebrow)),
		SectionTitleStyle.Render(mn.Title),
		"",
	}
	parts = append(parts, rows...)
	if mn.Note != "" {
		parts = append(parts, "", BodyStyle.Width(inner).Render(mn.Note))
	}
	if mn.FullMenu != "" {
		parts = append(parts, HelpDescStyle.Render("Full menu: "+mn.FullMenu))
	}
	return sectionStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderGallery(width, top int, layout *pageLayout) string {
	g := m.content.Gallery
	inner := width - 4

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		EyebrowStyle.Render(strings.ToUpper(g.Eyebrow)),
		SectionTitleStyle.Render(g.Title),
		HelpDescStyle.Width(inner).Render(g.Blurb),
		"",
	)

	cols := galleryColumns(width)
	gridTop := top + 1 + lipgloss.Height(header)
	items := m.viewer.Catalog().Items()

	var rows []string
	var row []string
	for i, item := range items {
		style := CardStyle
		if m.focus == model.FocusGallery && i == m.galleryCursor {
			style = CardActiveStyle
		}
		tile := style.Width(tileWidth - 2).Render(lipgloss.JoinVertical(
			lipgloss.Left,
			LightboxPositionStyle.Render(fmt.Sprintf("%02d", i+1)),
			LabelStyle.Render(util.TruncateString(item.Title, tileWidth-4)),
			HelpDescStyle.Render("enter to view"),
		))
		row = append(row, tile)

		col := i % cols
		r := i / cols
		x := 2 + col*(tileWidth+tileGap)
		y := gridTop + r*tileHeight
		layout.tiles = append(layout.tiles, gallery.Rect{MinX: x, MinY: y, MaxX: x + tileWidth, MaxY: y + tileHeight})

		if len(row) == cols || i == len(items)-1 {
			rows = append(rows, joinWithGap(row))
			row = nil
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
	return sectionStyle.Width(width).Render(body)
}

func galleryColumns(width int) int {
	return max(1, (width-4+tileGap)/(tileWidth+tileGap))
}

func (m *Model) renderOrder(width, top int, layout *pageLayout) string {
	o := m.content.Order
	inner := width - 4

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		SectionTitleStyle.Render(o.Title),
		BodyStyle.Width(inner).Render(o.Blurb),
		"",
	)

	y := top + 1 + lipgloss.Height(header)
	x := 2
	var buttons []string
	for i, link := range o.Links {
		style := ButtonStyle
		if m.focus == model.FocusOrder && i == m.orderCursor {
			style = ButtonActiveStyle
		}
		btn := style.Render("Order on " + link.Platform)
		w := lipgloss.Width(btn)
		layout.orders = append(layout.orders, gallery.Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + 1})
		x += w + 2
		buttons = append(buttons, btn)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strings.Join(buttons, "  "),
		HelpDescStyle.Render("enter or c copies the link"),
	)
	return sectionStyle.Width(width).Render(body)
}

func (m *Model) renderReviews(width, _ int, _ *pageLayout) string {
	rv := m.content.Reviews
	inner := width - 4

	var cards []string
	for _, r := range rv.Items {
		head := BadgeStyle.Render(util.Initial(r.Name)) + " " + LabelStyle.Render(r.Name) + "  " + StarStyle.Render(util.FormatStars(r.Rating))
		cards = append(cards, CardStyle.Width(inner-2).Render(lipgloss.JoinVertical(
			lipgloss.Left,
			head,
			QuoteStyle.Render("\""+r.Comment+"\""),
		)))
	}

	parts := []string{
		EyebrowStyle.Render(strings.ToUpper(rv.Eyebrow)),
		SectionTitleStyle.Render(rv.Title),
		"",
	}
	parts = append(parts, cards...)
	return sectionStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderBooking(width, _ int, _ *pageLayout) string {
	bk := m.content.Booking
	inner := width - 4

	contact := LabelStyle.Render("Call: ") + BodyStyle.Render(bk.Phone)
	if bk.Hours != "" {
		contact += HelpDescStyle.Render("  ·  " + bk.Hours)
	}

	var form string
	if m.flow.State() == reservation.Confirmed || m.booking == nil {
		form = renderConfirmation(bk, min(inner, 60))
	} else {
		form = m.booking.View(inner)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		EyebrowStyle.Render(strings.ToUpper(bk.Eyebrow)),
		SectionTitleStyle.Render(bk.Title),
		BodyStyle.Width(inner).Render(bk.Blurb),
		contact,
		"",
		form,
	)
	return sectionStyle.Width(width).Render(body)
}

func renderConfirmation(bk model.Booking, width int) string {
	title := bk.SuccessTitle
	if title == "" {
		title = "Table Requested!"
	}
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		HeroAccentStyle.Render("✓"),
		"",
		SectionTitleStyle.Render(title),
		BodyStyle.Render(bk.SuccessBody),
		"",
		HelpDescStyle.Render(fmt.Sprintf("The form comes back in %s.", reservation.RevertAfter)),
	)
	return SuccessPanelStyle.Width(width).Align(lipgloss.Center).Render(body)
}

func (m *Model) renderLocation(width, _ int, _ *pageLayout) string {
	loc := m.content.Location
	inner := width - 4

	parts := []string{
		SectionTitleStyle.Render(loc.Title),
		BodyStyle.Width(inner).Render(loc.Blurb),
		"",
	}
	for _, line := range loc.Address {
		parts = append(parts, BodyStyle.Render(line))
	}
	if loc.MapURL != "" {
		parts = append(parts, "", HelpDescStyle.Render("Map: "+loc.MapURL))
	}
	return sectionStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderFooter(width, _ int, _ *pageLayout) string {
	f := m.content.Footer
	inner := width - 4

	var badges []string
	for _, b := range f.Badges {
		badges = append(badges, BadgeStyle.Render(b))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		HeroTitleStyle.Render(m.content.Brand.Name)+" "+HelpDescStyle.Render(m.content.Brand.Subtitle),
		BodyStyle.Width(inner).Render(f.Mission),
		"",
		strings.Join(badges, " "),
		HelpDescStyle.Render(f.Copyright),
	)
	return sectionStyle.Width(width).Render(body)
}

func joinWithGap(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", tileGap)
	withGaps := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			withGaps = append(withGaps, gap)
		}
		withGaps = append(withGaps, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, withGaps...)
}
