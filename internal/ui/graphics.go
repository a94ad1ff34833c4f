package ui

import (
	"context"
	"strings"
	"time"

	"shree/internal/gallery"
	"shree/internal/media"
	"shree/internal/model"
	"shree/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	closeLabel = "[x] close"
	prevLabel  = "[‹]"
	nextLabel  = "[›]"
)

// lightboxState tracks the photo shown for the viewer's current key at the
// requested art size.
type lightboxState struct {
	key     string
	width   int
	height  int
	art     string
	err     error
	loading bool
}

// accepts reports whether a load result belongs to the photo on screen.
func (l lightboxState) accepts(msg model.GalleryImageLoadedMsg) bool {
	return msg.Key == l.key && msg.Width == l.width && msg.Height == l.height
}

// lightboxLayout positions the viewer's pieces in screen cells.
type lightboxLayout struct {
	item  gallery.Rect
	prev  gallery.Rect
	next  gallery.Rect
	close gallery.Rect
	artW  int
	artH  int
}

func computeLightboxLayout(width, height int) lightboxLayout {
	artW := min(width-12, 96)
	if artW < 8 {
		artW = max(1, width-2)
	}
	artH := min(height-6, artW/2)
	if artH < 3 {
		artH = max(1, height-4)
	}
	boxH := artH + 2

	left := max(0, (width-artW)/2)
	top := max(1, (height-boxH)/2)
	mid := top + artH/2

	pw := lipgloss.Width(prevLabel)
	nw := lipgloss.Width(nextLabel)
	cw := lipgloss.Width(closeLabel)

	return lightboxLayout{
		item:  gallery.Rect{MinX: left, MinY: top, MaxX: left + artW, MaxY: top + boxH},
		prev:  gallery.Rect{MinX: 1, MinY: mid, MaxX: 1 + pw, MaxY: mid + 1},
		next:  gallery.Rect{MinX: width - 1 - nw, MinY: mid, MaxX: width - 1, MaxY: mid + 1},
		close: gallery.Rect{MinX: width - 1 - cw, MinY: 0, MaxX: width - 1, MaxY: 1},
		artW:  artW,
		artH:  artH,
	}
}

// loadGalleryImageCmd fetches and converts the photo for key off the event loop.
func loadGalleryImageCmd(art *media.ArtCache, key, url string, width, height int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s, err := art.Render(ctx, url, width, height)
		return model.GalleryImageLoadedMsg{Key: key, Width: width, Height: height, Art: s, Err: err}
	}
}

// renderLightbox draws the open viewer over the whole screen.
func (m Model) renderLightbox() string {
	item, ok := m.viewer.Current()
	if !ok {
		return ""
	}
	lay := m.lightboxLayout()

	box := m.lightboxArt(item, lay.artW, lay.artH)
	box = append(box,
		lipgloss.PlaceHorizontal(lay.artW, lipgloss.Center, LightboxTitleStyle.Render(util.TruncateString(item.Title, lay.artW))),
		lipgloss.PlaceHorizontal(lay.artW, lipgloss.Center, LightboxPositionStyle.Render(m.viewer.Position())),
	)

	rows := make([]string, max(1, m.height-2))
	for y := range rows {
		var b strings.Builder
		x := 0
		put := func(at int, s string) {
			if at > x {
				b.WriteString(OverlayStyle.Render(strings.Repeat(" ", at-x)))
				x = at
			}
			b.WriteString(s)
			x += lipgloss.Width(s)
		}

		if y == lay.close.MinY {
			put(lay.close.MinX, LightboxControlStyle.Render(closeLabel))
		}
		if y == lay.prev.MinY {
			put(lay.prev.MinX, LightboxControlStyle.Render(prevLabel))
		}
		if y >= lay.item.MinY && y < lay.item.MaxY {
			put(lay.item.MinX, box[y-lay.item.MinY])
		}
		if y == lay.next.MinY {
			put(lay.next.MinX, LightboxControlStyle.Render(nextLabel))
		}
		put(m.width, "")
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// lightboxArt returns exactly h lines of width w for the photo area.
func (m Model) lightboxArt(item gallery.Item, w, h int) []string {
	var lines []string
	switch {
	case m.lightbox.art != "":
		lines = strings.Split(m.lightbox.art, "\n")
	case m.lightbox.loading:
		lines = placeholder(m.spinner.View()+" Loading photo...", w, h)
	case m.lightbox.err != nil:
		lines = placeholder("Photo unavailable: "+m.lightbox.err.Error(), w, h)
	default:
		lines = placeholder(item.Title, w, h)
	}

	out := make([]string, h)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if lw := lipgloss.Width(line); lw < w {
			line += strings.Repeat(" ", w-lw)
		} else if lw > w {
			line = lipgloss.NewStyle().MaxWidth(w).Render(line)
		}
		out[i] = line
	}
	return out
}

func placeholder(text string, w, h int) []string {
	lines := make([]string, h)
	text = util.TruncateString(text, w)
	lines[h/2] = lipgloss.PlaceHorizontal(w, lipgloss.Center, PlaceholderStyle.Render(text))
	return lines
}
