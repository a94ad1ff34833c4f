package ui

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	"shree/internal/content"
	"shree/internal/media"
	"shree/internal/model"
	"shree/internal/nav"
	"shree/internal/reservation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fakeSource struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (f *fakeSource) Fetch(_ context.Context, url string) (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = func(string) error { return nil }
	}
	m, err := New(c, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.Shutdown)
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, runes(string(r)))
	}
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

// drainReservation feeds queued flow transitions back into the model.
func drainReservation(t *testing.T, m Model) Model {
	t.Helper()
	for {
		select {
		case s := <-m.events:
			m = update(t, m, model.ReservationStateMsg{State: s})
		default:
			return m
		}
	}
}

// collect runs cmd and any batched commands, returning every message.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestScrollPastThresholdSolidifiesNavbar(t *testing.T) {
	m := newTestModel(t, Options{})

	for i := 0; i < 3; i++ {
		m = update(t, m, runes("j"))
	}
	if m.nav.Scroll().IsPastThreshold {
		t.Fatalf("Expected transparent navbar at %dpx", m.viewport.YOffset*rowPixels)
	}

	m = update(t, m, runes("j"))
	if !m.nav.Scroll().IsPastThreshold {
		t.Fatalf("Expected solid navbar at %dpx", m.viewport.YOffset*rowPixels)
	}

	m = update(t, m, runes("g"))
	m = update(t, m, runes("g"))
	if m.viewport.YOffset != 0 || m.nav.Scroll().IsPastThreshold {
		t.Errorf("Expected gg to return to the top, offset=%d", m.viewport.YOffset)
	}
}

func TestMenuToggleAndLinkActivation(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, runes("m"))
	if !m.nav.Menu().IsOpen {
		t.Fatal("Expected drawer open")
	}
	m = update(t, m, runes("m"))
	if m.nav.Menu().IsOpen {
		t.Fatal("Expected drawer closed after second toggle")
	}

	m = update(t, m, runes("m"))
	m = update(t, m, runes("4"))
	if m.nav.Menu().IsOpen {
		t.Error("Expected link to close the drawer")
	}
	if m.focus != model.FocusGallery {
		t.Errorf("Expected gallery focus, got %d", m.focus)
	}
	if m.viewport.YOffset == 0 {
		t.Error("Expected page to jump to the gallery")
	}
}

func TestDrawerSelectWithCursor(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, runes("m"))
	m = update(t, m, runes("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.nav.Menu().IsOpen {
		t.Fatal("Expected drawer closed")
	}
	if m.viewport.YOffset != m.layout.anchors[nav.AnchorAbout] {
		t.Errorf("Expected about section at top, offset=%d want %d", m.viewport.YOffset, m.layout.anchors[nav.AnchorAbout])
	}
}

func TestUnknownAnchorStillClosesDrawer(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, runes("m"))

	next, _ := m.activate("specials")
	m = next.(Model)
	if m.nav.Menu().IsOpen {
		t.Error("Expected drawer closed")
	}
	if !strings.Contains(m.error, "unknown anchor") {
		t.Errorf("Expected unknown anchor error, got %q", m.error)
	}
}

func TestLightboxWrapsAndCloses(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, runes("4"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if i, open := m.viewer.Active(); !open || i != 0 {
		t.Fatalf("Expected first photo open, got %d open=%v", i, open)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if i, _ := m.viewer.Active(); i != 5 {
		t.Errorf("Expected wrap to last photo, got %d", i)
	}
	if !strings.Contains(m.View(), "6 of 6") {
		t.Error("Expected position indicator in view")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if i, _ := m.viewer.Active(); i != 0 {
		t.Errorf("Expected wrap to first photo, got %d", i)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.viewer.IsOpen() {
		t.Error("Expected viewer closed")
	}
	if m.lightbox.key != "" {
		t.Error("Expected lightbox state cleared")
	}
}

func TestLightboxBackdropClick(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, runes("4"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	lay := m.lightboxLayout()
	cx := (lay.item.MinX + lay.item.MaxX) / 2
	cy := (lay.item.MinY + lay.item.MaxY) / 2

	m = update(t, m, click(cx, cy))
	if !m.viewer.IsOpen() {
		t.Fatal("Expected click on the photo to keep the viewer open")
	}

	m = update(t, m, click(lay.next.MinX, lay.next.MinY))
	if i, open := m.viewer.Active(); !open || i != 1 {
		t.Fatalf("Expected next control to advance without closing, got %d open=%v", i, open)
	}

	m = update(t, m, click(lay.item.MinX, lay.item.MaxY+1))
	if m.viewer.IsOpen() {
		t.Error("Expected backdrop click to close the viewer")
	}
}

func TestLightboxLayoutControlsOutsidePhoto(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {120, 40}, {200, 60}} {
		lay := computeLightboxLayout(size[0], size[1])
		for name, r := range map[string]struct{ x, y int }{
			"prev":  {lay.prev.MinX, lay.prev.MinY},
			"next":  {lay.next.MinX, lay.next.MinY},
			"close": {lay.close.MinX, lay.close.MinY},
		} {
			if lay.item.Contains(r.x, r.y) {
				t.Errorf("%dx%d: %s control overlaps the photo", size[0], size[1], name)
			}
		}
		if lay.item.Empty() {
			t.Errorf("%dx%d: empty photo area", size[0], size[1])
		}
	}
}

func TestGalleryPhotoLoadsForCurrentKeyOnly(t *testing.T) {
	src := &fakeSource{}
	m := newTestModel(t, Options{Art: media.NewArtCache(src)})

	m = update(t, m, runes("4"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.lightbox.loading || m.lightbox.key != "item-0" {
		t.Fatalf("Expected loading item-0, got %+v", m.lightbox)
	}

	var loaded model.GalleryImageLoadedMsg
	for _, msg := range collect(cmd) {
		if l, ok := msg.(model.GalleryImageLoadedMsg); ok {
			loaded = l
		}
	}
	if loaded.Key != "item-0" || loaded.Err != nil || loaded.Art == "" {
		t.Fatalf("unexpected load result %+v", loaded)
	}

	// The user moves on before the first photo arrives.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, loaded)
	if m.lightbox.art != "" {
		t.Error("Expected stale photo to be dropped")
	}
	if !m.lightbox.loading {
		t.Error("Expected current photo still loading")
	}

	m = update(t, m, model.GalleryImageLoadedMsg{
		Key: "item-1", Width: m.lightbox.width, Height: m.lightbox.height, Art: "art",
	})
	if m.lightbox.art != "art" || m.lightbox.loading {
		t.Errorf("Expected current photo shown, got %+v", m.lightbox)
	}
}

func TestGalleryPhotoFromBeforeResizeIsDropped(t *testing.T) {
	src := &fakeSource{}
	m := newTestModel(t, Options{Art: media.NewArtCache(src)})

	m = update(t, m, runes("4"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	var old model.GalleryImageLoadedMsg
	for _, msg := range collect(cmd) {
		if l, ok := msg.(model.GalleryImageLoadedMsg); ok {
			old = l
		}
	}

	m, cmd = updateCmd(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m = update(t, m, old)
	if m.lightbox.art != "" || !m.lightbox.loading {
		t.Fatalf("Expected photo rendered for the old size to be dropped, got %+v", m.lightbox)
	}

	for _, msg := range collect(cmd) {
		if l, ok := msg.(model.GalleryImageLoadedMsg); ok {
			m = update(t, m, l)
		}
	}
	if m.lightbox.art == "" || m.lightbox.loading {
		t.Errorf("Expected photo for the new size shown, got %+v", m.lightbox)
	}
}

func TestLightboxArtClipsWideLines(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, runes("4"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	item, ok := m.viewer.Current()
	if !ok {
		t.Fatal("Expected viewer open")
	}

	m.lightbox.art = strings.Repeat("#", 200) + "\n" + strings.Repeat("#", 5)
	for i, line := range m.lightboxArt(item, 40, 4) {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d: expected width 40, got %d", i, w)
		}
	}
}

func TestGalleryPhotoErrorShown(t *testing.T) {
	src := &fakeSource{err: errors.New("offline")}
	m := newTestModel(t, Options{Art: media.NewArtCache(src)})

	m = update(t, m, runes("4"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for _, msg := range collect(cmd) {
		if l, ok := msg.(model.GalleryImageLoadedMsg); ok {
			m = update(t, m, l)
		}
	}
	if !strings.Contains(m.View(), "Photo unavailable") {
		t.Error("Expected error placeholder in the viewer")
	}
}

func TestGalleryTileClickOpensViewer(t *testing.T) {
	m := newTestModel(t, Options{})

	tile := m.layout.tiles[2]
	m.viewport.SetYOffset(tile.MinY)
	y := tile.MinY - m.viewport.YOffset + navHeight

	m = update(t, m, click(tile.MinX+1, y+1))
	if i, open := m.viewer.Active(); !open || i != 2 {
		t.Errorf("Expected third photo open, got %d open=%v", i, open)
	}
}

func fillBooking(t *testing.T, m Model) Model {
	t.Helper()
	m = update(t, m, runes("r"))
	if m.focus != model.FocusForm {
		t.Fatalf("Expected form focus, got %d", m.focus)
	}
	m = typeText(t, m, "Asha Patil")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "9876543210")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "2026-11-02")
	return m
}

func TestBookingConfirmsThenRevertsAfterFiveSeconds(t *testing.T) {
	clock := reservation.NewManualClock()
	m := newTestModel(t, Options{Clock: clock})

	m = fillBooking(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.flow.State() != reservation.Confirmed {
		t.Fatalf("Expected confirmed, got %s", m.flow.State())
	}
	if m.booking != nil {
		t.Error("Expected form hidden while confirmed")
	}
	page, _ := m.renderPage()
	if !strings.Contains(page, "Table Requested!") {
		t.Error("Expected confirmation on the page")
	}

	clock.Advance(4 * time.Second)
	m = drainReservation(t, m)
	if m.booking != nil {
		t.Fatal("Expected confirmation to stay up before five seconds")
	}

	clock.Advance(time.Second)
	m = drainReservation(t, m)
	if m.flow.State() != reservation.Idle || m.booking == nil {
		t.Fatalf("Expected form back, state=%s", m.flow.State())
	}
	if got := m.booking.Request().Name; got != "" {
		t.Errorf("Expected fresh form, got name %q", got)
	}
	page, _ = m.renderPage()
	if !strings.Contains(page, "Guest Name") {
		t.Error("Expected form fields on the page")
	}
}

func TestBookingValidationErrorStaysInline(t *testing.T) {
	clock := reservation.NewManualClock()
	m := newTestModel(t, Options{Clock: clock})

	m = update(t, m, runes("r"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.flow.State() != reservation.Idle {
		t.Fatal("Expected flow to stay idle")
	}
	if clock.Pending() != 0 {
		t.Error("Expected no reversion scheduled")
	}
	if m.booking == nil || !strings.Contains(m.booking.error, "guest name is required") {
		t.Fatalf("Expected inline name error, got %+v", m.booking)
	}
	if m.booking.focusedField != fieldName {
		t.Errorf("Expected cursor on the name field, got %d", m.booking.focusedField)
	}

	m = typeText(t, m, "A")
	if m.booking.error != "" {
		t.Error("Expected error cleared when the field is edited")
	}
}

func TestBookingOptionsCycle(t *testing.T) {
	m := newTestModel(t, Options{Clock: reservation.NewManualClock()})
	m = fillBooking(t, m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	req := m.booking.Request()
	if req.Slot != "Late Night (09:30 PM)" {
		t.Errorf("Expected slot to wrap backwards, got %q", req.Slot)
	}
	if req.PartySize != "4 Guest" {
		t.Errorf("Expected next party size, got %q", req.PartySize)
	}

	// Enter on the last field submits.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.flow.State() != reservation.Confirmed {
		t.Errorf("Expected confirmed after enter on last field, got %s", m.flow.State())
	}
}

func TestQuitCancelsPendingReversion(t *testing.T) {
	clock := reservation.NewManualClock()
	m := newTestModel(t, Options{Clock: clock})

	m = fillBooking(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if clock.Pending() != 1 {
		t.Fatalf("Expected one pending reversion, got %d", clock.Pending())
	}

	m, cmd := updateCmd(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if clock.Pending() != 0 {
		t.Error("Expected reversion cancelled on quit")
	}
	if !m.flow.Closed() || m.scroll.Len() != 0 {
		t.Error("Expected flow closed and scroll listener removed")
	}

	clock.Advance(10 * time.Second)
	if m.flow.State() != reservation.Confirmed {
		t.Error("Expected no transition after teardown")
	}
	m.Shutdown()
}

func TestOrderLinkCopied(t *testing.T) {
	var copied []string
	m := newTestModel(t, Options{Clipboard: func(s string) error {
		copied = append(copied, s)
		return nil
	}})

	m = update(t, m, runes("o"))
	if m.focus != model.FocusOrder {
		t.Fatalf("Expected order focus, got %d", m.focus)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("Expected one message, got %d", len(msgs))
	}
	m = update(t, m, msgs[0])
	if len(copied) != 1 || copied[0] != "https://www.swiggy.com" {
		t.Errorf("unexpected clipboard writes %v", copied)
	}
	if !strings.Contains(m.info, "Swiggy link copied") {
		t.Errorf("Expected info banner, got %q", m.info)
	}
}

func TestOrderLinkCopyFailure(t *testing.T) {
	m := newTestModel(t, Options{Clipboard: func(string) error { return errors.New("no clipboard") }})

	m = update(t, m, runes("o"))
	m, cmd := updateCmd(t, m, runes("c"))
	for _, msg := range collect(cmd) {
		m = update(t, m, msg)
	}
	if !strings.Contains(m.error, "no clipboard") {
		t.Errorf("Expected clipboard error, got %q", m.error)
	}
}

func TestRegionCycle(t *testing.T) {
	m := newTestModel(t, Options{Clock: reservation.NewManualClock()})

	want := []model.Focus{model.FocusGallery, model.FocusOrder, model.FocusForm, model.FocusPage}
	for _, f := range want {
		if m.focus == model.FocusForm {
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		} else {
			m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
		if m.focus != f {
			t.Fatalf("Expected focus %d, got %d", f, m.focus)
		}
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, runes("?"))
	if !m.showingHelp || !strings.Contains(m.View(), "Booking Form") {
		t.Fatal("Expected help screen")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showingHelp {
		t.Error("Expected help closed")
	}
}
