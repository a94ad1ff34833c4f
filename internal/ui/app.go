package ui

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"shree/internal/content"
	"shree/internal/gallery"
	"shree/internal/logging"
	"shree/internal/media"
	"shree/internal/model"
	"shree/internal/nav"
	"shree/internal/reservation"
	"shree/internal/util"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// rowPixels is how many pixels one terminal row counts as when the scroll
// offset is compared with the navbar threshold.
const rowPixels = 16

// chromeHeight is the navbar, the status line and the help footer.
const chromeHeight = navHeight + 1 + 2

// Options carries the page's optional collaborators.
type Options struct {
	// Art renders gallery photos. Nil shows titles only.
	Art          *media.ArtCache
	ImageTimeout time.Duration
	// Clock drives the reservation reversion. Nil uses the system clock.
	Clock reservation.Clock
	// Clipboard receives copied order links. Nil uses the system clipboard.
	Clipboard func(string) error
}

// Model is the root Bubble Tea model.
type Model struct {
	content *model.Content
	nav     *nav.Controller
	scroll  *nav.ScrollBus
	viewer  *gallery.Viewer
	flow    *reservation.Flow
	booking *BookingFormModel

	events chan reservation.State
	done   chan struct{}
	stop   *sync.Once

	art          *media.ArtCache
	imageTimeout time.Duration
	clipboard    func(string) error
	about        *markdownCache

	viewport      viewport.Model
	layout        pageLayout
	focus         model.Focus
	galleryCursor int
	orderCursor   int
	drawerCursor  int
	lightbox      lightboxState
	spinner       spinner.Model
	gState        GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	keys         KeyMap
	lightboxKeys LightboxKeyMap
	formKeys     FormKeyMap
}

// New creates the page for c.
func New(c *model.Content, opts Options) (Model, error) {
	catalog, err := content.Catalog(c)
	if err != nil {
		return Model{}, err
	}
	if opts.ImageTimeout <= 0 {
		opts.ImageTimeout = 10 * time.Second
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	events := make(chan reservation.State, 8)
	flow := reservation.NewFlow(opts.Clock, func(s reservation.State) {
		select {
		case events <- s:
		default:
			logging.Log.WithField("state", s).Warn("reservation event dropped")
		}
	})

	bus := &nav.ScrollBus{}
	ctrl := nav.NewController()
	ctrl.Mount(bus)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		content:      c,
		nav:          ctrl,
		scroll:       bus,
		viewer:       gallery.NewViewer(catalog),
		flow:         flow,
		events:       events,
		done:         make(chan struct{}),
		stop:         &sync.Once{},
		art:          opts.Art,
		imageTimeout: opts.ImageTimeout,
		clipboard:    opts.Clipboard,
		about:        newMarkdownCache(),
		viewport:     viewport.New(0, 0),
		focus:        model.FocusPage,
		spinner:      sp,
		gState:       GStateIdle,
		keys:         DefaultKeyMap(),
		lightboxKeys: DefaultLightboxKeyMap(),
		formKeys:     DefaultFormKeyMap(),
	}
	if form, ok := flow.Form(); ok {
		m.booking = NewBookingFormModel(form)
	}
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return waitForReservation(m.events, m.done)
}

// Shutdown cancels the pending reservation reversion and detaches the scroll
// listener. It is safe to call more than once.
func (m Model) Shutdown() {
	m.stop.Do(func() {
		m.flow.Close()
		m.nav.Unmount()
		close(m.done)
		logging.Log.Debug("page shut down")
	})
}

// waitForReservation delivers the next flow transition to the event loop.
func waitForReservation(events <-chan reservation.State, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-events:
			return model.ReservationStateMsg{State: s}
		case <-done:
			return nil
		}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		m.refresh()
		m.scrolled()
		if m.viewer.IsOpen() {
			return m, m.viewerChanged()
		}
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		if m.showingHelp {
			if msg.String() == "esc" || msg.String() == "?" {
				m.showingHelp = false
			}
			return m, nil
		}
		if msg.String() == "?" && m.focus != model.FocusForm {
			m.showingHelp = true
			return m, nil
		}

		m.error = ""
		m.info = ""

		switch {
		case m.viewer.IsOpen():
			return m.handleLightboxKeys(msg)
		case m.nav.Menu().IsOpen:
			return m.handleDrawerKeys(msg)
		case m.focus == model.FocusForm:
			return m.handleFormKeys(msg)
		}
		return m.handlePageKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case model.ReservationStateMsg:
		logging.Log.WithField("state", msg.State).Debug("reservation transition")
		if m.flow.State() == reservation.Idle && m.booking == nil {
			if form, ok := m.flow.Form(); ok {
				m.booking = NewBookingFormModel(form)
			}
		}
		m.refresh()
		return m, waitForReservation(m.events, m.done)

	case model.GalleryImageLoadedMsg:
		if !m.viewer.IsOpen() || !m.lightbox.accepts(msg) {
			logging.Log.WithFields(logrus.Fields{"key": msg.Key, "width": msg.Width, "height": msg.Height}).Debug("dropping stale photo")
			return m, nil
		}
		m.lightbox.loading = false
		m.lightbox.art = msg.Art
		m.lightbox.err = msg.Err
		if msg.Err != nil {
			logging.Log.WithError(msg.Err).WithField("key", msg.Key).Warn("photo failed to load")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.lightbox.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case model.LinkCopiedMsg:
		m.info = fmt.Sprintf("%s link copied: %s", msg.Platform, msg.URL)
		logging.Log.WithField("platform", msg.Platform).Info("order link copied")
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		logging.Log.WithError(msg.Err).Warn("ui error")
		return m, nil
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	ctx := helpContext{
		focus:    m.focus,
		drawer:   m.nav.Menu().IsOpen,
		lightbox: m.viewer.IsOpen(),
	}
	footer := RenderHelp(ctx, m.width)

	if m.viewer.IsOpen() {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderLightbox(), footer)
	}

	header, _ := m.renderNavbar()
	body := m.viewport.View()
	if m.nav.Menu().IsOpen {
		body = overlayTop(body, m.renderDrawer())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatus(), footer)
}

func (m Model) renderStatus() string {
	switch {
	case m.error != "":
		return ErrorStyle.Width(m.width).MaxHeight(1).Render("Error: " + m.error)
	case m.info != "":
		return SuccessStyle.Width(m.width).MaxHeight(1).Render(m.info)
	}
	return ""
}

// overlayTop replaces the first lines of base with top.
func overlayTop(base, top string) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for i, l := range topLines {
		if i >= len(baseLines) {
			break
		}
		baseLines[i] = l
	}
	return strings.Join(baseLines, "\n")
}

// refresh re-renders the page into the viewport, keeping the offset.
func (m *Model) refresh() {
	if m.width == 0 {
		return
	}
	page, layout := m.renderPage()
	m.layout = layout
	m.viewport.SetContent(page)
}

// scrolled publishes the viewport offset to the scroll listeners.
func (m *Model) scrolled() {
	was := m.nav.Scroll().IsPastThreshold
	m.scroll.Publish(m.viewport.YOffset * rowPixels)
	if now := m.nav.Scroll().IsPastThreshold; now != was {
		logging.Log.WithField("past_threshold", now).Debug("navbar theme changed")
	}
}

func (m *Model) ensureVisible(r gallery.Rect) {
	switch {
	case r.MinY < m.viewport.YOffset:
		m.viewport.SetYOffset(r.MinY)
	case r.MaxY > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(r.MaxY - m.viewport.Height)
	}
	m.scrolled()
}

// revealTile re-renders the grid and scrolls the cursor's tile into view.
func (m *Model) revealTile() {
	m.refresh()
	if m.galleryCursor < len(m.layout.tiles) {
		m.ensureVisible(m.layout.tiles[m.galleryCursor])
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

// setFocus moves keyboard focus to a region without scrolling.
func (m *Model) setFocus(f model.Focus) tea.Cmd {
	if f == model.FocusForm && m.booking == nil {
		f = model.FocusPage
	}
	if m.focus == model.FocusForm && f != model.FocusForm && m.booking != nil {
		m.booking.Blur()
	}
	m.focus = f

	var cmd tea.Cmd
	if f == model.FocusForm {
		cmd = m.booking.Focus()
	}
	m.refresh()
	return cmd
}

// focusRegion moves focus and scrolls the region into view.
func (m *Model) focusRegion(f model.Focus) tea.Cmd {
	cmd := m.setFocus(f)
	switch m.focus {
	case model.FocusGallery:
		m.revealTile()
	case model.FocusOrder:
		if m.orderCursor < len(m.layout.orders) {
			m.ensureVisible(m.layout.orders[m.orderCursor])
		}
	case model.FocusForm:
		m.viewport.SetYOffset(m.layout.anchors[nav.AnchorBook])
		m.scrolled()
	}
	return cmd
}

var regionOrder = []model.Focus{model.FocusPage, model.FocusGallery, model.FocusOrder, model.FocusForm}

func (m *Model) cycleRegion(step int) tea.Cmd {
	idx := 0
	for i, f := range regionOrder {
		if f == m.focus {
			idx = i
		}
	}
	next := regionOrder[(idx+step+len(regionOrder))%len(regionOrder)]
	if next == model.FocusForm && m.booking == nil {
		next = regionOrder[(idx+2*step+len(regionOrder))%len(regionOrder)]
	}
	return m.focusRegion(next)
}

// activate follows a navigation link: the drawer closes and the page jumps
// to the anchor.
func (m Model) activate(a nav.Anchor) (tea.Model, tea.Cmd) {
	target, err := m.nav.Activate(a)
	m.drawerCursor = 0
	if err != nil {
		m.error = err.Error()
		logging.Log.WithError(err).Warn("navigation failed")
		return m, nil
	}
	logging.Log.WithField("anchor", target).Debug("navigate")

	focus := model.FocusPage
	switch target {
	case nav.AnchorGallery:
		focus = model.FocusGallery
	case nav.AnchorBook:
		focus = model.FocusForm
	}
	cmd := m.setFocus(focus)
	m.viewport.SetYOffset(m.layout.anchors[target])
	m.scrolled()
	return m, cmd
}

func (m *Model) toggleMenu() {
	state := m.nav.ToggleMenu()
	m.drawerCursor = 0
	logging.Log.WithField("open", state.IsOpen).Debug("menu toggled")
}

// openViewer opens the lightbox on photo i.
func (m *Model) openViewer(i int) tea.Cmd {
	if err := m.viewer.Open(i); err != nil {
		m.error = err.Error()
		return nil
	}
	return m.viewerChanged()
}

// viewerChanged resets the lightbox for the viewer's current photo and
// starts loading it. Results for any other key are dropped on arrival.
func (m *Model) viewerChanged() tea.Cmd {
	item, ok := m.viewer.Current()
	if !ok {
		m.lightbox = lightboxState{}
		return nil
	}
	key := m.viewer.Key()
	m.lightbox = lightboxState{key: key}
	logging.Log.WithFields(logrus.Fields{"key": key, "position": m.viewer.Position()}).Debug("viewer moved")

	if m.art == nil || m.width == 0 {
		return nil
	}
	lay := m.lightboxLayout()
	m.lightbox.width, m.lightbox.height = lay.artW, lay.artH
	m.lightbox.loading = true
	return tea.Batch(
		loadGalleryImageCmd(m.art, key, item.URL, lay.artW, lay.artH, m.imageTimeout),
		m.spinner.Tick,
	)
}

func (m *Model) closeViewer() {
	m.viewer.Close()
	m.lightbox = lightboxState{}
	logging.Log.Debug("viewer closed")
}

// lightboxLayout leaves the bottom rows for the help footer.
func (m Model) lightboxLayout() lightboxLayout {
	return computeLightboxLayout(m.width, max(1, m.height-2))
}

func copyLinkCmd(write func(string) error, link model.OrderLink) tea.Cmd {
	return func() tea.Msg {
		if err := write(link.URL); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("copy %s link: %w", link.Platform, err)}
		}
		return model.LinkCopiedMsg{Platform: link.Platform, URL: link.URL}
	}
}

func (m *Model) copyOrderLink(i int) tea.Cmd {
	links := m.content.Order.Links
	if i < 0 || i >= len(links) {
		return nil
	}
	return copyLinkCmd(m.clipboard, links[i])
}

// linkNumber maps the keys 1-6 to navbar links.
func linkNumber(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' {
		return 0, false
	}
	n := int(s[0] - '1')
	if n >= len(nav.Links()) {
		return 0, false
	}
	return n, true
}

func (m Model) handlePageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle "gg" state machine
	if msg.String() == "g" {
		if m.gState == GStateFirstG {
			m.gState = GStateIdle
			m.viewport.GotoTop()
			m.scrolled()
			return m, nil
		}
		m.gState = GStateFirstG
		return m, nil
	}
	m.gState = GStateIdle

	if n, ok := linkNumber(msg); ok {
		return m.activate(nav.Links()[n].Anchor)
	}

	switch m.focus {
	case model.FocusGallery:
		n := m.viewer.Catalog().Len()
		switch {
		case key.Matches(msg, m.keys.Left):
			m.galleryCursor = max(0, m.galleryCursor-1)
			m.revealTile()
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.galleryCursor = min(n-1, m.galleryCursor+1)
			m.revealTile()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			return m, m.openViewer(m.galleryCursor)
		}
	case model.FocusOrder:
		n := len(m.content.Order.Links)
		switch {
		case key.Matches(msg, m.keys.Left):
			m.orderCursor = max(0, m.orderCursor-1)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.orderCursor = min(n-1, m.orderCursor+1)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyOrderLink(m.orderCursor)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Menu):
		m.toggleMenu()
		return m, nil
	case key.Matches(msg, m.keys.Reserve):
		return m.activate(nav.AnchorBook)
	case key.Matches(msg, m.keys.Order):
		return m, m.focusRegion(model.FocusOrder)
	case key.Matches(msg, m.keys.NextRegion):
		return m, m.cycleRegion(1)
	case key.Matches(msg, m.keys.PrevRegion):
		return m, m.cycleRegion(-1)
	case key.Matches(msg, m.keys.Back):
		return m, m.setFocus(model.FocusPage)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	default:
		return m, nil
	}
	m.scrolled()
	return m, nil
}

func (m Model) handleDrawerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if n, ok := linkNumber(msg); ok {
		return m.activate(nav.Links()[n].Anchor)
	}

	entries := drawerEntries()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Back):
		m.nav.CloseMenu()
		logging.Log.Debug("menu closed")
	case key.Matches(msg, m.keys.Down):
		m.drawerCursor = (m.drawerCursor + 1) % len(entries)
	case key.Matches(msg, m.keys.Up):
		m.drawerCursor = (m.drawerCursor - 1 + len(entries)) % len(entries)
	case key.Matches(msg, m.keys.Select):
		return m.activate(entries[m.drawerCursor].Anchor)
	case key.Matches(msg, m.keys.Reserve):
		return m.activate(nav.AnchorBook)
	}
	return m, nil
}

func (m Model) handleLightboxKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.lightboxKeys.Previous):
		m.viewer.Previous()
		return m, m.viewerChanged()
	case key.Matches(msg, m.lightboxKeys.Next):
		m.viewer.Next()
		return m, m.viewerChanged()
	case key.Matches(msg, m.lightboxKeys.Close):
		m.closeViewer()
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.booking == nil {
		m.setFocus(model.FocusPage)
		return m.handlePageKeys(msg)
	}

	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		return m, m.setFocus(model.FocusPage)
	case key.Matches(msg, m.formKeys.Save):
		return m.submitBooking()
	case msg.String() == "enter":
		if m.booking.LastField() {
			return m.submitBooking()
		}
		m.booking.nextField()
		m.refresh()
		return m, nil
	}

	updated, cmd := m.booking.Update(msg)
	m.booking = &updated
	m.refresh()
	return m, cmd
}

func (m Model) submitBooking() (tea.Model, tea.Cmd) {
	req := m.booking.Request()
	state, err := m.booking.Submit()

	var verr *reservation.ValidationError
	switch {
	case errors.As(err, &verr):
		logging.Log.WithField("field", verr.Field).Debug("booking rejected")
	case errors.Is(err, reservation.ErrFormClosed):
		m.booking = nil
		m.focus = model.FocusPage
		logging.Log.Debug("stale booking form dropped")
	case err != nil:
		m.error = err.Error()
		logging.Log.WithError(err).Warn("booking failed")
	default:
		fields := logrus.Fields{
			"state":  state,
			"slot":   req.Slot,
			"guests": req.PartySize,
		}
		if iso, err := util.ParseDateInput(req.Date); err == nil {
			fields["date"] = util.FormatDate(iso)
		}
		logging.Log.WithFields(fields).Info("table requested")
		m.booking = nil
		m.focus = model.FocusPage
		m.info = "Table requested"
	}
	m.refresh()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		if !m.viewer.IsOpen() {
			m.viewport.LineDown(3)
			m.scrolled()
		}
		return m, nil
	case tea.MouseButtonWheelUp:
		if !m.viewer.IsOpen() {
			m.viewport.LineUp(3)
			m.scrolled()
		}
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if m.viewer.IsOpen() {
		lay := m.lightboxLayout()
		switch {
		case lay.close.Contains(msg.X, msg.Y):
			m.closeViewer()
		case lay.prev.Contains(msg.X, msg.Y):
			m.viewer.Previous()
			return m, m.viewerChanged()
		case lay.next.Contains(msg.X, msg.Y):
			m.viewer.Next()
			return m, m.viewerChanged()
		case m.viewer.ClickAt(msg.X, msg.Y, lay.item):
			m.lightbox = lightboxState{}
			logging.Log.Debug("viewer closed by backdrop click")
		}
		return m, nil
	}

	if msg.Y < navHeight {
		_, hotspots := m.renderNavbar()
		for _, h := range hotspots {
			if !h.rect.Contains(msg.X, msg.Y) {
				continue
			}
			if h.anchor == "" {
				m.toggleMenu()
				return m, nil
			}
			return m.activate(h.anchor)
		}
		return m, nil
	}

	if m.nav.Menu().IsOpen && m.drawerContains(msg.Y) {
		if entry, ok := m.drawerEntryAt(msg.Y); ok {
			return m.activate(entry.Anchor)
		}
		return m, nil
	}

	py := msg.Y - navHeight + m.viewport.YOffset
	if msg.Y-navHeight >= m.viewport.Height {
		return m, nil
	}
	for i, r := range m.layout.tiles {
		if r.Contains(msg.X, py) {
			m.galleryCursor = i
			m.setFocus(model.FocusGallery)
			return m, m.openViewer(i)
		}
	}
	for i, r := range m.layout.orders {
		if r.Contains(msg.X, py) {
			m.orderCursor = i
			m.setFocus(model.FocusOrder)
			return m, m.copyOrderLink(i)
		}
	}
	return m, nil
}
