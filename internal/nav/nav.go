package nav

import (
	"errors"
	"fmt"
)

// Threshold is the vertical offset, in pixels, past which the navbar turns solid.
const Threshold = 50

// ErrUnknownAnchor is returned when a link targets an anchor outside the fixed set.
var ErrUnknownAnchor = errors.New("unknown anchor")

// Anchor names a page section that navigation links target.
type Anchor string

const (
	AnchorHome    Anchor = "home"
	AnchorAbout   Anchor = "about"
	AnchorMenu    Anchor = "menu"
	AnchorGallery Anchor = "gallery"
	AnchorReviews Anchor = "reviews"
	AnchorBook    Anchor = "book"
)

// Link is a navbar entry.
type Link struct {
	Name   string
	Anchor Anchor
}

// Links returns the navbar entries in display order.
func Links() []Link {
	return []Link{
		{"Home", AnchorHome},
		{"About", AnchorAbout},
		{"Menu", AnchorMenu},
		{"Gallery", AnchorGallery},
		{"Reviews", AnchorReviews},
		{"Book", AnchorBook},
	}
}

// Valid reports whether a is one of the fixed anchors.
func (a Anchor) Valid() bool {
	for _, l := range Links() {
		if l.Anchor == a {
			return true
		}
	}
	return false
}

// ScrollState reflects the latest scroll notification.
type ScrollState struct {
	IsPastThreshold bool
}

// MenuState is the mobile drawer state.
type MenuState struct {
	IsOpen bool
}

// Scroller delivers vertical offsets to subscribers.
type Scroller interface {
	Subscribe(fn func(offsetY int)) (unsubscribe func())
}

// Controller owns the navbar's scroll theme and the drawer.
type Controller struct {
	scroll      ScrollState
	menu        MenuState
	unsubscribe func()
}

// NewController returns a controller in the top-of-page, drawer-closed state.
func NewController() *Controller {
	return &Controller{}
}

// OnScroll recomputes the scroll state from the current offset.
func (c *Controller) OnScroll(offsetY int) ScrollState {
	c.scroll = ScrollState{IsPastThreshold: offsetY > Threshold}
	return c.scroll
}

// ToggleMenu flips the drawer.
func (c *Controller) ToggleMenu() MenuState {
	c.menu.IsOpen = !c.menu.IsOpen
	return c.menu
}

// CloseMenu forces the drawer closed.
func (c *Controller) CloseMenu() MenuState {
	c.menu.IsOpen = false
	return c.menu
}

// Activate handles a navigation link. The drawer is closed even when the
// anchor is not recognised; resolving the target is left to the caller.
func (c *Controller) Activate(anchor Anchor) (Anchor, error) {
	c.CloseMenu()
	if !anchor.Valid() {
		return "", fmt.Errorf("activate %q: %w", anchor, ErrUnknownAnchor)
	}
	return anchor, nil
}

// Scroll returns the current scroll state.
func (c *Controller) Scroll() ScrollState { return c.scroll }

// Menu returns the current drawer state.
func (c *Controller) Menu() MenuState { return c.menu }

// Mount registers the controller's scroll listener with s. Mounting again
// first drops the previous registration.
func (c *Controller) Mount(s Scroller) {
	c.Unmount()
	c.unsubscribe = s.Subscribe(func(offsetY int) {
		c.OnScroll(offsetY)
	})
}

// Unmount removes the scroll listener, if any.
func (c *Controller) Unmount() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Mounted reports whether a scroll listener is registered.
func (c *Controller) Mounted() bool {
	return c.unsubscribe != nil
}
