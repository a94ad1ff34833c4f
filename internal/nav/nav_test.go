package nav

import (
	"errors"
	"testing"
)

func TestOnScrollThreshold(t *testing.T) {
	c := NewController()

	tests := []struct {
		offset int
		want   bool
	}{
		{0, false},
		{-10, false},
		{49, false},
		{50, false},
		{51, true},
		{400, true},
	}
	for _, tt := range tests {
		if got := c.OnScroll(tt.offset).IsPastThreshold; got != tt.want {
			t.Errorf("OnScroll(%d) = %v, want %v", tt.offset, got, tt.want)
		}
		if c.Scroll().IsPastThreshold != tt.want {
			t.Errorf("Scroll() after OnScroll(%d) not recorded", tt.offset)
		}
	}
}

func TestToggleMenuIsInvolution(t *testing.T) {
	c := NewController()

	if !c.ToggleMenu().IsOpen {
		t.Fatal("Expected menu open after first toggle")
	}
	if c.ToggleMenu().IsOpen {
		t.Fatal("Expected menu closed after second toggle")
	}
}

func TestCloseMenuIsIdempotent(t *testing.T) {
	c := NewController()

	if c.CloseMenu().IsOpen {
		t.Error("Expected closed menu to stay closed")
	}
	c.ToggleMenu()
	if c.CloseMenu().IsOpen {
		t.Error("Expected open menu to close")
	}
	if c.CloseMenu().IsOpen {
		t.Error("Expected repeated close to be a no-op")
	}
}

func TestActivateClosesMenu(t *testing.T) {
	c := NewController()
	c.ToggleMenu()

	got, err := c.Activate(AnchorGallery)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if got != AnchorGallery {
		t.Errorf("Expected gallery, got %q", got)
	}
	if c.Menu().IsOpen {
		t.Error("Expected menu closed after activation")
	}
}

func TestActivateUnknownAnchorStillCloses(t *testing.T) {
	c := NewController()
	c.ToggleMenu()

	_, err := c.Activate(Anchor("contact"))
	if !errors.Is(err, ErrUnknownAnchor) {
		t.Fatalf("Expected ErrUnknownAnchor, got %v", err)
	}
	if c.Menu().IsOpen {
		t.Error("Expected menu closed even for unknown anchor")
	}
}

func TestLinksCoverFixedAnchors(t *testing.T) {
	want := []Anchor{AnchorHome, AnchorAbout, AnchorMenu, AnchorGallery, AnchorReviews, AnchorBook}
	links := Links()
	if len(links) != len(want) {
		t.Fatalf("Expected %d links, got %d", len(want), len(links))
	}
	for i, l := range links {
		if l.Anchor != want[i] {
			t.Errorf("link %d: expected %q, got %q", i, want[i], l.Anchor)
		}
	}
}

func TestMountRegistersSingleListener(t *testing.T) {
	bus := &ScrollBus{}
	c := NewController()

	c.Mount(bus)
	c.Mount(bus)
	if bus.Len() != 1 {
		t.Fatalf("Expected 1 listener after remount, got %d", bus.Len())
	}

	bus.Publish(120)
	if !c.Scroll().IsPastThreshold {
		t.Error("Expected published offset to reach controller")
	}

	c.Unmount()
	if bus.Len() != 0 {
		t.Fatalf("Expected no listeners after unmount, got %d", bus.Len())
	}
	if c.Mounted() {
		t.Error("Expected controller to report unmounted")
	}

	bus.Publish(0)
	if !c.Scroll().IsPastThreshold {
		t.Error("Expected unmounted controller to ignore scroll")
	}
}

func TestScrollBusUnsubscribeTwice(t *testing.T) {
	bus := &ScrollBus{}
	var a, b int
	unsubA := bus.Subscribe(func(y int) { a = y })
	bus.Subscribe(func(y int) { b = y })

	unsubA()
	unsubA()
	bus.Publish(7)

	if a != 0 {
		t.Errorf("Expected removed listener untouched, got %d", a)
	}
	if b != 7 {
		t.Errorf("Expected remaining listener to get 7, got %d", b)
	}
}
