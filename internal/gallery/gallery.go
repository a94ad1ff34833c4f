package gallery

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange means Open was called with an index outside the catalog.
	ErrOutOfRange = errors.New("gallery index out of range")
	// ErrEmptyCatalog means a catalog was built with no items.
	ErrEmptyCatalog = errors.New("gallery catalog is empty")
)

// Item is one photo in the catalog.
type Item struct {
	URL   string
	Title string
}

// Catalog is a fixed, ordered list of items. The zero value is not usable.
type Catalog struct {
	items []Item
}

// NewCatalog copies items into a catalog.
func NewCatalog(items []Item) (Catalog, error) {
	if len(items) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	cp := make([]Item, len(items))
	copy(cp, items)
	return Catalog{items: cp}, nil
}

// Len returns the number of items.
func (c Catalog) Len() int { return len(c.items) }

// At returns item i. It panics if i is out of range, like a slice index.
func (c Catalog) At(i int) Item { return c.items[i] }

// Items returns a copy of the catalog contents.
func (c Catalog) Items() []Item {
	cp := make([]Item, len(c.items))
	copy(cp, c.items)
	return cp
}

// Viewer tracks which item, if any, is shown full-screen.
type Viewer struct {
	catalog Catalog
	active  int
	open    bool
}

// NewViewer returns a closed viewer over catalog.
func NewViewer(catalog Catalog) *Viewer {
	return &Viewer{catalog: catalog}
}

// Catalog returns the catalog the viewer browses.
func (v *Viewer) Catalog() Catalog { return v.catalog }

// Open shows item index.
func (v *Viewer) Open(index int) error {
	if index < 0 || index >= v.catalog.Len() {
		return fmt.Errorf("open %d of %d: %w", index, v.catalog.Len(), ErrOutOfRange)
	}
	v.active = index
	v.open = true
	return nil
}

// Close hides the viewer. Closing a closed viewer does nothing.
func (v *Viewer) Close() {
	v.open = false
	v.active = 0
}

// Next advances one item, wrapping from the last item to the first.
func (v *Viewer) Next() {
	if !v.open {
		return
	}
	v.active = (v.active + 1) % v.catalog.Len()
}

// Previous steps back one item, wrapping from the first item to the last.
func (v *Viewer) Previous() {
	if !v.open {
		return
	}
	n := v.catalog.Len()
	v.active = (v.active - 1 + n) % n
}

// Active returns the shown index and whether the viewer is open.
func (v *Viewer) Active() (int, bool) {
	return v.active, v.open
}

// IsOpen reports whether an item is shown.
func (v *Viewer) IsOpen() bool { return v.open }

// Current returns the shown item.
func (v *Viewer) Current() (Item, bool) {
	if !v.open {
		return Item{}, false
	}
	return v.catalog.At(v.active), true
}

// Position renders the "i of N" indicator, or "" when closed.
func (v *Viewer) Position() string {
	if !v.open {
		return ""
	}
	return fmt.Sprintf("%d of %d", v.active+1, v.catalog.Len())
}

// Key identifies the shown content. Anything cached per displayed item must
// be keyed on it so that a new index never shows the previous item's state.
func (v *Viewer) Key() string {
	if !v.open {
		return ""
	}
	return fmt.Sprintf("item-%d", v.active)
}
