package gallery

// Rect is a cell-aligned rectangle; Max is exclusive.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// ClickAt handles a press inside the full-screen overlay. A press on the
// backdrop closes the viewer; a press on the shown item is swallowed.
// It returns true when the click closed the viewer.
func (v *Viewer) ClickAt(x, y int, item Rect) bool {
	if !v.open {
		return false
	}
	if item.Contains(x, y) {
		return false
	}
	v.Close()
	return true
}
