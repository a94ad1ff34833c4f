package model

import "shree/internal/reservation"

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// GalleryImageLoadedMsg is sent when a lightbox image has been fetched and
// rendered. Key, Width and Height are what the request was made for.
type GalleryImageLoadedMsg struct {
	Key    string
	Width  int
	Height int
	Art    string
	Err    error
}

// ReservationStateMsg is sent when the reservation flow changes state.
type ReservationStateMsg struct {
	State reservation.State
}

// LinkCopiedMsg is sent after an outbound link was handed to the clipboard.
type LinkCopiedMsg struct {
	Platform string
	URL      string
}

// Focus represents which interactive region receives keys.
type Focus int

const (
	FocusPage Focus = iota
	FocusGallery
	FocusOrder
	FocusForm
)
