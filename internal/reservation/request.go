package reservation

import (
	"fmt"
	"regexp"
	"strings"

	"shree/internal/util"
)

// Field names a form input.
type Field string

const (
	FieldName      Field = "name"
	FieldPhone     Field = "phone"
	FieldDate      Field = "date"
	FieldSlot      Field = "slot"
	FieldPartySize Field = "party_size"
)

// Label returns the form label for f.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Guest Name"
	case FieldPhone:
		return "Contact No."
	case FieldDate:
		return "Date"
	case FieldSlot:
		return "Time"
	case FieldPartySize:
		return "Guests"
	default:
		return string(f)
	}
}

// Request is what the booking form collects. It is never stored.
type Request struct {
	Name      string
	Phone     string
	Date      string
	Slot      string
	PartySize string
}

// ValidationError describes the first invalid field of a request.
type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", strings.ToLower(e.Field.Label()), e.Reason)
}

// Slots lists the bookable time slots.
func Slots() []string {
	return []string{"Lunch (12:30 PM)", "Dinner (07:30 PM)", "Late Night (09:30 PM)"}
}

// PartySizes lists the bookable party sizes.
func PartySizes() []string {
	return []string{"2 Guest", "4 Guest", "6+ Guest"}
}

var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ()+\-.]*$`)

// Validate checks presence and shape of every field. It does not reject
// past dates.
func Validate(r Request) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return &ValidationError{Field: FieldName, Reason: "is required"}
	}

	phone := strings.TrimSpace(r.Phone)
	if phone == "" {
		return &ValidationError{Field: FieldPhone, Reason: "is required"}
	}
	if !isPhoneShaped(phone) {
		return &ValidationError{Field: FieldPhone, Reason: "must look like a phone number"}
	}

	if strings.TrimSpace(r.Date) == "" {
		return &ValidationError{Field: FieldDate, Reason: "is required"}
	}
	if _, err := util.ParseDateInput(r.Date); err != nil {
		return &ValidationError{Field: FieldDate, Reason: "must be a calendar date (e.g. June 20, 2025)"}
	}

	if strings.TrimSpace(r.Slot) == "" {
		return &ValidationError{Field: FieldSlot, Reason: "is required"}
	}
	if !contains(Slots(), r.Slot) {
		return &ValidationError{Field: FieldSlot, Reason: "is not an available slot"}
	}

	if strings.TrimSpace(r.PartySize) == "" {
		return &ValidationError{Field: FieldPartySize, Reason: "is required"}
	}
	if !contains(PartySizes(), r.PartySize) {
		return &ValidationError{Field: FieldPartySize, Reason: "is not an available party size"}
	}

	return nil
}

func isPhoneShaped(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
