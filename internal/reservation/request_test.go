package reservation

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Request)
		field Field
	}{
		{"valid", func(*Request) {}, ""},
		{"past date accepted", func(r *Request) { r.Date = "January 2, 2001" }, ""},
		{"slash date", func(r *Request) { r.Date = "11/02/2026" }, ""},
		{"plain digits phone", func(r *Request) { r.Phone = "9876543210" }, ""},
		{"dashed phone", func(r *Request) { r.Phone = "(020) 555-0142" }, ""},
		{"bracketed country code", func(r *Request) { r.Phone = "(+91) 98765 43210" }, ""},
		{"international phone", func(r *Request) { r.Phone = "+91 98765 43210" }, ""},
		{"dotted phone", func(r *Request) { r.Phone = "020.555.0142" }, ""},
		{"long phone", func(r *Request) { r.Phone = "+1234567890123456" }, FieldPhone},
		{"leading dash", func(r *Request) { r.Phone = "-5550142999" }, FieldPhone},
		{"missing name", func(r *Request) { r.Name = "" }, FieldName},
		{"missing phone", func(r *Request) { r.Phone = "" }, FieldPhone},
		{"letters in phone", func(r *Request) { r.Phone = "call me" }, FieldPhone},
		{"short phone", func(r *Request) { r.Phone = "12345" }, FieldPhone},
		{"missing date", func(r *Request) { r.Date = " " }, FieldDate},
		{"bad date", func(r *Request) { r.Date = "next friday" }, FieldDate},
		{"impossible date", func(r *Request) { r.Date = "2026-02-30" }, FieldDate},
		{"missing slot", func(r *Request) { r.Slot = "" }, FieldSlot},
		{"unknown slot", func(r *Request) { r.Slot = "Breakfast" }, FieldSlot},
		{"missing party", func(r *Request) { r.PartySize = "" }, FieldPartySize},
		{"unknown party", func(r *Request) { r.PartySize = "12 Guest" }, FieldPartySize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.edit(&r)
			err := Validate(r)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Expected valid, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, verr.Field)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: FieldName, Reason: "is required"}
	if err.Error() != "guest name is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
