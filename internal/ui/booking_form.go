package ui

import (
	"errors"
	"strings"

	"shree/internal/reservation"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// bookingFields is the tab order of the form.
var bookingFields = []reservation.Field{
	reservation.FieldName,
	reservation.FieldPhone,
	reservation.FieldDate,
	reservation.FieldSlot,
	reservation.FieldPartySize,
}

const (
	fieldName = iota
	fieldPhone
	fieldDate
	fieldSlot
	fieldParty
)

// BookingFormModel is the table request form. It holds the form handle the
// reservation flow gave out while idle.
type BookingFormModel struct {
	form         *reservation.Form
	focusedField int
	inputs       []textinput.Model
	slot         int
	party        int
	keys         FormKeyMap
	error        string
	errField     reservation.Field
}

// NewBookingFormModel creates an empty form bound to form.
func NewBookingFormModel(form *reservation.Form) *BookingFormModel {
	inputs := make([]textinput.Model, 3)

	// Guest name
	inputs[fieldName] = textinput.New()
	inputs[fieldName].Placeholder = "Enter Name"
	inputs[fieldName].CharLimit = 80

	// Phone
	inputs[fieldPhone] = textinput.New()
	inputs[fieldPhone].Placeholder = "Mobile Number"
	inputs[fieldPhone].CharLimit = 20

	// Date
	inputs[fieldDate] = textinput.New()
	inputs[fieldDate].Placeholder = "June 20, 2025"
	inputs[fieldDate].CharLimit = 32

	return &BookingFormModel{
		form:   form,
		inputs: inputs,
		keys:   DefaultFormKeyMap(),
	}
}

// Focus puts the cursor in the current field.
func (m *BookingFormModel) Focus() tea.Cmd {
	if m.focusedField < len(m.inputs) {
		return m.inputs[m.focusedField].Focus()
	}
	return nil
}

// Blur removes the cursor from every field.
func (m *BookingFormModel) Blur() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// Request returns the values currently entered.
func (m *BookingFormModel) Request() reservation.Request {
	return reservation.Request{
		Name:      strings.TrimSpace(m.inputs[fieldName].Value()),
		Phone:     strings.TrimSpace(m.inputs[fieldPhone].Value()),
		Date:      strings.TrimSpace(m.inputs[fieldDate].Value()),
		Slot:      reservation.Slots()[m.slot],
		PartySize: reservation.PartySizes()[m.party],
	}
}

// Submit hands the entered request to the flow. A validation failure is kept
// on the form and moves the cursor to the offending field.
func (m *BookingFormModel) Submit() (reservation.State, error) {
	state, err := m.form.Submit(m.Request())
	var verr *reservation.ValidationError
	if errors.As(err, &verr) {
		m.error = verr.Error()
		m.errField = verr.Field
		m.focusField(fieldIndex(verr.Field))
		return state, err
	}
	m.error = ""
	m.errField = ""
	return state, err
}

// LastField reports whether the cursor is on the final field.
func (m *BookingFormModel) LastField() bool {
	return m.focusedField == len(bookingFields)-1
}

// Update handles field navigation and typing. Saving and leaving the form
// are handled by the page.
func (m BookingFormModel) Update(msg tea.KeyMsg) (BookingFormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		m.nextField()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.prevField()
		return m, nil
	}

	switch m.focusedField {
	case fieldSlot:
		m.slot = cycleOption(m.slot, len(reservation.Slots()), msg, m.keys)
		return m, nil
	case fieldParty:
		m.party = cycleOption(m.party, len(reservation.PartySizes()), msg, m.keys)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	if bookingFields[m.focusedField] == m.errField {
		m.error = ""
		m.errField = ""
	}
	return m, cmd
}

func cycleOption(current, n int, msg tea.KeyMsg, keys FormKeyMap) int {
	switch {
	case key.Matches(msg, keys.NextValue), msg.String() == " ":
		return (current + 1) % n
	case key.Matches(msg, keys.PrevValue):
		return (current - 1 + n) % n
	}
	return current
}

// View renders the form.
func (m *BookingFormModel) View(width int) string {
	var fields []string

	fields = append(fields, m.renderInput(fieldName))
	fields = append(fields, m.renderInput(fieldPhone))
	fields = append(fields, m.renderInput(fieldDate))
	fields = append(fields, m.renderOptions(fieldSlot, reservation.Slots(), m.slot))
	fields = append(fields, m.renderOptions(fieldParty, reservation.PartySizes(), m.party))

	if m.error != "" {
		fields = append(fields, ErrorStyle.Render("Error: "+m.error))
	}
	fields = append(fields, HelpDescStyle.Render("ctrl+s to request a table, esc to leave the form"))

	return lipgloss.NewStyle().Width(width).Render(strings.Join(fields, "\n"))
}

func (m *BookingFormModel) renderInput(i int) string {
	return renderFormField(bookingFields[i].Label(), m.inputs[i].View(), m.focusedField == i, m.errField == bookingFields[i])
}

func (m *BookingFormModel) renderOptions(i int, options []string, selected int) string {
	parts := make([]string, len(options))
	for j, opt := range options {
		if j == selected {
			parts[j] = LabelStyle.Render("(•) " + opt)
		} else {
			parts[j] = HelpDescStyle.Render("( ) " + opt)
		}
	}
	return renderFormField(bookingFields[i].Label(), strings.Join(parts, "  "), m.focusedField == i, m.errField == bookingFields[i])
}

func (m *BookingFormModel) nextField() {
	m.focusField((m.focusedField + 1) % len(bookingFields))
}

func (m *BookingFormModel) prevField() {
	next := m.focusedField - 1
	if next < 0 {
		next = len(bookingFields) - 1
	}
	m.focusField(next)
}

func (m *BookingFormModel) focusField(i int) {
	if i < 0 {
		return
	}
	m.Blur()
	m.focusedField = i
	if i < len(m.inputs) {
		m.inputs[i].Focus()
	}
}

func fieldIndex(f reservation.Field) int {
	for i, bf := range bookingFields {
		if bf == f {
			return i
		}
	}
	return -1
}

func renderFormField(label, value string, focused, invalid bool) string {
	style := BorderStyle
	switch {
	case invalid:
		style = ErrorBorderStyle
	case focused:
		style = ActiveBorderStyle
	}

	field := lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render(label),
		value,
	)

	return style.Render(field)
}
