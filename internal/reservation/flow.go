package reservation

import (
	"errors"
	"sync"
	"time"
)

// RevertAfter is how long the confirmation stays up before the form returns.
const RevertAfter = 5 * time.Second

var (
	// ErrFormClosed means the form handle no longer belongs to an idle flow.
	ErrFormClosed = errors.New("reservation form is not accepting input")
	// ErrFlowClosed means the flow has been torn down.
	ErrFlowClosed = errors.New("reservation flow is closed")
)

// State is the submission state.
type State int

const (
	Idle State = iota
	Confirmed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Confirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Flow runs the submit, confirm, revert cycle. The reversion timer fires on
// its own goroutine with a real clock, so all state is guarded by mu.
type Flow struct {
	mu     sync.Mutex
	clock  Clock
	notify func(State)

	state  State
	gen    uint64
	timer  Timer
	closed bool
}

// NewFlow returns an idle flow. notify, if non-nil, is called after every
// transition, outside the flow's lock.
func NewFlow(clock Clock, notify func(State)) *Flow {
	if clock == nil {
		clock = SystemClock()
	}
	return &Flow{clock: clock, notify: notify}
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Form hands out the input form. There is no form while a confirmation is
// showing or after Close.
func (f *Flow) Form() (*Form, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.state != Idle {
		return nil, false
	}
	return &Form{flow: f, gen: f.gen}, true
}

// Close cancels any pending reversion. The flow accepts nothing afterwards.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// Closed reports whether Close has been called.
func (f *Flow) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Flow) revert(gen uint64) {
	f.mu.Lock()
	if f.closed || f.gen != gen || f.state != Confirmed {
		f.mu.Unlock()
		return
	}
	f.state = Idle
	f.timer = nil
	f.mu.Unlock()

	f.emit(Idle)
}

func (f *Flow) emit(s State) {
	if f.notify != nil {
		f.notify(s)
	}
}

// Form is a handle on one idle period of a flow.
type Form struct {
	flow *Flow
	gen  uint64
}

// Submit validates r and, if it is valid, confirms the reservation and
// schedules the return to Idle. The request is not kept. Validation failures
// are returned as *ValidationError and leave the flow untouched.
func (fm *Form) Submit(r Request) (State, error) {
	f := fm.flow

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return Idle, ErrFlowClosed
	}
	if f.gen != fm.gen || f.state != Idle {
		s := f.state
		f.mu.Unlock()
		return s, ErrFormClosed
	}
	if err := Validate(r); err != nil {
		f.mu.Unlock()
		return Idle, err
	}

	f.state = Confirmed
	f.gen++
	gen := f.gen
	f.timer = f.clock.AfterFunc(RevertAfter, func() { f.revert(gen) })
	f.mu.Unlock()

	f.emit(Confirmed)
	return Confirmed, nil
}
