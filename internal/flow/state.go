package flow

import "fmt"

// State is the lifecycle position of a booking attempt.
type State int

const (
	// StateEntry is the initial form-filling state.
	StateEntry State = iota + 1
	// StateSubmitting means a submission is in flight.
	StateSubmitting
	// StateSuccess means the service accepted the booking.
	StateSuccess
	// StateFailed means the submission was rejected; the form can be
	// corrected and resubmitted.
	StateFailed
	// StateConfirmed is the terminal state after the confirmation view.
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateEntry:
		return "entry"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	case StateConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event triggers a lifecycle transition.
type Event int

const (
	// EventSubmit submits the form.
	EventSubmit Event = iota + 1
	// EventAccepted records a successful submission.
	EventAccepted
	// EventRejected records a rejected submission.
	EventRejected
	// EventRedirect moves from the success screen to the confirmation view.
	EventRedirect
)

func (e Event) String() string {
	switch e {
	case EventSubmit:
		return "submit"
	case EventAccepted:
		return "accepted"
	case EventRejected:
		return "rejected"
	case EventRedirect:
		return "redirect"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

var transitions = map[State]map[Event]State{
	StateEntry: {
		EventSubmit: StateSubmitting,
	},
	StateSubmitting: {
		EventAccepted: StateSuccess,
		EventRejected: StateFailed,
	},
	StateSuccess: {
		EventRedirect: StateConfirmed,
	},
	StateFailed: {
		EventSubmit: StateSubmitting,
	},
}

// Transition applies an event to a state. Undefined pairs leave the state
// unchanged and return an error; StateConfirmed is terminal.
func Transition(state State, event Event) (State, error) {
	if next, ok := transitions[state][event]; ok {
		return next, nil
	}

	return state, fmt.Errorf("invalid transition: %s on %s", event, state)
}
