package resource

import "fmt"

// Status is the lifecycle stage of a request.
type Status int

const (
	// StatusIdle means no request key is set.
	StatusIdle Status = iota
	// StatusPending means a request for the current key is in flight.
	StatusPending
	// StatusResolved means the request completed with data.
	StatusResolved
	// StatusRejected means the request failed.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Settled reports whether s is a final status for the current key.
func (s Status) Settled() bool {
	return s == StatusResolved || s == StatusRejected
}

// State is the observable state of a Resource. Data is only meaningful when
// Status is StatusResolved and Err is only non-nil when Status is
// StatusRejected; the constructors below are the only way to build one.
type State[T any] struct {
	Status Status
	// Key is the request key the state belongs to. Empty when idle.
	Key  string
	Data T
	Err  error
}

// Idle returns the idle state.
func Idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

// Pending returns the state of an in-flight request for key.
func Pending[T any](key string) State[T] {
	return State[T]{Status: StatusPending, Key: key}
}

// Resolved returns the state of a request for key that completed with data.
func Resolved[T any](key string, data T) State[T] {
	return State[T]{Status: StatusResolved, Key: key, Data: data}
}

// Rejected returns the state of a request for key that failed with err.
func Rejected[T any](key string, err error) State[T] {
	return State[T]{Status: StatusRejected, Key: key, Err: err}
}
