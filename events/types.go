package events

// ChangeEventArgs carries the current value of an input, textarea or select
// for @oninput / @onchange handlers.
type ChangeEventArgs struct {
	Value string
}
