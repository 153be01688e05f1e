package runtime

// Effect runs a side effect when its dependency value changes. Components
// keep one Effect per dependency and call Run from OnAfterRender:
//
//	func (c *Greeting) OnAfterRender(bool) {
//		c.nameEffect.Run(c.Name, c.persistName)
//	}
//
// The first Run always fires. The zero value is ready to use.
type Effect[T comparable] struct {
	deps T
	ran  bool
	runs int
}

// Run calls fn if deps differs from the value seen by the previous run, or if
// the effect has never run. It reports whether fn was called.
func (e *Effect[T]) Run(deps T, fn func()) bool {
	if e.ran && e.deps == deps {
		return false
	}
	e.deps = deps
	e.ran = true
	e.runs++
	fn()
	return true
}

// Runs returns how many times the effect has fired.
func (e *Effect[T]) Runs() int {
	return e.runs
}

// Reset forgets the last dependency value, so the next Run fires.
func (e *Effect[T]) Reset() {
	var zero T
	e.deps = zero
	e.ran = false
}
