package prism

// Resource is the base of every object a System creates. Objects stay
// valid until passed to Release or until the system closes.
type Resource interface {
	// Label returns the debug name set with SetLabel, empty otherwise.
	Label() string

	// SetLabel names the object for log output and debugging.
	SetLabel(label string)
}

// Fence orders CPU work after submitted GPU work.
type Fence interface {
	Resource

	// Signal inserts a completion point after all work submitted so
	// far. Signaling again replaces the previous point.
	Signal()

	// Wait blocks until the last signaled point completed or the
	// timeout elapsed, and reports whether it completed. A fence that
	// was never signaled is complete.
	Wait(timeoutNanos uint64) bool
}
