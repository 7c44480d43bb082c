package opengl

import "github.com/oliverbestmann/prism"

// Fence wraps a driver sync object. The sync point is created by
// Signal, not at fence creation.
type Fence struct {
	sys    *System
	handle Handle
	label  string

	sync uintptr
}

var _ prism.Fence = (*Fence)(nil)

func newFence(sys *System) *Fence {
	return &Fence{sys: sys}
}

// Signal places a completion point after all submitted work,
// replacing any previous one.
func (f *Fence) Signal() {
	api := f.sys.api
	if f.sync != 0 {
		api.DeleteSync(f.sync)
	}
	f.sync = api.FenceSync()
}

// Wait blocks until the signaled point completed or the timeout
// elapsed. A fence that was never signaled is complete.
func (f *Fence) Wait(timeoutNanos uint64) bool {
	if f.sync == 0 {
		return true
	}
	status := f.sys.api.ClientWaitSync(f.sync, glSyncFlushCommandsBit, timeoutNanos)
	return status == glAlreadySignaled || status == glConditionSatisfied
}

func (f *Fence) release(api API) {
	if f.sync != 0 {
		api.DeleteSync(f.sync)
		f.sync = 0
	}
}

func (f *Fence) Label() string         { return f.label }
func (f *Fence) SetLabel(label string) { f.label = label }
