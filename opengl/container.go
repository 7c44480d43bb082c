package opengl

import (
	"fmt"
	"sync"

	"github.com/oliverbestmann/prism"
)

// Handle identifies an object inside its container. Handles count up
// from one and are never reused within a system's lifetime.
type Handle uint64

// container owns every live object of one kind. Objects enter when
// created, leave exactly once when released, and whatever is left is
// swept when the system closes.
//
// Containers are safe for concurrent use.
type container[T any] struct {
	kind string

	mu   sync.RWMutex
	next Handle
	live map[Handle]*T
}

func newContainer[T any](kind string) *container[T] {
	return &container[T]{kind: kind, live: make(map[Handle]*T)}
}

// insert stores obj and returns its new handle.
func (c *container[T]) insert(obj *T) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	c.live[c.next] = obj
	return c.next
}

// get returns the object for h, or nil when h was already released.
// In debug mode a released handle panics instead.
func (c *container[T]) get(h Handle) *T {
	c.mu.RLock()
	obj := c.live[h]
	c.mu.RUnlock()
	if obj == nil && prism.Debug() {
		panic(fmt.Sprintf("opengl: use of released %s handle %d", c.kind, h))
	}
	return obj
}

// take removes h and returns its object, or nil when h was already
// released. In debug mode a double release panics.
func (c *container[T]) take(h Handle) *T {
	c.mu.Lock()
	obj := c.live[h]
	delete(c.live, h)
	c.mu.Unlock()
	if obj == nil && prism.Debug() {
		panic(fmt.Sprintf("opengl: double release of %s handle %d", c.kind, h))
	}
	return obj
}

// len returns the live object count.
func (c *container[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.live)
}

// drain empties the container and calls release for every object that
// was still alive.
func (c *container[T]) drain(release func(*T)) {
	c.mu.Lock()
	objs := c.live
	c.live = make(map[Handle]*T)
	c.mu.Unlock()

	if len(objs) > 0 {
		prism.Logger().Debug("releasing leftover objects", "kind", c.kind, "count", len(objs))
	}
	for _, obj := range objs {
		release(obj)
	}
}
