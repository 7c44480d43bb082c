package prism

import (
	"fmt"
	"sync"
)

// Driver creates render systems for one backend. Drivers register
// themselves in an init function, usually triggered by a blank import
// of their package.
type Driver interface {
	// Name identifies the driver in Open, such as "gl" or "gles".
	Name() string

	// Open creates a render system. OpenGL drivers require a current
	// context on the calling goroutine's locked thread.
	Open() (System, error)
}

var (
	driversMu sync.Mutex
	drivers   []Driver
)

// Register makes a driver selectable by Open. Registering two drivers
// under one name panics.
func Register(d Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	for _, r := range drivers {
		if r.Name() == d.Name() {
			panic(fmt.Sprintf("prism: driver %q registered twice", d.Name()))
		}
	}
	drivers = append(drivers, d)
}

// Drivers returns the registered drivers in registration order.
func Drivers() []Driver {
	driversMu.Lock()
	defer driversMu.Unlock()
	out := make([]Driver, len(drivers))
	copy(out, drivers)
	return out
}

// Open creates a render system from the driver registered under name.
// It returns ErrNoDriver when the name is unknown.
func Open(name string) (System, error) {
	for _, d := range Drivers() {
		if d.Name() == name {
			sys, err := d.Open()
			if err != nil {
				return nil, fmt.Errorf("opening driver %q: %w", name, err)
			}
			Logger().Info("opened render system", "driver", name, "renderer", sys.Caps().Renderer)
			return sys, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoDriver, name)
}
