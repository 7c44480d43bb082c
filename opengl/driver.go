package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// OpenFunc produces an initialized driver API. A context must be
// current on the calling thread when it returns.
type OpenFunc func() (API, Options, error)

type driver struct {
	name string
	open OpenFunc
}

func (d driver) Name() string { return d.name }

func (d driver) Open() (prism.System, error) {
	api, opts, err := d.open()
	if err != nil {
		return nil, fmt.Errorf("initializing %s: %w", d.name, err)
	}
	return NewSystem(d.name, api, opts)
}

// RegisterDriver makes an OpenGL style API available through
// prism.Open under the given name. Adapters call this from init.
func RegisterDriver(name string, open OpenFunc) {
	prism.Register(driver{name: name, open: open})
}
