package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// renderbuffer wraps one driver renderbuffer object.
type renderbuffer struct {
	id uint32
}

func (rb *renderbuffer) valid() bool {
	return rb.id != 0
}

func (rb *renderbuffer) create(api API) {
	rb.id = api.GenRenderbuffer()
}

// storage allocates the renderbuffer memory. Allocation failures
// surface as prism.ErrResourceExhausted.
func (rb *renderbuffer) storage(api API, st *StateManager, internalFormat uint32, extent prism.Extent2D, samples uint32) error {
	st.BindRenderbuffer(rb.id)
	if samples > 1 {
		api.RenderbufferStorageMultisample(int32(samples), internalFormat, int32(extent.Width), int32(extent.Height))
	} else {
		api.RenderbufferStorage(internalFormat, int32(extent.Width), int32(extent.Height))
	}
	if err := checkError(api, "renderbuffer storage"); err != nil {
		return fmt.Errorf("allocating %dx%d renderbuffer: %w", extent.Width, extent.Height, err)
	}
	return nil
}

func (rb *renderbuffer) release(api API, st *StateManager) {
	if rb.id == 0 {
		return
	}
	api.DeleteRenderbuffer(rb.id)
	st.NotifyRenderbufferReleased(rb.id)
	rb.id = 0
}
