package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// framebuffer wraps one driver framebuffer object.
type framebuffer struct {
	id uint32
}

func (fb *framebuffer) valid() bool {
	return fb.id != 0
}

func (fb *framebuffer) create(api API) {
	fb.id = api.GenFramebuffer()
}

func (fb *framebuffer) release(api API, st *StateManager) {
	if fb.id == 0 {
		return
	}
	api.DeleteFramebuffer(fb.id)
	st.NotifyFramebufferReleased(fb.id)
	fb.id = 0
}

// attachTexture attaches one mip level and layer of tex to the bound
// framebuffer, dispatching on the texture's dimensionality.
func (fb *framebuffer) attachTexture(api API, attachment uint32, tex *Texture, level, layer int32) error {
	switch tex.glTarget {
	case glTexture1D:
		t1d, ok := api.(APITexture1D)
		if !ok {
			return fmt.Errorf("1D texture attachment: %w", prism.ErrUnsupported)
		}
		t1d.FramebufferTexture1D(glFramebuffer, attachment, glTexture1D, tex.id, level)
	case glTexture2D, glTexture2DMultisample:
		api.FramebufferTexture2D(glFramebuffer, attachment, tex.glTarget, tex.id, level)
	case glTextureCubeMap:
		api.FramebufferTexture2D(glFramebuffer, attachment, cubeFaceTarget(layer), tex.id, level)
	default:
		// Array, cube array and 3D textures attach by layer.
		api.FramebufferTextureLayer(glFramebuffer, attachment, tex.id, level, layer)
	}
	return nil
}

func cubeFaceTarget(face int32) uint32 {
	return glTextureCubeMapPositiveX + uint32(face%6)
}

// status returns nil when the bound framebuffer is complete and a
// prism.ErrRenderTargetIncomplete otherwise.
func framebufferStatus(api API, what string) error {
	status := api.CheckFramebufferStatus(glFramebuffer)
	if status == glFramebufferComplete {
		return nil
	}
	return fmt.Errorf("%s: %s: %w", what, framebufferStatusName(status), prism.ErrRenderTargetIncomplete)
}

func framebufferStatusName(status uint32) string {
	switch status {
	case glFramebufferIncompleteAttachment:
		return "incomplete attachment"
	case glFramebufferIncompleteMissingAttachment:
		return "missing attachment"
	case glFramebufferUnsupported:
		return "unsupported attachment combination"
	case glFramebufferIncompleteMultisample:
		return "inconsistent sample counts"
	}
	return fmt.Sprintf("status 0x%04X", status)
}

// blit copies the full extent between the bound read and draw
// framebuffers without scaling.
func blitFramebuffer(api API, extent prism.Extent2D, mask uint32) {
	w, h := int32(extent.Width), int32(extent.Height)
	api.BlitFramebuffer(0, 0, w, h, 0, 0, w, h, mask, glNearest)
}
