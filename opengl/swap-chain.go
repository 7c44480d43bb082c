package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// SwapChain is the render target backed by the context's default
// framebuffer. The surface, context and backbuffer configuration are
// the application's, the swap chain only presents and tracks size.
type SwapChain struct {
	sys    *System
	handle Handle
	label  string

	surface    prism.Surface
	resolution prism.Extent2D
	samples    uint32
	renderPass *RenderPass
}

var _ prism.SwapChain = (*SwapChain)(nil)

func newSwapChain(sys *System, desc prism.SwapChainDescriptor, surface prism.Surface) (*SwapChain, error) {
	if surface == nil {
		return nil, fmt.Errorf("swap chain needs a surface")
	}
	resolution := desc.Resolution
	if resolution.Width == 0 || resolution.Height == 0 {
		w, h := surface.FramebufferSize()
		resolution = prism.Extent2D{Width: uint32(w), Height: uint32(h)}
	}
	samples := max(desc.Samples, 1)
	return &SwapChain{
		sys:        sys,
		label:      desc.Label,
		surface:    surface,
		resolution: resolution,
		samples:    samples,
		renderPass: &RenderPass{
			colorFormats:       []prism.Format{prism.FormatRGBA8},
			depthStencilFormat: prism.FormatD24S8,
			samples:            samples,
		},
	}, nil
}

// Present shows the backbuffer.
func (sc *SwapChain) Present() error {
	sc.sys.activeSwapChain = sc
	sc.surface.SwapBuffers()
	if err := checkError(sc.sys.api, "present"); err != nil {
		return err
	}
	return nil
}

// Resize records the new backbuffer size after the surface changed.
func (sc *SwapChain) Resize(resolution prism.Extent2D) error {
	if resolution.Width == 0 || resolution.Height == 0 {
		return fmt.Errorf("swap chain resolution %dx%d is empty", resolution.Width, resolution.Height)
	}
	sc.resolution = resolution
	return nil
}

func (sc *SwapChain) Surface() prism.Surface { return sc.surface }

func (sc *SwapChain) Label() string         { return sc.label }
func (sc *SwapChain) SetLabel(label string) { sc.label = label }

func (sc *SwapChain) Resolution() prism.Extent2D { return sc.resolution }
func (sc *SwapChain) Samples() uint32            { return sc.samples }

// The default framebuffer presents one color buffer and, with the
// usual context configuration, a combined depth-stencil buffer.
func (sc *SwapChain) NumColorAttachments() uint32 { return 1 }
func (sc *SwapChain) HasDepthAttachment() bool    { return true }
func (sc *SwapChain) HasStencilAttachment() bool  { return true }

func (sc *SwapChain) RenderPass() prism.RenderPass { return sc.renderPass }
