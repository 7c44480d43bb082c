package prism

// SwapChainDescriptor describes presentation to a surface.
type SwapChainDescriptor struct {
	Label string
	// Resolution of the backbuffer. Zero takes the surface size.
	Resolution Extent2D
	// Samples requests a multisampled backbuffer where the context
	// provides one. Purely informational for drivers that cannot
	// change the backbuffer after context creation.
	Samples uint32
}

// SwapChain is the render target backed by a surface's backbuffer.
type SwapChain interface {
	RenderTarget

	// Present shows the current backbuffer.
	Present() error

	// Resize adjusts the recorded backbuffer resolution after the
	// surface changed size.
	Resize(resolution Extent2D) error

	// Surface returns the surface the swap chain presents to.
	Surface() Surface
}
