package prism

// RenderPassDescriptor fixes the attachment formats and sample count a
// pipeline or render target is built against.
type RenderPassDescriptor struct {
	Label        string
	ColorFormats []Format
	// DepthStencilFormat of FormatUndefined means no depth-stencil
	// attachment.
	DepthStencilFormat Format
	// Samples of 0 or 1 means single sampling.
	Samples uint32
}

// RenderPass describes an attachment configuration without owning any
// attachment memory. Targets built without one derive it from their
// attachments.
type RenderPass interface {
	Resource

	NumColorFormats() uint32
	ColorFormat(i uint32) Format
	DepthStencilFormat() Format
	Samples() uint32
}
