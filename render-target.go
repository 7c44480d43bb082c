package prism

// AttachmentRole states what an attachment is used for.
type AttachmentRole uint8

const (
	// RoleColor is a render output. Color slots are assigned in
	// declaration order, starting at zero.
	RoleColor AttachmentRole = iota

	// RoleResolve receives the single-sampled resolve of the color
	// slot named by AttachmentDescriptor.Slot.
	RoleResolve

	RoleDepth
	RoleStencil
	RoleDepthStencil
)

func (r AttachmentRole) String() string {
	switch r {
	case RoleColor:
		return "color"
	case RoleResolve:
		return "resolve"
	case RoleDepth:
		return "depth"
	case RoleStencil:
		return "stencil"
	case RoleDepthStencil:
		return "depth-stencil"
	}
	return "unknown"
}

// AttachmentDescriptor is one attachment of a render target.
//
// With a Texture the attachment renders into (or resolves into) the
// selected mip level and layer of that texture. Without one the target
// allocates an internal renderbuffer of Format, which is the usual way
// to add a depth buffer that is never sampled.
type AttachmentDescriptor struct {
	Role AttachmentRole

	// Slot is the color slot a RoleResolve attachment reads from.
	// Ignored for every other role.
	Slot uint32

	Texture Texture

	// Format of the internal renderbuffer when Texture is nil,
	// ignored otherwise.
	Format Format

	// MipLevel selects the texture mip level rendered into. The level
	// must match the target resolution.
	MipLevel uint32

	// ArrayLayer selects the layer of array and cube textures and the
	// depth slice of 3D textures.
	ArrayLayer uint32
}

// RenderTargetDescriptor describes an off-screen render target.
//
// With Samples > 1 every color attachment renders multisampled. A
// non-multisampled color texture cannot be rendered into directly in
// that case: the target allocates a multisampled renderbuffer for the
// slot and downsamples into the texture when the target is resolved.
// An explicit RoleResolve attachment for the same slot takes the
// texture's place as the resolve destination.
type RenderTargetDescriptor struct {
	Label string

	// Resolution every attachment must match at its selected mip
	// level.
	Resolution Extent2D

	// Samples per pixel. Zero and one request single sampling; higher
	// values are clamped to the device limit.
	Samples uint32

	// Attachments in declaration order. Color slots count up from
	// zero; at most one depth, stencil or depth-stencil attachment is
	// allowed.
	Attachments []AttachmentDescriptor

	// RenderPass overrides the pass derived from the attachments.
	// Optional.
	RenderPass RenderPass
}

// RenderTarget renders into a set of attachments instead of the
// screen.
type RenderTarget interface {
	Resource

	Resolution() Extent2D
	Samples() uint32

	NumColorAttachments() uint32
	HasDepthAttachment() bool
	HasStencilAttachment() bool

	// RenderPass returns the pass the target was built against, or a
	// derived one.
	RenderPass() RenderPass
}
