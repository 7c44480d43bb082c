package prism

import "errors"

// Errors returned by render systems. Backends wrap these with detail,
// match with errors.Is.
var (
	// ErrInvalidAttachmentType indicates a texture whose type cannot
	// serve the requested attachment role, such as a 1D texture bound
	// as depth-stencil.
	ErrInvalidAttachmentType = errors.New("prism: texture type not valid for attachment role")

	// ErrRenderTargetIncomplete indicates the driver rejected the
	// assembled attachment set.
	ErrRenderTargetIncomplete = errors.New("prism: render target incomplete")

	// ErrIndexOutOfRange indicates an attachment or binding index
	// beyond what the object holds.
	ErrIndexOutOfRange = errors.New("prism: index out of range")

	// ErrResourceExhausted indicates the device ran out of memory
	// while creating an object.
	ErrResourceExhausted = errors.New("prism: device memory exhausted")

	// ErrNoDriver is returned by Open when no registered driver
	// matches the requested name.
	ErrNoDriver = errors.New("prism: no such driver")

	// ErrUnsupported indicates a feature the opened driver cannot
	// provide, see Caps.
	ErrUnsupported = errors.New("prism: not supported by driver")
)
