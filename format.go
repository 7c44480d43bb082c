package prism

//go:generate go tool stringer -type=Format -output format_string.go

// Format is the texel format of a texture, renderbuffer or vertex
// stream element.
type Format uint8

const (
	FormatUndefined Format = iota
	FormatR8
	FormatRG8
	FormatRGBA8
	FormatRGBA8SRGB
	FormatBGRA8
	FormatRGB10A2
	FormatRGBA16F
	FormatRGBA32F
	FormatR32F
	FormatD16
	FormatD24S8
	FormatD32F
	FormatD32FS8
	FormatS8
)

// HasDepth reports whether the format carries a depth component.
func (f Format) HasDepth() bool {
	switch f {
	case FormatD16, FormatD24S8, FormatD32F, FormatD32FS8:
		return true
	}
	return false
}

// HasStencil reports whether the format carries a stencil component.
func (f Format) HasStencil() bool {
	switch f {
	case FormatD24S8, FormatD32FS8, FormatS8:
		return true
	}
	return false
}

// IsColor reports whether the format is a color format.
func (f Format) IsColor() bool {
	return f != FormatUndefined && !f.HasDepth() && !f.HasStencil()
}

// Size returns the byte size of one texel, zero for FormatUndefined.
func (f Format) Size() uint32 {
	switch f {
	case FormatR8, FormatS8:
		return 1
	case FormatRG8, FormatD16:
		return 2
	case FormatRGBA8, FormatRGBA8SRGB, FormatBGRA8, FormatRGB10A2, FormatR32F, FormatD24S8, FormatD32F:
		return 4
	case FormatRGBA16F, FormatD32FS8:
		return 8
	case FormatRGBA32F:
		return 16
	}
	return 0
}
