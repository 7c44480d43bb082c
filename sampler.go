package prism

// Filter selects texel filtering.
type Filter uint8

const (
	FilterLinear Filter = iota
	FilterNearest
)

// WrapMode selects how coordinates outside [0,1] sample.
type WrapMode uint8

const (
	WrapRepeat WrapMode = iota
	WrapClampToEdge
	WrapMirror
)

// SamplerDescriptor describes a sampler. The zero value is a repeating
// trilinear sampler.
type SamplerDescriptor struct {
	Label     string
	MinFilter Filter
	MagFilter Filter
	// MipFilter blends between mip levels. Ignored when Mipmaps is
	// false.
	MipFilter Filter
	// Mipmaps enables sampling across the mip chain.
	Mipmaps bool
	WrapU   WrapMode
	WrapV   WrapMode
	WrapW   WrapMode
	MinLOD  float32
	// MaxLOD of 0 means no upper clamp.
	MaxLOD float32
	// Anisotropy above 1 enables anisotropic filtering where the
	// device supports it, clamped to the device maximum.
	Anisotropy uint32
}

// Sampler controls how textures are filtered and addressed.
type Sampler interface {
	Resource
}
