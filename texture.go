package prism

// TextureDescriptor describes a texture.
type TextureDescriptor struct {
	Label  string
	Type   TextureType
	Format Format
	// Extent is the size of mip level zero. Depth is the layer count
	// for array types and must be 1 (or 0) for non-array 2D types.
	Extent Extent3D
	// MipLevels of 0 allocates the full chain down to 1x1.
	// Multisampled types always have a single level.
	MipLevels uint32
	// Samples per texel for Texture2DMS and Texture2DMSArray.
	// Zero and one mean single sampling.
	Samples uint32
}

// Texture is an image object usable as shader input or as a render
// target attachment.
type Texture interface {
	Resource

	Type() TextureType
	Format() Format

	// Extent returns the size of mip level zero.
	Extent() Extent3D

	// MipExtent returns the size of the given mip level, halving and
	// clamping each dimension. Layer counts do not shrink.
	MipExtent(level uint32) Extent3D

	MipLevels() uint32

	// Layers returns the array layer count, 1 for non-array types.
	Layers() uint32

	// Samples returns the per-texel sample count, 1 unless the type is
	// multisampled.
	Samples() uint32
}
