package prism

// Extent2D is a size in pixels.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// Extent3D is a volume in pixels. Depth doubles as the layer count for
// array textures.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}
