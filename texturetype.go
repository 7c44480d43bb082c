package prism

//go:generate go tool stringer -type=TextureType -output texturetype_string.go

// TextureType is the dimensionality of a texture. The zero value is
// Texture2D.
type TextureType uint8

const (
	Texture2D TextureType = iota
	Texture2DArray
	Texture2DMS
	Texture2DMSArray
	TextureCube
	TextureCubeArray
	Texture3D
	Texture1D
	Texture1DArray
)

// IsArray reports whether the type addresses its images by layer.
func (t TextureType) IsArray() bool {
	switch t {
	case Texture1DArray, Texture2DArray, Texture2DMSArray, TextureCubeArray:
		return true
	}
	return false
}

// IsMultisampled reports whether the type stores multiple samples per
// texel.
func (t TextureType) IsMultisampled() bool {
	return t == Texture2DMS || t == Texture2DMSArray
}

// IsCube reports whether the type is a cube map.
func (t TextureType) IsCube() bool {
	return t == TextureCube || t == TextureCubeArray
}
