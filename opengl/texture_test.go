package opengl

import (
	"testing"

	"github.com/oliverbestmann/prism"
	"github.com/stretchr/testify/require"
)

func TestTextureFullMipChain(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	tex := mkTexture(t, sys, prism.TextureDescriptor{
		Type:   prism.Texture2D,
		Format: prism.FormatRGBA8,
		Extent: prism.Extent3D{Width: 256, Height: 64},
	})
	require.Equal(t, uint32(9), tex.MipLevels())

	// The mip range is limited to the levels the texture has.
	var maxLevel *fakeParam
	for i := range f.texParams {
		if f.texParams[i].pname == glTextureMaxLevel {
			maxLevel = &f.texParams[i]
		}
	}
	require.NotNil(t, maxLevel)
	require.Equal(t, int32(8), maxLevel.vi)
}

func TestTextureGeneratesMipmapsOnlyWithData(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	mkTexture(t, sys, prism.TextureDescriptor{
		Type:   prism.Texture2D,
		Format: prism.FormatRGBA8,
		Extent: prism.Extent3D{Width: 16, Height: 16},
	})
	require.Equal(t, 0, f.calls["GenerateMipmap"])

	data := make([]byte, 16*16*4)
	_, err := sys.CreateTexture(prism.TextureDescriptor{
		Type:   prism.Texture2D,
		Format: prism.FormatRGBA8,
		Extent: prism.Extent3D{Width: 16, Height: 16},
	}, data)
	require.NoError(t, err)
	require.Equal(t, 1, f.calls["GenerateMipmap"])

	// A single-level texture has nothing to generate.
	_, err = sys.CreateTexture(prism.TextureDescriptor{
		Type:      prism.Texture2D,
		Format:    prism.FormatRGBA8,
		Extent:    prism.Extent3D{Width: 16, Height: 16},
		MipLevels: 1,
	}, data)
	require.NoError(t, err)
	require.Equal(t, 1, f.calls["GenerateMipmap"])
}

func TestTextureMipExtent(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	tex := mkTexture(t, sys, prism.TextureDescriptor{
		Type:   prism.Texture2D,
		Format: prism.FormatRGBA8,
		Extent: prism.Extent3D{Width: 256, Height: 64},
	})

	require.Equal(t, prism.Extent3D{Width: 128, Height: 32, Depth: 1}, tex.MipExtent(1))
	require.Equal(t, prism.Extent3D{Width: 4, Height: 1, Depth: 1}, tex.MipExtent(6))
	require.Equal(t, prism.Extent3D{Width: 1, Height: 1, Depth: 1}, tex.MipExtent(8))

	vol := mkTexture(t, sys, prism.TextureDescriptor{
		Type:      prism.Texture3D,
		Format:    prism.FormatRGBA8,
		Extent:    prism.Extent3D{Width: 32, Height: 32, Depth: 8},
		MipLevels: 1,
	})
	require.Equal(t, prism.Extent3D{Width: 16, Height: 16, Depth: 4}, vol.MipExtent(1))
}

func TestCubeTextureUploadsSixFaces(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	tex := mkTexture(t, sys, prism.TextureDescriptor{
		Type:      prism.TextureCube,
		Format:    prism.FormatRGBA8,
		Extent:    prism.Extent3D{Width: 32, Height: 32},
		MipLevels: 1,
	})
	require.Equal(t, uint32(6), tex.Layers())

	images := f.texImages[tex.id]
	require.Len(t, images, 6)
	for face, img := range images {
		require.Equal(t, glTextureCubeMapPositiveX+uint32(face), img.target)
	}
}

func TestTextureRejectsShortData(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	_, err := sys.CreateTexture(prism.TextureDescriptor{
		Type:      prism.Texture2D,
		Format:    prism.FormatRGBA8,
		Extent:    prism.Extent3D{Width: 16, Height: 16},
		MipLevels: 1,
	}, make([]byte, 16))
	require.ErrorContains(t, err, "texture data too short")

	// The driver object does not leak.
	require.Empty(t, f.textures)
}

func TestMultisampledTextureSkipsSamplingState(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	before := len(f.texParams)
	tex := mkTexture(t, sys, prism.TextureDescriptor{
		Type:    prism.Texture2DMS,
		Format:  prism.FormatRGBA8,
		Extent:  prism.Extent3D{Width: 32, Height: 32},
		Samples: 4,
	})
	require.Equal(t, uint32(4), tex.Samples())
	require.Equal(t, uint32(1), tex.MipLevels())
	require.Len(t, f.texParams, before)

	images := f.texImages[tex.id]
	require.Len(t, images, 1)
	require.Equal(t, int32(4), images[0].samples)
}

func TestTexture1DNeedsDriverSupport(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	_, err := sys.CreateTexture(prism.TextureDescriptor{
		Type:      prism.Texture1D,
		Format:    prism.FormatR8,
		Extent:    prism.Extent3D{Width: 16},
		MipLevels: 1,
	}, nil)
	require.ErrorIs(t, err, prism.ErrUnsupported)

	desktop := testSystem(t, fakeDesktop{newFakeAPI()}, Options{})
	tex := mkTexture(t, desktop, prism.TextureDescriptor{
		Type:      prism.Texture1D,
		Format:    prism.FormatR8,
		Extent:    prism.Extent3D{Width: 16},
		MipLevels: 1,
	})
	require.Equal(t, prism.Extent3D{Width: 16, Height: 1, Depth: 1}, tex.Extent())
}

func TestMultisampledArrayNeedsDriverSupport(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	_, err := sys.CreateTexture(prism.TextureDescriptor{
		Type:    prism.Texture2DMSArray,
		Format:  prism.FormatRGBA8,
		Extent:  prism.Extent3D{Width: 16, Height: 16, Depth: 4},
		Samples: 4,
	}, nil)
	require.ErrorIs(t, err, prism.ErrUnsupported)
	require.Empty(t, f.textures)

	d := fakeDesktop{newFakeAPI()}
	desktop := testSystem(t, d, Options{})
	tex := mkTexture(t, desktop, prism.TextureDescriptor{
		Type:    prism.Texture2DMSArray,
		Format:  prism.FormatRGBA8,
		Extent:  prism.Extent3D{Width: 16, Height: 16, Depth: 4},
		Samples: 4,
	})
	require.Equal(t, uint32(4), tex.Layers())

	images := d.texImages[tex.id]
	require.Len(t, images, 1)
	require.Equal(t, int32(4), images[0].depth)
	require.Equal(t, int32(4), images[0].samples)
}

func TestTextureClampsSamples(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	tex := mkTexture(t, sys, prism.TextureDescriptor{
		Type:    prism.Texture2DMS,
		Format:  prism.FormatRGBA8,
		Extent:  prism.Extent3D{Width: 32, Height: 32},
		Samples: 64,
	})
	require.Equal(t, uint32(8), tex.Samples())
}

func TestArrayTextureLayers(t *testing.T) {
	f := newFakeAPI()
	sys := testSystem(t, f, Options{})

	tex := mkTexture(t, sys, prism.TextureDescriptor{
		Type:      prism.Texture2DArray,
		Format:    prism.FormatRGBA8,
		Extent:    prism.Extent3D{Width: 16, Height: 16, Depth: 12},
		MipLevels: 1,
	})
	require.Equal(t, uint32(12), tex.Layers())

	images := f.texImages[tex.id]
	require.Len(t, images, 1)
	require.Equal(t, int32(12), images[0].depth)

	// Non-array types have exactly one layer regardless of depth.
	flat := mkTexture2D(t, sys, prism.FormatRGBA8, 16, 16)
	require.Equal(t, uint32(1), flat.Layers())
}
