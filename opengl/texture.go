package opengl

import (
	"fmt"
	"math/bits"

	"github.com/oliverbestmann/prism"
)

// APIMultisampleArray is the optional multisampled array texture
// extension of an API. Desktop drivers implement it, GLES 3.1 does
// not.
type APIMultisampleArray interface {
	TexImage3DMultisample(target uint32, samples int32, internalFormat uint32, width, height, depth int32, fixedLocations bool)
}

// Texture is an image object in device memory.
type Texture struct {
	sys    *System
	handle Handle
	label  string

	id       uint32
	glTarget uint32

	typ     prism.TextureType
	format  prism.Format
	extent  prism.Extent3D
	mips    uint32
	layers  uint32
	samples uint32
}

var _ prism.Texture = (*Texture)(nil)

func newTexture(sys *System, desc prism.TextureDescriptor, data []byte) (*Texture, error) {
	gf, err := formatToGL(desc.Format)
	if err != nil {
		return nil, err
	}

	t := &Texture{
		sys:      sys,
		label:    desc.Label,
		glTarget: textureTarget(desc.Type),
		typ:      desc.Type,
		format:   desc.Format,
		extent:   normalizeExtent(desc.Type, desc.Extent),
		layers:   max(desc.Extent.Depth, 1),
		samples:  1,
	}
	if !desc.Type.IsArray() && desc.Type != prism.Texture3D {
		t.layers = 1
	}
	if desc.Type.IsCube() {
		t.layers *= 6
	}

	if desc.Type.IsMultisampled() {
		t.samples = clamp(max(desc.Samples, 1), 1, sys.caps.Limits.MaxSamples)
		t.mips = 1
	} else {
		t.mips = desc.MipLevels
		if t.mips == 0 {
			t.mips = fullMipChain(t.extent, desc.Type)
		}
	}

	if err := sys.validateTextureType(desc.Type); err != nil {
		return nil, err
	}

	api, st := sys.api, sys.state
	t.id = api.GenTexture()
	st.BindTextureUnit(0, t.glTarget, t.id)

	if data != nil {
		api.PixelStorei(glUnpackAlignment, 1)
	}

	w, h := int32(t.extent.Width), int32(t.extent.Height)
	switch t.glTarget {
	case glTexture1D:
		// Presence checked by validateTextureType.
		api.(APITexture1D).TexImage1D(glTexture1D, 0, int32(gf.internal), w, gf.format, gf.xtype, data)

	case glTexture2D:
		if n := uint64(w) * uint64(h) * uint64(desc.Format.Size()); data != nil && uint64(len(data)) < n {
			api.DeleteTexture(t.id)
			return nil, fmt.Errorf("texture data too short: have %d bytes, need %d", len(data), n)
		}
		api.TexImage2D(glTexture2D, 0, int32(gf.internal), w, h, gf.format, gf.xtype, data)

	case glTextureCubeMap:
		for face := int32(0); face < 6; face++ {
			api.TexImage2D(cubeFaceTarget(face), 0, int32(gf.internal), w, h, gf.format, gf.xtype, data)
		}

	case glTexture1DArray:
		api.TexImage2D(glTexture1DArray, 0, int32(gf.internal), w, int32(t.layers), gf.format, gf.xtype, data)

	case glTexture2DArray, glTextureCubeMapArray:
		api.TexImage3D(t.glTarget, 0, int32(gf.internal), w, h, int32(t.layers), gf.format, gf.xtype, data)

	case glTexture3D:
		api.TexImage3D(glTexture3D, 0, int32(gf.internal), w, h, int32(t.extent.Depth), gf.format, gf.xtype, data)

	case glTexture2DMultisample:
		api.TexImage2DMultisample(glTexture2DMultisample, int32(t.samples), gf.internal, w, h, true)

	case glTexture2DMultisampleArray:
		msa, ok := api.(APIMultisampleArray)
		if !ok {
			api.DeleteTexture(t.id)
			return nil, fmt.Errorf("multisampled array textures: %w", prism.ErrUnsupported)
		}
		msa.TexImage3DMultisample(glTexture2DMultisampleArray, int32(t.samples), gf.internal, w, h, int32(t.layers), true)
	}

	if !desc.Type.IsMultisampled() {
		api.TexParameteri(t.glTarget, glTextureMaxLevel, int32(t.mips-1))
		if t.mips > 1 && data != nil {
			api.GenerateMipmap(t.glTarget)
		}
	}

	if err := checkError(api, "create texture"); err != nil {
		api.DeleteTexture(t.id)
		return nil, err
	}
	return t, nil
}

func (t *Texture) release(api API) {
	if t.id != 0 {
		api.DeleteTexture(t.id)
		t.id = 0
	}
}

func (t *Texture) Label() string         { return t.label }
func (t *Texture) SetLabel(label string) { t.label = label }

func (t *Texture) Type() prism.TextureType { return t.typ }
func (t *Texture) Format() prism.Format    { return t.format }
func (t *Texture) Extent() prism.Extent3D  { return t.extent }
func (t *Texture) MipLevels() uint32       { return t.mips }
func (t *Texture) Layers() uint32          { return t.layers }
func (t *Texture) Samples() uint32         { return t.samples }

// MipExtent halves width and height per level, clamping at one. Layer
// counts never shrink, only 3D depth does.
func (t *Texture) MipExtent(level uint32) prism.Extent3D {
	e := prism.Extent3D{
		Width:  max(t.extent.Width>>level, 1),
		Height: max(t.extent.Height>>level, 1),
		Depth:  t.extent.Depth,
	}
	if t.typ == prism.Texture3D {
		e.Depth = max(e.Depth>>level, 1)
	}
	return e
}

func normalizeExtent(typ prism.TextureType, e prism.Extent3D) prism.Extent3D {
	e.Width = max(e.Width, 1)
	e.Height = max(e.Height, 1)
	e.Depth = max(e.Depth, 1)
	if typ == prism.Texture1D || typ == prism.Texture1DArray {
		e.Height = 1
	}
	return e
}

func fullMipChain(e prism.Extent3D, typ prism.TextureType) uint32 {
	d := max(e.Width, e.Height)
	if typ == prism.Texture3D {
		d = max(d, e.Depth)
	}
	return uint32(bits.Len32(d))
}
