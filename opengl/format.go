package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// glFormat is the driver-side triple of a prism.Format.
type glFormat struct {
	internal uint32
	format   uint32
	xtype    uint32
}

func formatToGL(f prism.Format) (glFormat, error) {
	switch f {
	case prism.FormatR8:
		return glFormat{glR8, glRed, glUnsignedByte}, nil
	case prism.FormatRG8:
		return glFormat{glRG8, glRG, glUnsignedByte}, nil
	case prism.FormatRGBA8:
		return glFormat{glRGBA8, glRGBA, glUnsignedByte}, nil
	case prism.FormatRGBA8SRGB:
		return glFormat{glSRGB8Alpha8, glRGBA, glUnsignedByte}, nil
	case prism.FormatBGRA8:
		return glFormat{glRGBA8, glBGRA, glUnsignedByte}, nil
	case prism.FormatRGB10A2:
		return glFormat{glRGB10A2, glRGBA, glUnsignedInt2101010Rev}, nil
	case prism.FormatRGBA16F:
		return glFormat{glRGBA16F, glRGBA, glHalfFloat}, nil
	case prism.FormatRGBA32F:
		return glFormat{glRGBA32F, glRGBA, glFloat}, nil
	case prism.FormatR32F:
		return glFormat{glR32F, glRed, glFloat}, nil
	case prism.FormatD16:
		return glFormat{glDepthComponent16, glDepthComponent, glUnsignedShort}, nil
	case prism.FormatD24S8:
		return glFormat{glDepth24Stencil8, glDepthStencil, glUnsignedInt248}, nil
	case prism.FormatD32F:
		return glFormat{glDepthComponent32F, glDepthComponent, glFloat}, nil
	case prism.FormatD32FS8:
		return glFormat{glDepth32FStencil8, glDepthStencil, glFloat32UnsignedInt248Rev}, nil
	case prism.FormatS8:
		return glFormat{glStencilIndex8, glStencilIndex, glUnsignedByte}, nil
	}
	return glFormat{}, fmt.Errorf("format %s has no driver mapping: %w", f, prism.ErrUnsupported)
}

// depthStencilBinding returns the attachment point a depth or stencil
// format binds to. The format decides, not the attachment role.
func depthStencilBinding(f prism.Format) uint32 {
	switch {
	case f.HasDepth() && f.HasStencil():
		return glDepthStencilAttachment
	case f.HasDepth():
		return glDepthAttachment
	case f.HasStencil():
		return glStencilAttachment
	}
	return glNone
}

func textureTarget(t prism.TextureType) uint32 {
	switch t {
	case prism.Texture1D:
		return glTexture1D
	case prism.Texture1DArray:
		return glTexture1DArray
	case prism.Texture2D:
		return glTexture2D
	case prism.Texture2DArray:
		return glTexture2DArray
	case prism.Texture2DMS:
		return glTexture2DMultisample
	case prism.Texture2DMSArray:
		return glTexture2DMultisampleArray
	case prism.Texture3D:
		return glTexture3D
	case prism.TextureCube:
		return glTextureCubeMap
	case prism.TextureCubeArray:
		return glTextureCubeMapArray
	}
	return glTexture2D
}

func filterToGL(f prism.Filter) int32 {
	if f == prism.FilterNearest {
		return glNearest
	}
	return glLinear
}

func minFilterToGL(min, mip prism.Filter, mipmaps bool) int32 {
	if !mipmaps {
		return filterToGL(min)
	}
	switch {
	case min == prism.FilterNearest && mip == prism.FilterNearest:
		return glNearestMipNearest
	case min == prism.FilterNearest:
		return glNearestMipLinear
	case mip == prism.FilterNearest:
		return glLinearMipNearest
	}
	return glLinearMipLinear
}

func wrapToGL(w prism.WrapMode) int32 {
	switch w {
	case prism.WrapClampToEdge:
		return glClampToEdge
	case prism.WrapMirror:
		return glMirroredRepeat
	}
	return glRepeat
}

func compareToGL(op prism.CompareOp) uint32 {
	switch op {
	case prism.CompareLess:
		return glLess
	case prism.CompareLessEqual:
		return glLEqual
	case prism.CompareEqual:
		return glEqual
	case prism.CompareGreater:
		return glGreater
	case prism.CompareGreaterEqual:
		return glGEqual
	case prism.CompareAlways:
		return glAlways
	case prism.CompareNever:
		return glNever
	}
	return glLess
}

func topologyToGL(t prism.PrimitiveTopology) uint32 {
	switch t {
	case prism.TopologyTriangleStrip:
		return glTriangleStrip
	case prism.TopologyLineList:
		return glLines
	case prism.TopologyPointList:
		return glPoints
	}
	return glTriangles
}

func queryTargetToGL(t prism.QueryType) uint32 {
	switch t {
	case prism.QueryAnySamplesPassed:
		return glAnySamplesPassed
	case prism.QueryPrimitivesGenerated:
		return glPrimitivesGenerated
	case prism.QueryTimeElapsed:
		return glTimeElapsed
	}
	return glSamplesPassed
}

// vertexFormatToGL returns component count, component type and
// normalization of a vertex format.
func vertexFormatToGL(f prism.VertexFormat) (size int32, xtype uint32, normalized bool) {
	switch f {
	case prism.VertexFloat32:
		return 1, glFloat, false
	case prism.VertexFloat32x2:
		return 2, glFloat, false
	case prism.VertexFloat32x3:
		return 3, glFloat, false
	case prism.VertexFloat32x4:
		return 4, glFloat, false
	case prism.VertexUint8x4Norm:
		return 4, glUnsignedByte, true
	}
	return 4, glFloat, false
}
