// Package opengl implements the prism render system on top of an
// OpenGL style driver. The package itself never links against a GL
// binding: all driver calls go through the API interface, which the
// gl33 and gles31 subpackages implement and tests fake.
package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// API is the set of driver entry points the render system uses. Enum
// arguments take the standardized GL values declared in this package;
// adapters forward them unchanged.
type API interface {
	GetError() uint32
	GetString(name uint32) string
	GetInteger(pname uint32) int32
	Extensions() []string

	GenFramebuffer() uint32
	DeleteFramebuffer(fb uint32)
	BindFramebuffer(target, fb uint32)
	FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32)
	FramebufferTextureLayer(target, attachment, texture uint32, level, layer int32)
	FramebufferRenderbuffer(target, attachment, renderbuffer uint32)
	CheckFramebufferStatus(target uint32) uint32
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32)
	DrawBuffers(bufs []uint32)
	DrawBuffer(buf uint32)
	ReadBuffer(src uint32)

	GenRenderbuffer() uint32
	DeleteRenderbuffer(rb uint32)
	BindRenderbuffer(rb uint32)
	RenderbufferStorage(internalFormat uint32, width, height int32)
	RenderbufferStorageMultisample(samples int32, internalFormat uint32, width, height int32)

	GenTexture() uint32
	DeleteTexture(tex uint32)
	BindTexture(target, tex uint32)
	ActiveTexture(unit uint32)
	TexImage2D(target uint32, level, internalFormat int32, width, height int32, format, xtype uint32, data []byte)
	TexImage3D(target uint32, level, internalFormat int32, width, height, depth int32, format, xtype uint32, data []byte)
	TexImage2DMultisample(target uint32, samples int32, internalFormat uint32, width, height int32, fixedLocations bool)
	TexParameteri(target, pname uint32, param int32)
	TexParameterf(target, pname uint32, param float32)
	GenerateMipmap(target uint32)
	PixelStorei(pname uint32, param int32)

	GenSampler() uint32
	DeleteSampler(s uint32)
	BindSampler(unit, s uint32)
	SamplerParameteri(s, pname uint32, param int32)
	SamplerParameterf(s, pname uint32, param float32)

	GenBuffer() uint32
	DeleteBuffer(b uint32)
	BindBuffer(target, b uint32)
	BindBufferBase(target, index, b uint32)
	BufferData(target uint32, size int, data []byte, usage uint32)
	BufferSubData(target uint32, offset int, data []byte)

	CreateShader(stage uint32) uint32
	DeleteShader(s uint32)
	ShaderSource(s uint32, src string)
	CompileShader(s uint32)
	ShaderParameter(s, pname uint32) int32
	ShaderInfoLog(s uint32) string

	CreateProgram() uint32
	DeleteProgram(p uint32)
	AttachShader(p, s uint32)
	LinkProgram(p uint32)
	ProgramParameter(p, pname uint32) int32
	ProgramInfoLog(p uint32) string
	UseProgram(p uint32)
	UniformLocation(p uint32, name string) int32
	Uniform1i(location, v int32)
	// UniformBlockIndex returns glInvalidIndex when the block does not
	// exist.
	UniformBlockIndex(p uint32, name string) uint32
	UniformBlockBinding(p, index, binding uint32)

	GenVertexArray() uint32
	DeleteVertexArray(va uint32)
	BindVertexArray(va uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)

	GenQuery() uint32
	DeleteQuery(q uint32)
	BeginQuery(target, q uint32)
	EndQuery(target uint32)
	// QueryResult blocks until the result is available.
	QueryResult(q uint32) uint64

	FenceSync() uintptr
	DeleteSync(sync uintptr)
	ClientWaitSync(sync uintptr, flags uint32, timeoutNanos uint64) uint32

	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float32)
	ClearStencil(s int32)
	Clear(mask uint32)
	ColorMask(r, g, b, a bool)
	DepthMask(write bool)
	DepthFunc(fn uint32)
	Enable(capability uint32)
	Disable(capability uint32)
	CullFace(mode uint32)
	FrontFace(dir uint32)
	BlendFunc(sfactor, dfactor uint32)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset int)
	Flush()
	Finish()
}

// APITexture1D is the optional 1D texture extension of an API.
// Desktop drivers implement it, GLES drivers do not.
type APITexture1D interface {
	TexImage1D(target uint32, level, internalFormat int32, width int32, format, xtype uint32, data []byte)
	FramebufferTexture1D(target, attachment, textarget, texture uint32, level int32)
}

// APIFramebufferDefaults is the optional no-attachment framebuffer
// extension of an API, available on GLES 3.1 and desktop GL 4.3.
type APIFramebufferDefaults interface {
	FramebufferParameteri(target, pname uint32, param int32)
}

// Standardized GL enum values. Adapters receive these verbatim, so the
// values must match the GL headers.
const (
	glNone         = 0
	glInvalidIndex = 0xFFFFFFFF

	glNoError                     = 0
	glInvalidEnum                 = 0x0500
	glInvalidValue                = 0x0501
	glInvalidOperation            = 0x0502
	glOutOfMemory                 = 0x0505
	glInvalidFramebufferOperation = 0x0506

	glVendor                = 0x1F00
	glRenderer              = 0x1F01
	glVersion               = 0x1F02
	glNumExtensions         = 0x821D
	glMaxTextureSize        = 0x0D33
	glMax3DTextureSize      = 0x8073
	glMaxArrayTextureLayers = 0x88FF
	glMaxCubeMapTextureSize = 0x851C
	glMaxRenderbufferSize   = 0x84E8
	glMaxColorAttachments   = 0x8CDF
	glMaxDrawBuffers        = 0x8824
	glMaxSamples            = 0x8D57
	glUnpackAlignment       = 0x0CF5

	glFramebuffer         = 0x8D40
	glReadFramebuffer     = 0x8CA8
	glDrawFramebuffer     = 0x8CA9
	glRenderbuffer        = 0x8D41
	glFramebufferComplete = 0x8CD5

	glFramebufferIncompleteAttachment        = 0x8CD6
	glFramebufferIncompleteMissingAttachment = 0x8CD7
	glFramebufferUnsupported                 = 0x8CDD
	glFramebufferIncompleteMultisample       = 0x8D56

	glFramebufferDefaultWidth   = 0x9310
	glFramebufferDefaultHeight  = 0x9311
	glFramebufferDefaultSamples = 0x9313

	glColorAttachment0       = 0x8CE0
	glDepthAttachment        = 0x8D00
	glStencilAttachment      = 0x8D20
	glDepthStencilAttachment = 0x821A

	glColorBufferBit   = 0x00004000
	glDepthBufferBit   = 0x00000100
	glStencilBufferBit = 0x00000400

	glNearest = 0x2600
	glLinear  = 0x2601
	glBack    = 0x0405
	glFront   = 0x0404

	glTexture1D                 = 0x0DE0
	glTexture2D                 = 0x0DE1
	glTexture3D                 = 0x806F
	glTexture1DArray            = 0x8C18
	glTexture2DArray            = 0x8C1A
	glTextureCubeMap            = 0x8513
	glTextureCubeMapPositiveX   = 0x8515
	glTextureCubeMapArray       = 0x9009
	glTexture2DMultisample      = 0x9100
	glTexture2DMultisampleArray = 0x9102

	glTextureMinFilter  = 0x2801
	glTextureMagFilter  = 0x2800
	glTextureWrapS      = 0x2802
	glTextureWrapT      = 0x2803
	glTextureWrapR      = 0x8072
	glTextureMinLOD     = 0x813A
	glTextureMaxLOD     = 0x813B
	glTextureBaseLevel  = 0x813C
	glTextureMaxLevel   = 0x813D
	glClampToEdge       = 0x812F
	glRepeat            = 0x2901
	glMirroredRepeat    = 0x8370
	glNearestMipNearest = 0x2700
	glLinearMipNearest  = 0x2701
	glNearestMipLinear  = 0x2702
	glLinearMipLinear   = 0x2703
	glTexture0          = 0x84C0

	// EXT_texture_filter_anisotropic
	glTextureMaxAnisotropy    = 0x84FE
	glMaxTextureMaxAnisotropy = 0x84FF

	glRed            = 0x1903
	glRG             = 0x8227
	glRGB            = 0x1907
	glRGBA           = 0x1908
	glBGRA           = 0x80E1
	glDepthComponent = 0x1902
	glDepthStencil   = 0x84F9
	glStencilIndex   = 0x1901

	glR8                = 0x8229
	glRG8               = 0x822B
	glRGBA8             = 0x8058
	glSRGB8Alpha8       = 0x8C43
	glRGB10A2           = 0x8059
	glRGBA16F           = 0x881A
	glRGBA32F           = 0x8814
	glR32F              = 0x822E
	glDepthComponent16  = 0x81A5
	glDepthComponent24  = 0x81A6
	glDepthComponent32F = 0x8CAC
	glDepth24Stencil8   = 0x88F0
	glDepth32FStencil8  = 0x8CAD
	glStencilIndex8     = 0x8D48

	glUnsignedByte             = 0x1401
	glUnsignedShort            = 0x1403
	glUnsignedInt              = 0x1405
	glFloat                    = 0x1406
	glHalfFloat                = 0x140B
	glUnsignedInt248           = 0x84FA
	glFloat32UnsignedInt248Rev = 0x8DAD
	glUnsignedInt2101010Rev    = 0x8368

	glArrayBuffer        = 0x8892
	glElementArrayBuffer = 0x8893
	glUniformBuffer      = 0x8A11
	glStaticDraw         = 0x88E4
	glDynamicDraw        = 0x88E8

	glVertexShader   = 0x8B31
	glFragmentShader = 0x8B30
	glGeometryShader = 0x8DD9
	glCompileStatus  = 0x8B81
	glLinkStatus     = 0x8B82

	glDepthTest   = 0x0B71
	glStencilTest = 0x0B90
	glCullFace    = 0x0B44
	glBlend       = 0x0BE2
	glScissorTest = 0x0C11
	glMultisample = 0x809D

	glNever    = 0x0200
	glLess     = 0x0201
	glEqual    = 0x0202
	glLEqual   = 0x0203
	glGreater  = 0x0204
	glNotEqual = 0x0205
	glGEqual   = 0x0206
	glAlways   = 0x0207

	glCW  = 0x0900
	glCCW = 0x0901

	glSrcAlpha         = 0x0302
	glOneMinusSrcAlpha = 0x0303
	glOne              = 1

	glPoints        = 0x0000
	glLines         = 0x0001
	glTriangles     = 0x0004
	glTriangleStrip = 0x0005

	glSamplesPassed       = 0x8914
	glAnySamplesPassed    = 0x8C2F
	glPrimitivesGenerated = 0x8C87
	glTimeElapsed         = 0x88BF

	glSyncGPUCommandsComplete = 0x9117
	glSyncFlushCommandsBit    = 0x00000001
	glAlreadySignaled         = 0x911A
	glTimeoutExpired          = 0x911B
	glConditionSatisfied      = 0x911C
	glWaitFailed              = 0x911D
)

func errorName(code uint32) string {
	switch code {
	case glNoError:
		return "GL_NO_ERROR"
	case glInvalidEnum:
		return "GL_INVALID_ENUM"
	case glInvalidValue:
		return "GL_INVALID_VALUE"
	case glInvalidOperation:
		return "GL_INVALID_OPERATION"
	case glOutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case glInvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("GL_ERROR(0x%04X)", code)
}

// checkError drains the driver error queue after op. Out of memory
// maps to prism.ErrResourceExhausted so callers can match on it.
func checkError(api API, op string) error {
	code := api.GetError()
	if code == glNoError {
		return nil
	}
	// Drain, the queue may hold more than one entry.
	for api.GetError() != glNoError {
	}
	if code == glOutOfMemory {
		return fmt.Errorf("%s: %w", op, prism.ErrResourceExhausted)
	}
	return fmt.Errorf("%s: driver error %s", op, errorName(code))
}

// debugCheck polls the driver error queue when PRISM_DEBUG is set and
// logs anything found. Release builds skip the poll entirely.
func debugCheck(api API, op string) {
	if !prism.Debug() {
		return
	}
	if err := checkError(api, op); err != nil {
		prism.Logger().Error("driver error", "op", op, "err", err)
	}
}
