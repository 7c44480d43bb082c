package opengl

import (
	"testing"

	"github.com/oliverbestmann/prism"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory driver for tests. It hands out unique ids
// across all object classes, tracks which objects are alive and
// records the calls tests assert on.
type fakeAPI struct {
	nextID   uint32
	nextSync uintptr

	calls map[string]int

	// errOn queues a driver error when the named call runs, once.
	errOn map[string]uint32
	errs  []uint32

	renderer   string
	version    string
	extensions []string
	integers   map[uint32]int32

	framebuffers  map[uint32]bool
	renderbuffers map[uint32]bool
	textures      map[uint32]bool
	samplers      map[uint32]bool
	buffers       map[uint32]bool
	shaders       map[uint32]bool
	programs      map[uint32]bool
	vertexArrays  map[uint32]bool
	queries       map[uint32]bool
	syncs         map[uintptr]bool

	boundDraw        uint32
	boundRead        uint32
	boundVertexArray uint32
	boundProgram     uint32
	activeUnit       uint32
	boundTexture     map[uint32]uint32

	// per framebuffer id: attachments by binding point, committed
	// DrawBuffers lists and single draw/read buffer selections.
	attachments     map[uint32]map[uint32]fakeAttachment
	drawBufferLists map[uint32][][]uint32
	drawBufSel      map[uint32][]uint32
	readBufSel      map[uint32][]uint32
	statuses        map[uint32]uint32
	fbParams        map[uint32]map[uint32]int32

	blits    []fakeBlit
	storages map[uint32]fakeStorage

	texImages     map[uint32][]fakeTexImage
	texParams     []fakeParam
	samplerParams map[uint32][]fakeParam

	bufferData   map[uint32]fakeBufferData
	bufferWrites []fakeBufferWrite
	bindBases    []fakeBindBase

	shaderSources map[uint32]string
	failCompile   bool
	failLink      bool
	infoLog       string

	attached   map[uint32][]uint32
	uniforms   map[string]int32
	blocks     map[string]uint32
	uniform1is []fakeUniform1i
	blockBinds []fakeBlockBinding

	attribs []fakeVertexAttrib
	draws   []fakeDraw

	beginQueries []fakeQueryOp
	endQueries   []uint32
	queryResults map[uint32]uint64

	waitStatus uint32

	enabled    map[uint32]bool
	depthMask  bool
	depthMasks []bool
	clearMasks []uint32
	viewport   [4]int32
	scissor    [4]int32
}

type fakeAttachment struct {
	renderbuffer bool
	id           uint32
	textarget    uint32
	level        int32
	layer        int32
}

type fakeBlit struct {
	readFbo, drawFbo uint32
	srcBuf, dstBuf   uint32
	width, height    int32
	mask, filter     uint32
}

type fakeStorage struct {
	internalFormat uint32
	width, height  int32
	samples        uint32
}

type fakeTexImage struct {
	target   uint32
	level    int32
	internal uint32
	width    int32
	height   int32
	depth    int32
	samples  int32
	hasData  bool
}

type fakeParam struct {
	target uint32
	pname  uint32
	vi     int32
	vf     float32
	flt    bool
}

type fakeBufferData struct {
	target uint32
	size   int
	usage  uint32
}

type fakeBufferWrite struct {
	target uint32
	offset int
	size   int
}

type fakeBindBase struct {
	target, index, buffer uint32
}

type fakeUniform1i struct {
	location, value int32
}

type fakeBlockBinding struct {
	program, index, binding uint32
}

type fakeVertexAttrib struct {
	index      uint32
	size       int32
	xtype      uint32
	normalized bool
	stride     int32
	offset     int
}

type fakeDraw struct {
	mode    uint32
	first   int32
	count   int32
	indexed bool
	xtype   uint32
	offset  int
}

type fakeQueryOp struct {
	target, id uint32
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:    map[string]int{},
		errOn:    map[string]uint32{},
		renderer: "FakeGL",
		version:  "3.3 fake",
		integers: map[uint32]int32{
			glMaxTextureSize:          8192,
			glMax3DTextureSize:        2048,
			glMaxCubeMapTextureSize:   8192,
			glMaxArrayTextureLayers:   256,
			glMaxRenderbufferSize:     8192,
			glMaxColorAttachments:     8,
			glMaxDrawBuffers:          8,
			glMaxSamples:              8,
			glMaxTextureMaxAnisotropy: 16,
		},
		framebuffers:    map[uint32]bool{},
		renderbuffers:   map[uint32]bool{},
		textures:        map[uint32]bool{},
		samplers:        map[uint32]bool{},
		buffers:         map[uint32]bool{},
		shaders:         map[uint32]bool{},
		programs:        map[uint32]bool{},
		vertexArrays:    map[uint32]bool{},
		queries:         map[uint32]bool{},
		syncs:           map[uintptr]bool{},
		boundTexture:    map[uint32]uint32{},
		attachments:     map[uint32]map[uint32]fakeAttachment{},
		drawBufferLists: map[uint32][][]uint32{},
		drawBufSel:      map[uint32][]uint32{},
		readBufSel:      map[uint32][]uint32{},
		statuses:        map[uint32]uint32{},
		fbParams:        map[uint32]map[uint32]int32{},
		storages:        map[uint32]fakeStorage{},
		texImages:       map[uint32][]fakeTexImage{},
		samplerParams:   map[uint32][]fakeParam{},
		bufferData:      map[uint32]fakeBufferData{},
		shaderSources:   map[uint32]string{},
		attached:        map[uint32][]uint32{},
		uniforms:        map[string]int32{},
		blocks:          map[string]uint32{},
		queryResults:    map[uint32]uint64{},
		waitStatus:      glAlreadySignaled,
		enabled:         map[uint32]bool{},
		depthMask:       true,
	}
}

var _ API = (*fakeAPI)(nil)

func (f *fakeAPI) did(name string) {
	f.calls[name]++
	if code, ok := f.errOn[name]; ok {
		f.errs = append(f.errs, code)
		delete(f.errOn, name)
	}
}

func (f *fakeAPI) genID() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeAPI) GetError() uint32 {
	if len(f.errs) == 0 {
		return glNoError
	}
	code := f.errs[0]
	f.errs = f.errs[1:]
	return code
}

func (f *fakeAPI) GetString(name uint32) string {
	f.did("GetString")
	switch name {
	case glRenderer:
		return f.renderer
	case glVersion:
		return f.version
	}
	return ""
}

func (f *fakeAPI) GetInteger(pname uint32) int32 {
	f.did("GetInteger")
	return f.integers[pname]
}

func (f *fakeAPI) Extensions() []string {
	f.did("Extensions")
	return f.extensions
}

func (f *fakeAPI) GenFramebuffer() uint32 {
	f.did("GenFramebuffer")
	id := f.genID()
	f.framebuffers[id] = true
	f.attachments[id] = map[uint32]fakeAttachment{}
	return id
}

func (f *fakeAPI) DeleteFramebuffer(fb uint32) {
	f.did("DeleteFramebuffer")
	delete(f.framebuffers, fb)
}

func (f *fakeAPI) BindFramebuffer(target, fb uint32) {
	f.did("BindFramebuffer")
	switch target {
	case glDrawFramebuffer:
		f.boundDraw = fb
	case glReadFramebuffer:
		f.boundRead = fb
	default:
		f.boundDraw = fb
		f.boundRead = fb
	}
}

func (f *fakeAPI) attach(binding uint32, att fakeAttachment) {
	m := f.attachments[f.boundDraw]
	if m == nil {
		m = map[uint32]fakeAttachment{}
		f.attachments[f.boundDraw] = m
	}
	m[binding] = att
}

func (f *fakeAPI) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	f.did("FramebufferTexture2D")
	f.attach(attachment, fakeAttachment{id: texture, textarget: textarget, level: level})
}

func (f *fakeAPI) FramebufferTextureLayer(target, attachment, texture uint32, level, layer int32) {
	f.did("FramebufferTextureLayer")
	f.attach(attachment, fakeAttachment{id: texture, level: level, layer: layer})
}

func (f *fakeAPI) FramebufferRenderbuffer(target, attachment, renderbuffer uint32) {
	f.did("FramebufferRenderbuffer")
	f.attach(attachment, fakeAttachment{renderbuffer: true, id: renderbuffer})
}

func (f *fakeAPI) CheckFramebufferStatus(target uint32) uint32 {
	f.did("CheckFramebufferStatus")
	if status, ok := f.statuses[f.boundDraw]; ok {
		return status
	}
	return glFramebufferComplete
}

func (f *fakeAPI) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	f.did("BlitFramebuffer")
	f.blits = append(f.blits, fakeBlit{
		readFbo: f.boundRead,
		drawFbo: f.boundDraw,
		srcBuf:  f.lastSel(f.readBufSel, f.boundRead),
		dstBuf:  f.lastSel(f.drawBufSel, f.boundDraw),
		width:   srcX1,
		height:  srcY1,
		mask:    mask,
		filter:  filter,
	})
}

func (f *fakeAPI) lastSel(sel map[uint32][]uint32, fbo uint32) uint32 {
	s := sel[fbo]
	if len(s) == 0 {
		return glNone
	}
	return s[len(s)-1]
}

func (f *fakeAPI) DrawBuffers(bufs []uint32) {
	f.did("DrawBuffers")
	list := append([]uint32(nil), bufs...)
	f.drawBufferLists[f.boundDraw] = append(f.drawBufferLists[f.boundDraw], list)
}

func (f *fakeAPI) DrawBuffer(buf uint32) {
	f.did("DrawBuffer")
	f.drawBufSel[f.boundDraw] = append(f.drawBufSel[f.boundDraw], buf)
}

func (f *fakeAPI) ReadBuffer(src uint32) {
	f.did("ReadBuffer")
	f.readBufSel[f.boundRead] = append(f.readBufSel[f.boundRead], src)
}

func (f *fakeAPI) GenRenderbuffer() uint32 {
	f.did("GenRenderbuffer")
	id := f.genID()
	f.renderbuffers[id] = true
	return id
}

func (f *fakeAPI) DeleteRenderbuffer(rb uint32) {
	f.did("DeleteRenderbuffer")
	delete(f.renderbuffers, rb)
}

func (f *fakeAPI) BindRenderbuffer(rb uint32) {
	f.did("BindRenderbuffer")
	f.boundTexture[glRenderbuffer] = rb
}

func (f *fakeAPI) RenderbufferStorage(internalFormat uint32, width, height int32) {
	f.did("RenderbufferStorage")
	f.storages[f.boundTexture[glRenderbuffer]] = fakeStorage{
		internalFormat: internalFormat, width: width, height: height, samples: 1,
	}
}

func (f *fakeAPI) RenderbufferStorageMultisample(samples int32, internalFormat uint32, width, height int32) {
	f.did("RenderbufferStorageMultisample")
	f.storages[f.boundTexture[glRenderbuffer]] = fakeStorage{
		internalFormat: internalFormat, width: width, height: height, samples: uint32(samples),
	}
}

func (f *fakeAPI) GenTexture() uint32 {
	f.did("GenTexture")
	id := f.genID()
	f.textures[id] = true
	return id
}

func (f *fakeAPI) DeleteTexture(tex uint32) {
	f.did("DeleteTexture")
	delete(f.textures, tex)
}

func (f *fakeAPI) BindTexture(target, tex uint32) {
	f.did("BindTexture")
	f.boundTexture[target] = tex
}

func (f *fakeAPI) ActiveTexture(unit uint32) {
	f.did("ActiveTexture")
	f.activeUnit = unit - glTexture0
}

func (f *fakeAPI) recordTexImage(target uint32, img fakeTexImage) {
	bindTarget := target
	if target >= glTextureCubeMapPositiveX && target < glTextureCubeMapPositiveX+6 {
		bindTarget = glTextureCubeMap
	}
	id := f.boundTexture[bindTarget]
	f.texImages[id] = append(f.texImages[id], img)
}

func (f *fakeAPI) TexImage2D(target uint32, level, internalFormat int32, width, height int32, format, xtype uint32, data []byte) {
	f.did("TexImage2D")
	f.recordTexImage(target, fakeTexImage{
		target: target, level: level, internal: uint32(internalFormat),
		width: width, height: height, samples: 1, hasData: data != nil,
	})
}

func (f *fakeAPI) TexImage3D(target uint32, level, internalFormat int32, width, height, depth int32, format, xtype uint32, data []byte) {
	f.did("TexImage3D")
	f.recordTexImage(target, fakeTexImage{
		target: target, level: level, internal: uint32(internalFormat),
		width: width, height: height, depth: depth, samples: 1, hasData: data != nil,
	})
}

func (f *fakeAPI) TexImage2DMultisample(target uint32, samples int32, internalFormat uint32, width, height int32, fixedLocations bool) {
	f.did("TexImage2DMultisample")
	f.recordTexImage(target, fakeTexImage{
		target: target, internal: internalFormat, width: width, height: height, samples: samples,
	})
}

func (f *fakeAPI) TexParameteri(target, pname uint32, param int32) {
	f.did("TexParameteri")
	f.texParams = append(f.texParams, fakeParam{target: target, pname: pname, vi: param})
}

func (f *fakeAPI) TexParameterf(target, pname uint32, param float32) {
	f.did("TexParameterf")
	f.texParams = append(f.texParams, fakeParam{target: target, pname: pname, vf: param, flt: true})
}

func (f *fakeAPI) GenerateMipmap(target uint32) { f.did("GenerateMipmap") }

func (f *fakeAPI) PixelStorei(pname uint32, param int32) { f.did("PixelStorei") }

func (f *fakeAPI) GenSampler() uint32 {
	f.did("GenSampler")
	id := f.genID()
	f.samplers[id] = true
	return id
}

func (f *fakeAPI) DeleteSampler(s uint32) {
	f.did("DeleteSampler")
	delete(f.samplers, s)
}

func (f *fakeAPI) BindSampler(unit, s uint32) { f.did("BindSampler") }

func (f *fakeAPI) SamplerParameteri(s, pname uint32, param int32) {
	f.did("SamplerParameteri")
	f.samplerParams[s] = append(f.samplerParams[s], fakeParam{pname: pname, vi: param})
}

func (f *fakeAPI) SamplerParameterf(s, pname uint32, param float32) {
	f.did("SamplerParameterf")
	f.samplerParams[s] = append(f.samplerParams[s], fakeParam{pname: pname, vf: param, flt: true})
}

func (f *fakeAPI) GenBuffer() uint32 {
	f.did("GenBuffer")
	id := f.genID()
	f.buffers[id] = true
	return id
}

func (f *fakeAPI) DeleteBuffer(b uint32) {
	f.did("DeleteBuffer")
	delete(f.buffers, b)
}

func (f *fakeAPI) BindBuffer(target, b uint32) {
	f.did("BindBuffer")
	f.boundTexture[target] = b
}

func (f *fakeAPI) BindBufferBase(target, index, b uint32) {
	f.did("BindBufferBase")
	f.bindBases = append(f.bindBases, fakeBindBase{target: target, index: index, buffer: b})
}

func (f *fakeAPI) BufferData(target uint32, size int, data []byte, usage uint32) {
	f.did("BufferData")
	f.bufferData[f.boundTexture[target]] = fakeBufferData{target: target, size: size, usage: usage}
}

func (f *fakeAPI) BufferSubData(target uint32, offset int, data []byte) {
	f.did("BufferSubData")
	f.bufferWrites = append(f.bufferWrites, fakeBufferWrite{target: target, offset: offset, size: len(data)})
}

func (f *fakeAPI) CreateShader(stage uint32) uint32 {
	f.did("CreateShader")
	id := f.genID()
	f.shaders[id] = true
	return id
}

func (f *fakeAPI) DeleteShader(s uint32) {
	f.did("DeleteShader")
	delete(f.shaders, s)
}

func (f *fakeAPI) ShaderSource(s uint32, src string) {
	f.did("ShaderSource")
	f.shaderSources[s] = src
}

func (f *fakeAPI) CompileShader(s uint32) { f.did("CompileShader") }

func (f *fakeAPI) ShaderParameter(s, pname uint32) int32 {
	f.did("ShaderParameter")
	if pname == glCompileStatus && f.failCompile {
		return 0
	}
	return 1
}

func (f *fakeAPI) ShaderInfoLog(s uint32) string {
	f.did("ShaderInfoLog")
	return f.infoLog
}

func (f *fakeAPI) CreateProgram() uint32 {
	f.did("CreateProgram")
	id := f.genID()
	f.programs[id] = true
	return id
}

func (f *fakeAPI) DeleteProgram(p uint32) {
	f.did("DeleteProgram")
	delete(f.programs, p)
}

func (f *fakeAPI) AttachShader(p, s uint32) {
	f.did("AttachShader")
	f.attached[p] = append(f.attached[p], s)
}

func (f *fakeAPI) LinkProgram(p uint32) { f.did("LinkProgram") }

func (f *fakeAPI) ProgramParameter(p, pname uint32) int32 {
	f.did("ProgramParameter")
	if pname == glLinkStatus && f.failLink {
		return 0
	}
	return 1
}

func (f *fakeAPI) ProgramInfoLog(p uint32) string {
	f.did("ProgramInfoLog")
	return f.infoLog
}

func (f *fakeAPI) UseProgram(p uint32) {
	f.did("UseProgram")
	f.boundProgram = p
}

func (f *fakeAPI) UniformLocation(p uint32, name string) int32 {
	f.did("UniformLocation")
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeAPI) Uniform1i(location, v int32) {
	f.did("Uniform1i")
	f.uniform1is = append(f.uniform1is, fakeUniform1i{location: location, value: v})
}

func (f *fakeAPI) UniformBlockIndex(p uint32, name string) uint32 {
	f.did("UniformBlockIndex")
	if idx, ok := f.blocks[name]; ok {
		return idx
	}
	return glInvalidIndex
}

func (f *fakeAPI) UniformBlockBinding(p, index, binding uint32) {
	f.did("UniformBlockBinding")
	f.blockBinds = append(f.blockBinds, fakeBlockBinding{program: p, index: index, binding: binding})
}

func (f *fakeAPI) GenVertexArray() uint32 {
	f.did("GenVertexArray")
	id := f.genID()
	f.vertexArrays[id] = true
	return id
}

func (f *fakeAPI) DeleteVertexArray(va uint32) {
	f.did("DeleteVertexArray")
	delete(f.vertexArrays, va)
}

func (f *fakeAPI) BindVertexArray(va uint32) {
	f.did("BindVertexArray")
	f.boundVertexArray = va
}

func (f *fakeAPI) EnableVertexAttribArray(index uint32) { f.did("EnableVertexAttribArray") }

func (f *fakeAPI) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	f.did("VertexAttribPointer")
	f.attribs = append(f.attribs, fakeVertexAttrib{
		index: index, size: size, xtype: xtype, normalized: normalized, stride: stride, offset: offset,
	})
}

func (f *fakeAPI) GenQuery() uint32 {
	f.did("GenQuery")
	id := f.genID()
	f.queries[id] = true
	return id
}

func (f *fakeAPI) DeleteQuery(q uint32) {
	f.did("DeleteQuery")
	delete(f.queries, q)
}

func (f *fakeAPI) BeginQuery(target, q uint32) {
	f.did("BeginQuery")
	f.beginQueries = append(f.beginQueries, fakeQueryOp{target: target, id: q})
}

func (f *fakeAPI) EndQuery(target uint32) {
	f.did("EndQuery")
	f.endQueries = append(f.endQueries, target)
}

func (f *fakeAPI) QueryResult(q uint32) uint64 {
	f.did("QueryResult")
	return f.queryResults[q]
}

func (f *fakeAPI) FenceSync() uintptr {
	f.did("FenceSync")
	f.nextSync++
	f.syncs[f.nextSync] = true
	return f.nextSync
}

func (f *fakeAPI) DeleteSync(sync uintptr) {
	f.did("DeleteSync")
	delete(f.syncs, sync)
}

func (f *fakeAPI) ClientWaitSync(sync uintptr, flags uint32, timeoutNanos uint64) uint32 {
	f.did("ClientWaitSync")
	return f.waitStatus
}

func (f *fakeAPI) Viewport(x, y, width, height int32) {
	f.did("Viewport")
	f.viewport = [4]int32{x, y, width, height}
}

func (f *fakeAPI) Scissor(x, y, width, height int32) {
	f.did("Scissor")
	f.scissor = [4]int32{x, y, width, height}
}

func (f *fakeAPI) ClearColor(r, g, b, a float32) { f.did("ClearColor") }

func (f *fakeAPI) ClearDepth(d float32) { f.did("ClearDepth") }

func (f *fakeAPI) ClearStencil(s int32) { f.did("ClearStencil") }

func (f *fakeAPI) Clear(mask uint32) {
	f.did("Clear")
	f.clearMasks = append(f.clearMasks, mask)
}

func (f *fakeAPI) ColorMask(r, g, b, a bool) { f.did("ColorMask") }

func (f *fakeAPI) DepthMask(write bool) {
	f.did("DepthMask")
	f.depthMask = write
	f.depthMasks = append(f.depthMasks, write)
}

func (f *fakeAPI) DepthFunc(fn uint32) { f.did("DepthFunc") }

func (f *fakeAPI) Enable(capability uint32) {
	f.did("Enable")
	f.enabled[capability] = true
}

func (f *fakeAPI) Disable(capability uint32) {
	f.did("Disable")
	f.enabled[capability] = false
}

func (f *fakeAPI) CullFace(mode uint32) { f.did("CullFace") }

func (f *fakeAPI) FrontFace(dir uint32) { f.did("FrontFace") }

func (f *fakeAPI) BlendFunc(sfactor, dfactor uint32) { f.did("BlendFunc") }

func (f *fakeAPI) DrawArrays(mode uint32, first, count int32) {
	f.did("DrawArrays")
	f.draws = append(f.draws, fakeDraw{mode: mode, first: first, count: count})
}

func (f *fakeAPI) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	f.did("DrawElements")
	f.draws = append(f.draws, fakeDraw{mode: mode, count: count, indexed: true, xtype: xtype, offset: offset})
}

func (f *fakeAPI) Flush()  { f.did("Flush") }
func (f *fakeAPI) Finish() { f.did("Finish") }

// fakeDesktop adds the desktop-only entry points.
type fakeDesktop struct{ *fakeAPI }

var (
	_ APITexture1D        = fakeDesktop{}
	_ APIMultisampleArray = fakeDesktop{}
)

func (f fakeDesktop) TexImage1D(target uint32, level, internalFormat int32, width int32, format, xtype uint32, data []byte) {
	f.did("TexImage1D")
	f.recordTexImage(target, fakeTexImage{
		target: target, level: level, internal: uint32(internalFormat),
		width: width, samples: 1, hasData: data != nil,
	})
}

func (f fakeDesktop) FramebufferTexture1D(target, attachment, textarget, texture uint32, level int32) {
	f.did("FramebufferTexture1D")
	f.attach(attachment, fakeAttachment{id: texture, textarget: textarget, level: level})
}

func (f fakeDesktop) TexImage3DMultisample(target uint32, samples int32, internalFormat uint32, width, height, depth int32, fixedLocations bool) {
	f.did("TexImage3DMultisample")
	f.recordTexImage(target, fakeTexImage{
		target: target, internal: internalFormat, width: width, height: height, depth: depth, samples: samples,
	})
}

// fakeWithDefaults adds no-attachment framebuffer parameters.
type fakeWithDefaults struct{ *fakeAPI }

var _ APIFramebufferDefaults = fakeWithDefaults{}

func (f fakeWithDefaults) FramebufferParameteri(target, pname uint32, param int32) {
	f.did("FramebufferParameteri")
	m := f.fbParams[f.boundDraw]
	if m == nil {
		m = map[uint32]int32{}
		f.fbParams[f.boundDraw] = m
	}
	m[pname] = param
}

// fakeSurface is a test stand-in for a window.
type fakeSurface struct {
	width, height int
	swaps         int
}

func (s *fakeSurface) FramebufferSize() (int, int) { return s.width, s.height }
func (s *fakeSurface) SwapBuffers()                { s.swaps++ }

// fakeResource is a resource of some other render system.
type fakeResource struct{}

func (fakeResource) Label() string   { return "foreign" }
func (fakeResource) SetLabel(string) {}

var _ prism.Resource = fakeResource{}

func testSystem(t *testing.T, api API, opts Options) *System {
	t.Helper()
	sys, err := NewSystem("fake", api, opts)
	require.NoError(t, err)
	t.Cleanup(sys.Close)
	return sys
}

func mkTexture(t *testing.T, sys *System, desc prism.TextureDescriptor) *Texture {
	t.Helper()
	tex, err := sys.CreateTexture(desc, nil)
	require.NoError(t, err)
	return tex.(*Texture)
}

func mkTexture2D(t *testing.T, sys *System, format prism.Format, w, h uint32) *Texture {
	t.Helper()
	return mkTexture(t, sys, prism.TextureDescriptor{
		Type:      prism.Texture2D,
		Format:    format,
		Extent:    prism.Extent3D{Width: w, Height: h},
		MipLevels: 1,
	})
}

func mkShader(t *testing.T, sys *System, stage prism.ShaderStage) *Shader {
	t.Helper()
	s, err := sys.CreateShader(prism.ShaderDescriptor{Stage: stage, Source: "void main() {}"})
	require.NoError(t, err)
	return s.(*Shader)
}

func mkPipeline(t *testing.T, sys *System, desc prism.PipelineStateDescriptor) *PipelineState {
	t.Helper()
	if desc.VertexShader == nil {
		desc.VertexShader = mkShader(t, sys, prism.StageVertex)
	}
	if desc.FragmentShader == nil {
		desc.FragmentShader = mkShader(t, sys, prism.StageFragment)
	}
	p, err := sys.CreatePipelineState(desc)
	require.NoError(t, err)
	return p.(*PipelineState)
}
