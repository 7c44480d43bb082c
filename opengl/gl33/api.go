// Package gl33 adapts desktop OpenGL 3.3 core to the opengl driver
// API. Importing the package registers the "gl" driver.
package gl33

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// api forwards driver calls to the go-gl binding. The opengl package
// hands over standardized enum values which match the desktop headers,
// so no translation happens here.
type api struct{}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func (api) GetError() uint32 { return gl.GetError() }

func (api) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (api) GetInteger(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (api) Extensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	exts := make([]string, 0, n)
	for i := uint32(0); i < uint32(n); i++ {
		exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, i)))
	}
	return exts
}

func (api) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (api) DeleteFramebuffer(fb uint32) { gl.DeleteFramebuffers(1, &fb) }

func (api) BindFramebuffer(target, fb uint32) { gl.BindFramebuffer(target, fb) }

func (api) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (api) FramebufferTexture1D(target, attachment, textarget, texture uint32, level int32) {
	gl.FramebufferTexture1D(target, attachment, textarget, texture, level)
}

func (api) FramebufferTextureLayer(target, attachment, texture uint32, level, layer int32) {
	gl.FramebufferTextureLayer(target, attachment, texture, level, layer)
}

func (api) FramebufferRenderbuffer(target, attachment, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(target, attachment, gl.RENDERBUFFER, renderbuffer)
}

func (api) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (api) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (api) DrawBuffers(bufs []uint32) {
	if len(bufs) == 0 {
		return
	}
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
}

func (api) DrawBuffer(buf uint32) { gl.DrawBuffer(buf) }
func (api) ReadBuffer(src uint32) { gl.ReadBuffer(src) }

func (api) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (api) DeleteRenderbuffer(rb uint32) { gl.DeleteRenderbuffers(1, &rb) }

func (api) BindRenderbuffer(rb uint32) { gl.BindRenderbuffer(gl.RENDERBUFFER, rb) }

func (api) RenderbufferStorage(internalFormat uint32, width, height int32) {
	gl.RenderbufferStorage(gl.RENDERBUFFER, internalFormat, width, height)
}

func (api) RenderbufferStorageMultisample(samples int32, internalFormat uint32, width, height int32) {
	gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, internalFormat, width, height)
}

func (api) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (api) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

func (api) BindTexture(target, tex uint32) { gl.BindTexture(target, tex) }

func (api) ActiveTexture(unit uint32) { gl.ActiveTexture(unit) }

func (api) TexImage2D(target uint32, level, internalFormat int32, width, height int32, format, xtype uint32, data []byte) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptr(data))
}

func (api) TexImage3D(target uint32, level, internalFormat int32, width, height, depth int32, format, xtype uint32, data []byte) {
	gl.TexImage3D(target, level, internalFormat, width, height, depth, 0, format, xtype, ptr(data))
}

func (api) TexImage1D(target uint32, level, internalFormat int32, width int32, format, xtype uint32, data []byte) {
	gl.TexImage1D(target, level, internalFormat, width, 0, format, xtype, ptr(data))
}

func (api) TexImage2DMultisample(target uint32, samples int32, internalFormat uint32, width, height int32, fixedLocations bool) {
	gl.TexImage2DMultisample(target, samples, internalFormat, width, height, fixedLocations)
}

func (api) TexImage3DMultisample(target uint32, samples int32, internalFormat uint32, width, height, depth int32, fixedLocations bool) {
	gl.TexImage3DMultisample(target, samples, internalFormat, width, height, depth, fixedLocations)
}

func (api) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (api) TexParameterf(target, pname uint32, param float32) {
	gl.TexParameterf(target, pname, param)
}

func (api) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (api) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (api) GenSampler() uint32 {
	var id uint32
	gl.GenSamplers(1, &id)
	return id
}

func (api) DeleteSampler(s uint32) { gl.DeleteSamplers(1, &s) }

func (api) BindSampler(unit, s uint32) { gl.BindSampler(unit, s) }

func (api) SamplerParameteri(s, pname uint32, param int32) {
	gl.SamplerParameteri(s, pname, param)
}

func (api) SamplerParameterf(s, pname uint32, param float32) {
	gl.SamplerParameterf(s, pname, param)
}

func (api) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (api) DeleteBuffer(b uint32) { gl.DeleteBuffers(1, &b) }

func (api) BindBuffer(target, b uint32) { gl.BindBuffer(target, b) }

func (api) BindBufferBase(target, index, b uint32) { gl.BindBufferBase(target, index, b) }

func (api) BufferData(target uint32, size int, data []byte, usage uint32) {
	gl.BufferData(target, size, ptr(data), usage)
}

func (api) BufferSubData(target uint32, offset int, data []byte) {
	gl.BufferSubData(target, offset, len(data), ptr(data))
}

func (api) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (api) DeleteShader(s uint32) { gl.DeleteShader(s) }

func (api) ShaderSource(s uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s, 1, csources, nil)
	free()
}

func (api) CompileShader(s uint32) { gl.CompileShader(s) }

func (api) ShaderParameter(s, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(s, pname, &v)
	return v
}

func (api) ShaderInfoLog(s uint32) string {
	var n int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetShaderInfoLog(s, n, nil, &buf[0])
	return string(buf[:n-1])
}

func (api) CreateProgram() uint32 { return gl.CreateProgram() }

func (api) DeleteProgram(p uint32) { gl.DeleteProgram(p) }

func (api) AttachShader(p, s uint32) { gl.AttachShader(p, s) }

func (api) LinkProgram(p uint32) { gl.LinkProgram(p) }

func (api) ProgramParameter(p, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(p, pname, &v)
	return v
}

func (api) ProgramInfoLog(p uint32) string {
	var n int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetProgramInfoLog(p, n, nil, &buf[0])
	return string(buf[:n-1])
}

func (api) UseProgram(p uint32) { gl.UseProgram(p) }

func (api) UniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, gl.Str(name+"\x00"))
}

func (api) Uniform1i(location, v int32) { gl.Uniform1i(location, v) }

func (api) UniformBlockIndex(p uint32, name string) uint32 {
	return gl.GetUniformBlockIndex(p, gl.Str(name+"\x00"))
}

func (api) UniformBlockBinding(p, index, binding uint32) {
	gl.UniformBlockBinding(p, index, binding)
}

func (api) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (api) DeleteVertexArray(va uint32) { gl.DeleteVertexArrays(1, &va) }

func (api) BindVertexArray(va uint32) { gl.BindVertexArray(va) }

func (api) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (api) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

func (api) GenQuery() uint32 {
	var id uint32
	gl.GenQueries(1, &id)
	return id
}

func (api) DeleteQuery(q uint32) { gl.DeleteQueries(1, &q) }

func (api) BeginQuery(target, q uint32) { gl.BeginQuery(target, q) }

func (api) EndQuery(target uint32) { gl.EndQuery(target) }

func (api) QueryResult(q uint32) uint64 {
	var v uint64
	gl.GetQueryObjectui64v(q, gl.QUERY_RESULT, &v)
	return v
}

func (api) FenceSync() uintptr {
	return gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
}

func (api) DeleteSync(sync uintptr) { gl.DeleteSync(sync) }

func (api) ClientWaitSync(sync uintptr, flags uint32, timeoutNanos uint64) uint32 {
	return gl.ClientWaitSync(sync, flags, timeoutNanos)
}

func (api) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (api) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (api) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (api) ClearDepth(d float32) { gl.ClearDepth(float64(d)) }

func (api) ClearStencil(s int32) { gl.ClearStencil(s) }

func (api) Clear(mask uint32) { gl.Clear(mask) }

func (api) ColorMask(r, g, b, a bool) { gl.ColorMask(r, g, b, a) }

func (api) DepthMask(write bool) { gl.DepthMask(write) }

func (api) DepthFunc(fn uint32) { gl.DepthFunc(fn) }

func (api) Enable(capability uint32) { gl.Enable(capability) }

func (api) Disable(capability uint32) { gl.Disable(capability) }

func (api) CullFace(mode uint32) { gl.CullFace(mode) }

func (api) FrontFace(dir uint32) { gl.FrontFace(dir) }

func (api) BlendFunc(sfactor, dfactor uint32) { gl.BlendFunc(sfactor, dfactor) }

func (api) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (api) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gl.DrawElementsWithOffset(mode, count, xtype, uintptr(offset))
}

func (api) Flush()  { gl.Flush() }
func (api) Finish() { gl.Finish() }
