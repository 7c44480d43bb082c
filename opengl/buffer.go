package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// Buffer is a region of device memory.
type Buffer struct {
	sys    *System
	handle Handle
	label  string

	id     uint32
	target uint32
	size   uint64
}

var _ prism.Buffer = (*Buffer)(nil)

func bufferTarget(usage prism.BufferUsage) uint32 {
	switch usage {
	case prism.BufferIndex:
		return glElementArrayBuffer
	case prism.BufferUniform:
		return glUniformBuffer
	}
	return glArrayBuffer
}

func newBuffer(sys *System, desc prism.BufferDescriptor, data []byte) (*Buffer, error) {
	size := desc.Size
	if size == 0 {
		size = uint64(len(data))
	}
	if size == 0 {
		return nil, fmt.Errorf("buffer size is zero")
	}
	if uint64(len(data)) > size {
		return nil, fmt.Errorf("initial data of %d bytes exceeds buffer size %d", len(data), size)
	}

	api, st := sys.api, sys.state
	b := &Buffer{
		sys:    sys,
		label:  desc.Label,
		id:     api.GenBuffer(),
		target: bufferTarget(desc.Usage),
		size:   size,
	}

	usage := uint32(glStaticDraw)
	if desc.Dynamic {
		usage = glDynamicDraw
	}
	b.bind(st)
	api.BufferData(b.target, int(size), data, usage)
	if err := checkError(api, "create buffer"); err != nil {
		api.DeleteBuffer(b.id)
		return nil, err
	}
	return b, nil
}

// bind makes the buffer current on its target. Element array bindings
// are vertex array state, so the shared vertex array is bound first to
// keep the binding from leaking into nothing.
func (b *Buffer) bind(st *StateManager) {
	switch b.target {
	case glArrayBuffer:
		st.BindArrayBuffer(b.id)
	case glElementArrayBuffer:
		st.BindVertexArray(b.sys.vao)
		st.api.BindBuffer(glElementArrayBuffer, b.id)
	default:
		st.api.BindBuffer(b.target, b.id)
	}
}

// write copies data into the buffer at offset.
func (b *Buffer) write(st *StateManager, offset uint64, data []byte) error {
	if offset+uint64(len(data)) > b.size {
		return fmt.Errorf("write of %d bytes at offset %d into a %d byte buffer: %w",
			len(data), offset, b.size, prism.ErrIndexOutOfRange)
	}
	b.bind(st)
	st.api.BufferSubData(b.target, int(offset), data)
	debugCheck(st.api, "write buffer")
	return nil
}

func (b *Buffer) release(api API, st *StateManager) {
	if b.id != 0 {
		api.DeleteBuffer(b.id)
		st.NotifyBufferReleased(b.id)
		b.id = 0
	}
}

func (b *Buffer) Label() string         { return b.label }
func (b *Buffer) SetLabel(label string) { b.label = label }
func (b *Buffer) Size() uint64          { return b.size }
