package prism

// BufferUsage selects what a buffer binds as.
type BufferUsage uint8

const (
	BufferVertex BufferUsage = iota
	BufferIndex
	BufferUniform
)

// BufferDescriptor describes a device buffer.
type BufferDescriptor struct {
	Label string
	// Size in bytes. When initial data is passed to CreateBuffer a
	// zero Size takes the data length.
	Size  uint64
	Usage BufferUsage
	// Dynamic hints that the contents change often.
	Dynamic bool
}

// Buffer is a region of device memory.
type Buffer interface {
	Resource

	// Size returns the allocated byte size.
	Size() uint64
}
