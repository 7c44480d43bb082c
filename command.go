package prism

// ClearFlags selects which attachment classes Clear touches.
type ClearFlags uint8

const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
	ClearStencil

	ClearColorDepth = ClearColor | ClearDepth
	ClearAll        = ClearColor | ClearDepth | ClearStencil
)

// ClearValue carries the values Clear writes.
type ClearValue struct {
	Color   [4]float32
	Depth   float32
	Stencil uint32
}

// IndexFormat is the element type of an index buffer.
type IndexFormat uint8

const (
	IndexUint16 IndexFormat = iota
	IndexUint32
)

// CommandBufferDescriptor describes a command buffer.
type CommandBufferDescriptor struct {
	Label string
}

// CommandBuffer records rendering work. Backends may execute commands
// immediately; Submit on the System makes the ordering explicit either
// way.
type CommandBuffer interface {
	Resource

	// Begin starts recording. Pairs with End.
	Begin()

	// End finishes recording and reports errors accumulated while
	// recording.
	End() error

	// BeginRenderPass directs subsequent draws into target, which may
	// also be a swap chain. Pairs with EndRenderPass, which performs
	// any pending multisample resolve of the target.
	BeginRenderPass(target RenderTarget)
	EndRenderPass()

	// Clear fills the selected attachment classes of the bound target.
	Clear(flags ClearFlags, value ClearValue)

	SetViewport(x, y int32, extent Extent2D)
	SetScissor(x, y int32, extent Extent2D)

	SetPipeline(pipeline PipelineState)
	SetVertexBuffer(buffer Buffer)
	SetIndexBuffer(buffer Buffer, format IndexFormat)

	// SetResourceHeap binds descriptor set index set of heap. Returns
	// ErrIndexOutOfRange when set is beyond the heap's sets.
	SetResourceHeap(heap ResourceHeap, set uint32) error

	Draw(numVertices, firstVertex uint32)
	DrawIndexed(numIndices, firstIndex uint32)

	// BeginQuery and EndQuery bracket work measured by query index
	// query of heap.
	BeginQuery(heap QueryHeap, query uint32) error
	EndQuery(heap QueryHeap, query uint32) error
}
