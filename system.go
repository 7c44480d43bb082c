package prism

// System creates and owns every rendering object of one opened
// driver. All objects returned by Create methods stay owned by the
// system: Release returns one of them early, Close releases whatever
// is still alive.
//
// Systems are safe for concurrent object creation and release. The
// rendering methods of command buffers and swap chains follow the
// threading rules of the underlying driver; OpenGL backends require
// the context thread.
type System interface {
	// Name returns the driver name the system was opened with.
	Name() string

	// Caps returns the device capabilities, fixed at open time.
	Caps() Caps

	CreateSwapChain(desc SwapChainDescriptor, surface Surface) (SwapChain, error)
	CreateCommandBuffer(desc CommandBufferDescriptor) (CommandBuffer, error)
	CreateBuffer(desc BufferDescriptor, data []byte) (Buffer, error)
	CreateTexture(desc TextureDescriptor, data []byte) (Texture, error)
	CreateSampler(desc SamplerDescriptor) (Sampler, error)
	CreateShader(desc ShaderDescriptor) (Shader, error)
	CreatePipelineLayout(desc PipelineLayoutDescriptor) (PipelineLayout, error)
	CreatePipelineState(desc PipelineStateDescriptor) (PipelineState, error)
	CreateResourceHeap(desc ResourceHeapDescriptor) (ResourceHeap, error)
	CreateQueryHeap(desc QueryHeapDescriptor) (QueryHeap, error)
	CreateFence() (Fence, error)
	CreateRenderPass(desc RenderPassDescriptor) (RenderPass, error)
	CreateRenderTarget(desc RenderTargetDescriptor) (RenderTarget, error)

	// WriteBuffer copies data into buffer at offset. Writes beyond the
	// buffer size return ErrIndexOutOfRange.
	WriteBuffer(buffer Buffer, offset uint64, data []byte) error

	// ResolveRenderTarget downsamples every multisampled attachment of
	// target into its resolve destination. A no-op for single-sampled
	// targets. EndRenderPass does this implicitly.
	ResolveRenderTarget(target RenderTarget) error

	// ResolveToBackbuffer copies color attachment index of target onto
	// the backbuffer of the active swap chain. Returns
	// ErrIndexOutOfRange when the target has no such attachment.
	ResolveToBackbuffer(target RenderTarget, index uint32) error

	// Submit makes recorded work visible to the device queue.
	Submit(cmd CommandBuffer) error

	// WaitIdle blocks until the device finished all submitted work.
	WaitIdle()

	// Release destroys one object early. Releasing an object twice or
	// passing an object of another system is ignored outside of debug
	// mode.
	Release(resource Resource)

	// Close releases every object still alive and shuts the system
	// down.
	Close()
}
