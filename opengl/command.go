package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// CommandBuffer executes commands immediately against the context, in
// the order they are recorded. Errors hit during recording are kept
// and reported by End.
type CommandBuffer struct {
	sys    *System
	handle Handle
	label  string

	recording bool
	err       error

	// target is the render target of the open pass, nil between
	// passes or when rendering to a swap chain.
	target   *RenderTarget
	extent   prism.Extent2D
	pipeline *PipelineState
	indexGL  uint32
	indexLen int
}

var _ prism.CommandBuffer = (*CommandBuffer)(nil)

func newCommandBuffer(sys *System, desc prism.CommandBufferDescriptor) *CommandBuffer {
	return &CommandBuffer{sys: sys, label: desc.Label}
}

func (c *CommandBuffer) fail(err error) {
	if c.err == nil {
		c.err = err
	}
	prism.Logger().Error("command recording failed", "cmd", c.label, "err", err)
}

func (c *CommandBuffer) Begin() {
	c.recording = true
	c.err = nil
	c.pipeline = nil
}

func (c *CommandBuffer) End() error {
	c.recording = false
	err := c.err
	c.err = nil
	return err
}

// BeginRenderPass binds target and sets the viewport to its full
// resolution. Swap chains bind the default framebuffer.
func (c *CommandBuffer) BeginRenderPass(target prism.RenderTarget) {
	st := c.sys.state
	switch t := target.(type) {
	case *RenderTarget:
		st.BindFramebuffer(t.fbo.id)
		c.target = t
		c.extent = t.resolution
	case *SwapChain:
		st.BindFramebuffer(0)
		c.target = nil
		c.extent = t.resolution
		c.sys.activeSwapChain = t
	default:
		c.fail(fmt.Errorf("foreign render target implementation %T", target))
		return
	}
	c.SetViewport(0, 0, c.extent)
}

// EndRenderPass resolves the target's multisampled attachments into
// their destinations, if it has any.
func (c *CommandBuffer) EndRenderPass() {
	if c.target != nil {
		c.target.ResolveMultisampled(c.sys.state)
		c.target = nil
	}
	debugCheck(c.sys.api, "end render pass")
}

func (c *CommandBuffer) Clear(flags prism.ClearFlags, value prism.ClearValue) {
	api := c.sys.api
	var mask uint32
	if flags&prism.ClearColor != 0 {
		col := value.Color
		api.ClearColor(col[0], col[1], col[2], col[3])
		mask |= glColorBufferBit
	}
	if flags&prism.ClearDepth != 0 {
		// Clears respect the depth write mask.
		api.DepthMask(true)
		api.ClearDepth(value.Depth)
		mask |= glDepthBufferBit
	}
	if flags&prism.ClearStencil != 0 {
		api.ClearStencil(int32(value.Stencil))
		mask |= glStencilBufferBit
	}
	if mask == 0 {
		return
	}
	api.Clear(mask)
	if flags&prism.ClearDepth != 0 && c.pipeline != nil {
		api.DepthMask(c.pipeline.depthWrite)
	}
}

func (c *CommandBuffer) SetViewport(x, y int32, extent prism.Extent2D) {
	c.sys.api.Viewport(x, y, int32(extent.Width), int32(extent.Height))
}

func (c *CommandBuffer) SetScissor(x, y int32, extent prism.Extent2D) {
	api := c.sys.api
	api.Enable(glScissorTest)
	api.Scissor(x, y, int32(extent.Width), int32(extent.Height))
}

func (c *CommandBuffer) SetPipeline(pipeline prism.PipelineState) {
	p, ok := pipeline.(*PipelineState)
	if !ok {
		c.fail(fmt.Errorf("foreign pipeline implementation %T", pipeline))
		return
	}
	c.pipeline = p
	p.apply(c.sys.state)
}

// SetVertexBuffer binds buffer as the vertex source and lays the
// current pipeline's attributes over it. Call after SetPipeline.
func (c *CommandBuffer) SetVertexBuffer(buffer prism.Buffer) {
	b, ok := buffer.(*Buffer)
	if !ok {
		c.fail(fmt.Errorf("foreign buffer implementation %T", buffer))
		return
	}
	if c.pipeline == nil {
		c.fail(fmt.Errorf("vertex buffer set before pipeline"))
		return
	}
	st := c.sys.state
	st.BindVertexArray(c.sys.vao)
	st.BindArrayBuffer(b.id)
	c.pipeline.applyVertexLayout(c.sys.api)
}

func (c *CommandBuffer) SetIndexBuffer(buffer prism.Buffer, format prism.IndexFormat) {
	b, ok := buffer.(*Buffer)
	if !ok {
		c.fail(fmt.Errorf("foreign buffer implementation %T", buffer))
		return
	}
	st := c.sys.state
	st.BindVertexArray(c.sys.vao)
	st.api.BindBuffer(glElementArrayBuffer, b.id)
	if format == prism.IndexUint32 {
		c.indexGL, c.indexLen = glUnsignedInt, 4
	} else {
		c.indexGL, c.indexLen = glUnsignedShort, 2
	}
}

func (c *CommandBuffer) SetResourceHeap(heap prism.ResourceHeap, set uint32) error {
	h, ok := heap.(*ResourceHeap)
	if !ok {
		return fmt.Errorf("foreign resource heap implementation %T", heap)
	}
	return h.bind(c.sys.state, set)
}

func (c *CommandBuffer) Draw(numVertices, firstVertex uint32) {
	if c.pipeline == nil {
		c.fail(fmt.Errorf("draw without a pipeline"))
		return
	}
	c.sys.api.DrawArrays(c.pipeline.topology, int32(firstVertex), int32(numVertices))
	debugCheck(c.sys.api, "draw")
}

func (c *CommandBuffer) DrawIndexed(numIndices, firstIndex uint32) {
	if c.pipeline == nil {
		c.fail(fmt.Errorf("draw without a pipeline"))
		return
	}
	if c.indexLen == 0 {
		c.fail(fmt.Errorf("indexed draw without an index buffer"))
		return
	}
	offset := int(firstIndex) * c.indexLen
	c.sys.api.DrawElements(c.pipeline.topology, int32(numIndices), c.indexGL, offset)
	debugCheck(c.sys.api, "draw indexed")
}

func (c *CommandBuffer) BeginQuery(heap prism.QueryHeap, query uint32) error {
	h, ok := heap.(*QueryHeap)
	if !ok {
		return fmt.Errorf("foreign query heap implementation %T", heap)
	}
	id, err := h.query(query)
	if err != nil {
		return err
	}
	c.sys.api.BeginQuery(h.target, id)
	return nil
}

func (c *CommandBuffer) EndQuery(heap prism.QueryHeap, query uint32) error {
	h, ok := heap.(*QueryHeap)
	if !ok {
		return fmt.Errorf("foreign query heap implementation %T", heap)
	}
	if _, err := h.query(query); err != nil {
		return err
	}
	c.sys.api.EndQuery(h.target)
	return nil
}

func (c *CommandBuffer) Label() string         { return c.label }
func (c *CommandBuffer) SetLabel(label string) { c.label = label }
