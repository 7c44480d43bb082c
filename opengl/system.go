package opengl

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/prism"
)

// Options tune how the system wraps the driver.
type Options struct {
	// Label names the system in log output.
	Label string

	// LegacySamplers forces per-texture sampler emulation, for
	// drivers predating sampler objects. Emulated samplers live in
	// their own container.
	LegacySamplers bool
}

// System implements prism.System on an OpenGL style driver. Every
// created object lives in the container of its kind until released.
type System struct {
	name  string
	label string
	api   API
	state *StateManager
	caps  prism.Caps

	// vao is the one vertex array the core profile requires for
	// drawing; vertex layouts are applied into it per pipeline.
	vao uint32

	maxAnisotropy uint32

	programs *lru.Cache[programKey, *linkedProgram]

	swapChains     *container[SwapChain]
	commandBuffers *container[CommandBuffer]
	buffers        *container[Buffer]
	textures       *container[Texture]
	samplers       *container[Sampler]
	samplersLegacy *container[Sampler]
	shaders        *container[Shader]
	layouts        *container[PipelineLayout]
	pipelines      *container[PipelineState]
	heaps          *container[ResourceHeap]
	queryHeaps     *container[QueryHeap]
	fences         *container[Fence]
	renderPasses   *container[RenderPass]
	renderTargets  *container[RenderTarget]

	activeSwapChain *SwapChain
}

var _ prism.System = (*System)(nil)

// NewSystem wraps an initialized driver API. A context must be current
// on the calling thread; adapters usually call this from their Open.
func NewSystem(name string, api API, opts Options) (*System, error) {
	sys := &System{
		name:  name,
		label: opts.Label,
		api:   api,
		state: newStateManager(api),
		caps:  queryCaps(api, opts),

		swapChains:     newContainer[SwapChain]("swap chain"),
		commandBuffers: newContainer[CommandBuffer]("command buffer"),
		buffers:        newContainer[Buffer]("buffer"),
		textures:       newContainer[Texture]("texture"),
		samplers:       newContainer[Sampler]("sampler"),
		shaders:        newContainer[Shader]("shader"),
		layouts:        newContainer[PipelineLayout]("pipeline layout"),
		pipelines:      newContainer[PipelineState]("pipeline state"),
		heaps:          newContainer[ResourceHeap]("resource heap"),
		queryHeaps:     newContainer[QueryHeap]("query heap"),
		fences:         newContainer[Fence]("fence"),
		renderPasses:   newContainer[RenderPass]("render pass"),
		renderTargets:  newContainer[RenderTarget]("render target"),
	}
	if opts.LegacySamplers {
		sys.samplersLegacy = newContainer[Sampler]("legacy sampler")
	}
	sys.programs = newProgramCache(api, sys.state)
	if sys.caps.HasAnisotropicFilter {
		sys.maxAnisotropy = uint32(max(api.GetInteger(glMaxTextureMaxAnisotropy), 1))
	}

	sys.vao = api.GenVertexArray()
	sys.state.BindVertexArray(sys.vao)
	if err := checkError(api, "initialize render system"); err != nil {
		api.DeleteVertexArray(sys.vao)
		return nil, err
	}

	prism.Logger().Info("render system ready",
		"driver", name,
		"renderer", sys.caps.Renderer,
		"version", sys.caps.Version,
		"maxSamples", sys.caps.Limits.MaxSamples)
	return sys, nil
}

func (sys *System) Name() string     { return sys.name }
func (sys *System) Caps() prism.Caps { return sys.caps }

func (sys *System) validateTextureType(typ prism.TextureType) error {
	if (typ == prism.Texture1D || typ == prism.Texture1DArray) && !sys.caps.HasTexture1D {
		return fmt.Errorf("1D textures: %w", prism.ErrUnsupported)
	}
	return nil
}

func (sys *System) CreateSwapChain(desc prism.SwapChainDescriptor, surface prism.Surface) (prism.SwapChain, error) {
	sc, err := newSwapChain(sys, desc, surface)
	if err != nil {
		return nil, fmt.Errorf("creating swap chain: %w", err)
	}
	sc.handle = sys.swapChains.insert(sc)
	sys.activeSwapChain = sc
	return sc, nil
}

func (sys *System) CreateCommandBuffer(desc prism.CommandBufferDescriptor) (prism.CommandBuffer, error) {
	cmd := newCommandBuffer(sys, desc)
	cmd.handle = sys.commandBuffers.insert(cmd)
	return cmd, nil
}

func (sys *System) CreateBuffer(desc prism.BufferDescriptor, data []byte) (prism.Buffer, error) {
	b, err := newBuffer(sys, desc, data)
	if err != nil {
		return nil, fmt.Errorf("creating buffer: %w", err)
	}
	b.handle = sys.buffers.insert(b)
	return b, nil
}

func (sys *System) CreateTexture(desc prism.TextureDescriptor, data []byte) (prism.Texture, error) {
	tex, err := newTexture(sys, desc, data)
	if err != nil {
		return nil, fmt.Errorf("creating texture: %w", err)
	}
	tex.handle = sys.textures.insert(tex)
	return tex, nil
}

func (sys *System) CreateSampler(desc prism.SamplerDescriptor) (prism.Sampler, error) {
	s, err := newSampler(sys, desc)
	if err != nil {
		return nil, fmt.Errorf("creating sampler: %w", err)
	}
	s.handle = sys.samplerContainer(s).insert(s)
	return s, nil
}

// samplerContainer routes emulated samplers into their own container.
func (sys *System) samplerContainer(s *Sampler) *container[Sampler] {
	if s.id == 0 && sys.samplersLegacy != nil {
		return sys.samplersLegacy
	}
	return sys.samplers
}

func (sys *System) CreateShader(desc prism.ShaderDescriptor) (prism.Shader, error) {
	s, err := newShader(sys, desc)
	if err != nil {
		return nil, fmt.Errorf("creating shader: %w", err)
	}
	s.handle = sys.shaders.insert(s)
	return s, nil
}

func (sys *System) CreatePipelineLayout(desc prism.PipelineLayoutDescriptor) (prism.PipelineLayout, error) {
	l, err := newPipelineLayout(sys, desc)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline layout: %w", err)
	}
	l.handle = sys.layouts.insert(l)
	return l, nil
}

func (sys *System) CreatePipelineState(desc prism.PipelineStateDescriptor) (prism.PipelineState, error) {
	p, err := newPipelineState(sys, desc)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline state: %w", err)
	}
	p.handle = sys.pipelines.insert(p)
	return p, nil
}

func (sys *System) CreateResourceHeap(desc prism.ResourceHeapDescriptor) (prism.ResourceHeap, error) {
	h, err := newResourceHeap(sys, desc)
	if err != nil {
		return nil, fmt.Errorf("creating resource heap: %w", err)
	}
	h.handle = sys.heaps.insert(h)
	return h, nil
}

func (sys *System) CreateQueryHeap(desc prism.QueryHeapDescriptor) (prism.QueryHeap, error) {
	h, err := newQueryHeap(sys, desc)
	if err != nil {
		return nil, fmt.Errorf("creating query heap: %w", err)
	}
	h.handle = sys.queryHeaps.insert(h)
	return h, nil
}

func (sys *System) CreateFence() (prism.Fence, error) {
	f := newFence(sys)
	f.handle = sys.fences.insert(f)
	return f, nil
}

func (sys *System) CreateRenderPass(desc prism.RenderPassDescriptor) (prism.RenderPass, error) {
	p, err := newRenderPass(sys, desc)
	if err != nil {
		return nil, fmt.Errorf("creating render pass: %w", err)
	}
	p.handle = sys.renderPasses.insert(p)
	return p, nil
}

func (sys *System) CreateRenderTarget(desc prism.RenderTargetDescriptor) (prism.RenderTarget, error) {
	rt, err := newRenderTarget(sys, desc)
	if err != nil {
		return nil, fmt.Errorf("creating render target: %w", err)
	}
	rt.handle = sys.renderTargets.insert(rt)
	return rt, nil
}

func (sys *System) WriteBuffer(buffer prism.Buffer, offset uint64, data []byte) error {
	b, ok := buffer.(*Buffer)
	if !ok {
		return fmt.Errorf("foreign buffer implementation %T", buffer)
	}
	return b.write(sys.state, offset, data)
}

func (sys *System) ResolveRenderTarget(target prism.RenderTarget) error {
	switch t := target.(type) {
	case *RenderTarget:
		t.ResolveMultisampled(sys.state)
		return nil
	case *SwapChain:
		// The backbuffer resolves on present.
		return nil
	}
	return fmt.Errorf("foreign render target implementation %T", target)
}

func (sys *System) ResolveToBackbuffer(target prism.RenderTarget, index uint32) error {
	rt, ok := target.(*RenderTarget)
	if !ok {
		return fmt.Errorf("foreign render target implementation %T", target)
	}
	sc := sys.activeSwapChain
	if sc == nil {
		return fmt.Errorf("no swap chain to resolve into")
	}
	return rt.resolveToBackbuffer(sys.state, index, sc.resolution)
}

func (sys *System) Submit(cmd prism.CommandBuffer) error {
	if _, ok := cmd.(*CommandBuffer); !ok {
		return fmt.Errorf("foreign command buffer implementation %T", cmd)
	}
	// Commands ran when they were recorded, make them visible.
	sys.api.Flush()
	return nil
}

func (sys *System) WaitIdle() {
	sys.api.Finish()
}

// Release destroys one object early. Objects of other systems and
// doubly released objects are ignored, or panic under PRISM_DEBUG.
func (sys *System) Release(resource prism.Resource) {
	switch r := resource.(type) {
	case *SwapChain:
		if sys.swapChains.take(r.handle) != nil && sys.activeSwapChain == r {
			sys.activeSwapChain = nil
		}
	case *CommandBuffer:
		sys.commandBuffers.take(r.handle)
	case *Buffer:
		if sys.buffers.take(r.handle) != nil {
			r.release(sys.api, sys.state)
		}
	case *Texture:
		if sys.textures.take(r.handle) != nil {
			r.release(sys.api)
		}
	case *Sampler:
		if sys.samplerContainer(r).take(r.handle) != nil {
			r.release(sys.api)
		}
	case *Shader:
		if sys.shaders.take(r.handle) != nil {
			r.release(sys.api)
		}
	case *PipelineLayout:
		sys.layouts.take(r.handle)
	case *PipelineState:
		if sys.pipelines.take(r.handle) != nil {
			r.release()
		}
	case *ResourceHeap:
		sys.heaps.take(r.handle)
	case *QueryHeap:
		if sys.queryHeaps.take(r.handle) != nil {
			r.release(sys.api)
		}
	case *Fence:
		if sys.fences.take(r.handle) != nil {
			r.release(sys.api)
		}
	case *RenderPass:
		if r.handle == 0 {
			// Derived passes belong to their render target.
			return
		}
		sys.renderPasses.take(r.handle)
	case *RenderTarget:
		if sys.renderTargets.take(r.handle) != nil {
			r.destroy(sys.api, sys.state)
		}
	default:
		prism.Logger().Warn("release of a foreign resource", "type", fmt.Sprintf("%T", resource))
	}
}

// Close releases every object still alive, dependents before their
// dependencies, and shuts the system down.
func (sys *System) Close() {
	api, st := sys.api, sys.state

	sys.commandBuffers.drain(func(*CommandBuffer) {})
	sys.swapChains.drain(func(*SwapChain) {})
	sys.renderTargets.drain(func(rt *RenderTarget) { rt.destroy(api, st) })
	sys.heaps.drain(func(*ResourceHeap) {})
	sys.pipelines.drain(func(p *PipelineState) { p.release() })
	sys.layouts.drain(func(*PipelineLayout) {})
	sys.shaders.drain(func(s *Shader) { s.release(api) })
	sys.queryHeaps.drain(func(h *QueryHeap) { h.release(api) })
	sys.fences.drain(func(f *Fence) { f.release(api) })
	if sys.samplersLegacy != nil {
		sys.samplersLegacy.drain(func(s *Sampler) { s.release(api) })
	}
	sys.samplers.drain(func(s *Sampler) { s.release(api) })
	sys.textures.drain(func(t *Texture) { t.release(api) })
	sys.buffers.drain(func(b *Buffer) { b.release(api, st) })
	sys.renderPasses.drain(func(*RenderPass) {})

	sys.programs.Purge()
	if sys.vao != 0 {
		api.DeleteVertexArray(sys.vao)
		st.NotifyVertexArrayReleased(sys.vao)
		sys.vao = 0
	}
	sys.activeSwapChain = nil

	prism.Logger().Info("render system closed", "driver", sys.name)
}
