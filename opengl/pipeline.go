package opengl

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/prism"
)

// PipelineLayout lists the binding slots a pipeline expects.
type PipelineLayout struct {
	sys    *System
	handle Handle
	label  string

	bindings []prism.BindingDescriptor
}

var _ prism.PipelineLayout = (*PipelineLayout)(nil)

func newPipelineLayout(sys *System, desc prism.PipelineLayoutDescriptor) (*PipelineLayout, error) {
	for i, b := range desc.Bindings {
		if b.Name == "" {
			return nil, fmt.Errorf("layout binding %d has no name", i)
		}
	}
	return &PipelineLayout{
		sys:      sys,
		label:    desc.Label,
		bindings: append([]prism.BindingDescriptor(nil), desc.Bindings...),
	}, nil
}

func (l *PipelineLayout) Label() string         { return l.label }
func (l *PipelineLayout) SetLabel(label string) { l.label = label }
func (l *PipelineLayout) NumBindings() uint32   { return uint32(len(l.bindings)) }

// programKey identifies a linked program by its shader objects and
// layout. Pipelines sharing both share the program.
type programKey struct {
	vertex, fragment, geometry uint32
	layout                     Handle
}

// linkedProgram is a cache entry. refs counts the pipelines using it;
// an entry evicted while referenced lives on as an orphan until the
// last pipeline lets go.
type linkedProgram struct {
	id       uint32
	refs     int
	orphaned bool
}

const programCacheSize = 128

func newProgramCache(api API, st *StateManager) *lru.Cache[programKey, *linkedProgram] {
	cache, _ := lru.NewWithEvict(programCacheSize, func(_ programKey, lp *linkedProgram) {
		lp.orphaned = true
		if lp.refs == 0 {
			api.DeleteProgram(lp.id)
			st.NotifyProgramReleased(lp.id)
		}
	})
	return cache
}

// acquireProgram returns the linked program for key, linking and
// wiring the layout's binding slots on a cache miss. Call on the
// context thread.
func (sys *System) acquireProgram(key programKey, layout *PipelineLayout) (*linkedProgram, error) {
	if lp, ok := sys.programs.Get(key); ok {
		lp.refs++
		return lp, nil
	}

	api := sys.api
	prog := api.CreateProgram()
	for _, shader := range []uint32{key.vertex, key.fragment, key.geometry} {
		if shader != 0 {
			api.AttachShader(prog, shader)
		}
	}
	api.LinkProgram(prog)
	if api.ProgramParameter(prog, glLinkStatus) == 0 {
		log := strings.TrimSpace(api.ProgramInfoLog(prog))
		api.DeleteProgram(prog)
		return nil, fmt.Errorf("linking program: %s", log)
	}

	// Samplers point at their texture units and uniform blocks at
	// their buffer bindings once per program.
	if layout != nil {
		sys.state.UseProgram(prog)
		for _, b := range layout.bindings {
			switch b.Kind {
			case prism.BindingTexture:
				if loc := api.UniformLocation(prog, b.Name); loc >= 0 {
					api.Uniform1i(loc, int32(b.Slot))
				} else {
					prism.Logger().Warn("layout binding not found in program", "name", b.Name)
				}
			case prism.BindingUniformBuffer:
				if idx := api.UniformBlockIndex(prog, b.Name); idx != glInvalidIndex {
					api.UniformBlockBinding(prog, idx, b.Slot)
				} else {
					prism.Logger().Warn("layout uniform block not found in program", "name", b.Name)
				}
			}
		}
	}

	lp := &linkedProgram{id: prog, refs: 1}
	sys.programs.Add(key, lp)
	return lp, nil
}

// releaseProgram drops one pipeline's reference.
func (sys *System) releaseProgram(lp *linkedProgram) {
	if lp == nil {
		return
	}
	lp.refs--
	if lp.refs == 0 && lp.orphaned {
		sys.api.DeleteProgram(lp.id)
		sys.state.NotifyProgramReleased(lp.id)
	}
}

// PipelineState is an immutable bundle of program and fixed-function
// state. The shaders it was built from may be released afterwards, the
// linked program keeps their code alive.
type PipelineState struct {
	sys    *System
	handle Handle
	label  string

	key    programKey
	linked *linkedProgram

	attribs  []prism.VertexAttribute
	stride   int32
	topology uint32

	depthTest  bool
	depthWrite bool
	depthFunc  uint32

	cull  prism.CullMode
	blend prism.BlendMode
}

var _ prism.PipelineState = (*PipelineState)(nil)

func newPipelineState(sys *System, desc prism.PipelineStateDescriptor) (*PipelineState, error) {
	vs, err := asShader(desc.VertexShader, prism.StageVertex)
	if err != nil {
		return nil, err
	}
	if vs == nil {
		return nil, fmt.Errorf("pipeline has no vertex shader")
	}
	fs, err := asShader(desc.FragmentShader, prism.StageFragment)
	if err != nil {
		return nil, err
	}
	gs, err := asShader(desc.GeometryShader, prism.StageGeometry)
	if err != nil {
		return nil, err
	}

	var layout *PipelineLayout
	if desc.Layout != nil {
		l, ok := desc.Layout.(*PipelineLayout)
		if !ok {
			return nil, fmt.Errorf("foreign pipeline layout implementation %T", desc.Layout)
		}
		layout = l
	}

	key := programKey{vertex: vs.id}
	if fs != nil {
		key.fragment = fs.id
	}
	if gs != nil {
		key.geometry = gs.id
	}
	if layout != nil {
		key.layout = layout.handle
	}

	linked, err := sys.acquireProgram(key, layout)
	if err != nil {
		return nil, err
	}

	return &PipelineState{
		sys:        sys,
		label:      desc.Label,
		key:        key,
		linked:     linked,
		attribs:    append([]prism.VertexAttribute(nil), desc.VertexAttributes...),
		stride:     int32(desc.VertexStride),
		topology:   topologyToGL(desc.Topology),
		depthTest:  desc.DepthTest,
		depthWrite: desc.DepthWrite,
		depthFunc:  compareToGL(desc.DepthCompare),
		cull:       desc.Cull,
		blend:      desc.Blend,
	}, nil
}

func asShader(s prism.Shader, want prism.ShaderStage) (*Shader, error) {
	if s == nil {
		return nil, nil
	}
	shader, ok := s.(*Shader)
	if !ok {
		return nil, fmt.Errorf("foreign shader implementation %T", s)
	}
	if shader.stage != want {
		return nil, fmt.Errorf("%s shader in the %s stage slot", stageName(shader.stage), stageName(want))
	}
	return shader, nil
}

// apply makes the pipeline's program and fixed state current.
func (p *PipelineState) apply(st *StateManager) {
	api := st.api

	// Refresh recency so heavily used programs stay cached.
	p.sys.programs.Get(p.key)
	st.UseProgram(p.linked.id)

	if p.depthTest {
		api.Enable(glDepthTest)
		api.DepthFunc(p.depthFunc)
	} else {
		api.Disable(glDepthTest)
	}
	api.DepthMask(p.depthWrite)

	switch p.cull {
	case prism.CullNone:
		api.Disable(glCullFace)
	case prism.CullFront:
		api.Enable(glCullFace)
		api.FrontFace(glCCW)
		api.CullFace(glFront)
	default:
		api.Enable(glCullFace)
		api.FrontFace(glCCW)
		api.CullFace(glBack)
	}

	switch p.blend {
	case prism.BlendAlpha:
		api.Enable(glBlend)
		api.BlendFunc(glSrcAlpha, glOneMinusSrcAlpha)
	case prism.BlendAdditive:
		api.Enable(glBlend)
		api.BlendFunc(glOne, glOne)
	default:
		api.Disable(glBlend)
	}
}

// applyVertexLayout points the enabled attributes into the bound
// array buffer.
func (p *PipelineState) applyVertexLayout(api API) {
	for _, a := range p.attribs {
		size, xtype, normalized := vertexFormatToGL(a.Format)
		api.EnableVertexAttribArray(a.Location)
		api.VertexAttribPointer(a.Location, size, xtype, normalized, p.stride, int(a.Offset))
	}
}

func (p *PipelineState) release() {
	p.sys.releaseProgram(p.linked)
	p.linked = nil
}

func (p *PipelineState) Label() string         { return p.label }
func (p *PipelineState) SetLabel(label string) { p.label = label }
