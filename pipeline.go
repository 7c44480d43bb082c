package prism

// BindingKind is the resource class a pipeline layout slot accepts.
type BindingKind uint8

const (
	BindingTexture BindingKind = iota
	BindingSampler
	BindingUniformBuffer
)

// BindingDescriptor is one slot of a pipeline layout. Name must match
// the uniform in the shader source.
type BindingDescriptor struct {
	Name string
	Slot uint32
	Kind BindingKind
}

// PipelineLayoutDescriptor describes the resource bindings a pipeline
// expects.
type PipelineLayoutDescriptor struct {
	Label    string
	Bindings []BindingDescriptor
}

// PipelineLayout is the binding interface between resource heaps and
// pipeline states.
type PipelineLayout interface {
	Resource

	// NumBindings returns the slot count of the layout.
	NumBindings() uint32
}

// VertexFormat is the element type of one vertex attribute.
type VertexFormat uint8

const (
	VertexFloat32 VertexFormat = iota
	VertexFloat32x2
	VertexFloat32x3
	VertexFloat32x4
	VertexUint8x4Norm
)

// VertexAttribute describes one input of the vertex stage.
type VertexAttribute struct {
	// Location is the attribute index in the shader.
	Location uint32
	Format   VertexFormat
	// Offset in bytes from the start of a vertex.
	Offset uint32
}

// PrimitiveTopology selects how vertices assemble into primitives.
type PrimitiveTopology uint8

const (
	TopologyTriangleList PrimitiveTopology = iota
	TopologyTriangleStrip
	TopologyLineList
	TopologyPointList
)

// CompareOp is a comparison used for depth testing.
type CompareOp uint8

const (
	CompareLess CompareOp = iota
	CompareLessEqual
	CompareEqual
	CompareGreater
	CompareGreaterEqual
	CompareAlways
	CompareNever
)

// CullMode selects which triangle faces are discarded.
type CullMode uint8

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// BlendMode is a fixed set of common blend equations.
type BlendMode uint8

const (
	BlendNone BlendMode = iota
	BlendAlpha
	BlendAdditive
)

// PipelineStateDescriptor bundles shaders and fixed-function state.
type PipelineStateDescriptor struct {
	Label  string
	Layout PipelineLayout

	VertexShader   Shader
	FragmentShader Shader
	// GeometryShader is optional.
	GeometryShader Shader

	VertexAttributes []VertexAttribute
	// VertexStride is the byte distance between consecutive vertices.
	VertexStride uint32

	Topology PrimitiveTopology

	DepthTest    bool
	DepthWrite   bool
	DepthCompare CompareOp

	Cull  CullMode
	Blend BlendMode

	// RenderPass the pipeline will render into. Optional, used for
	// validation against the bound target.
	RenderPass RenderPass
}

// PipelineState is a compiled, immutable pipeline configuration.
type PipelineState interface {
	Resource
}
