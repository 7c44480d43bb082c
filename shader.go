package prism

// ShaderStage is a programmable pipeline stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageGeometry
)

// ShaderDescriptor describes a single-stage shader compiled from
// source.
type ShaderDescriptor struct {
	Label  string
	Stage  ShaderStage
	Source string
}

// Shader is one compiled pipeline stage.
type Shader interface {
	Resource

	Stage() ShaderStage
}
