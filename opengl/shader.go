package opengl

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/prism"
)

// Shader is one compiled pipeline stage.
type Shader struct {
	sys    *System
	handle Handle
	label  string

	id    uint32
	stage prism.ShaderStage
}

var _ prism.Shader = (*Shader)(nil)

func stageToGL(s prism.ShaderStage) uint32 {
	switch s {
	case prism.StageFragment:
		return glFragmentShader
	case prism.StageGeometry:
		return glGeometryShader
	}
	return glVertexShader
}

func stageName(s prism.ShaderStage) string {
	switch s {
	case prism.StageFragment:
		return "fragment"
	case prism.StageGeometry:
		return "geometry"
	}
	return "vertex"
}

func newShader(sys *System, desc prism.ShaderDescriptor) (*Shader, error) {
	if strings.TrimSpace(desc.Source) == "" {
		return nil, fmt.Errorf("%s shader has no source", stageName(desc.Stage))
	}

	api := sys.api
	id := api.CreateShader(stageToGL(desc.Stage))
	if id == 0 {
		if err := checkError(api, "create shader"); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("driver returned no shader object")
	}

	api.ShaderSource(id, desc.Source)
	api.CompileShader(id)
	if api.ShaderParameter(id, glCompileStatus) == 0 {
		log := strings.TrimSpace(api.ShaderInfoLog(id))
		api.DeleteShader(id)
		return nil, fmt.Errorf("compiling %s shader: %s", stageName(desc.Stage), log)
	}

	return &Shader{
		sys:   sys,
		label: desc.Label,
		id:    id,
		stage: desc.Stage,
	}, nil
}

func (s *Shader) release(api API) {
	if s.id != 0 {
		api.DeleteShader(s.id)
		s.id = 0
	}
}

func (s *Shader) Label() string            { return s.label }
func (s *Shader) SetLabel(label string)    { s.label = label }
func (s *Shader) Stage() prism.ShaderStage { return s.stage }
