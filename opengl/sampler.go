package opengl

import (
	"github.com/oliverbestmann/prism"
)

// Sampler controls texture filtering and addressing. With sampler
// objects it wraps one driver object; in legacy mode it only keeps the
// parameters and writes them onto textures as they are bound together
// in a resource heap.
type Sampler struct {
	sys    *System
	handle Handle
	label  string

	// id is zero in legacy mode.
	id   uint32
	desc prism.SamplerDescriptor
}

var _ prism.Sampler = (*Sampler)(nil)

func newSampler(sys *System, desc prism.SamplerDescriptor) (*Sampler, error) {
	s := &Sampler{sys: sys, label: desc.Label, desc: desc}
	if !sys.caps.HasSamplerObjects {
		return s, nil
	}

	api := sys.api
	s.id = api.GenSampler()
	s.applyParams(
		func(pname uint32, v int32) { api.SamplerParameteri(s.id, pname, v) },
		func(pname uint32, v float32) { api.SamplerParameterf(s.id, pname, v) },
	)
	if err := checkError(api, "create sampler"); err != nil {
		api.DeleteSampler(s.id)
		return nil, err
	}
	return s, nil
}

func (s *Sampler) applyParams(seti func(pname uint32, v int32), setf func(pname uint32, v float32)) {
	d := &s.desc
	seti(glTextureMinFilter, minFilterToGL(d.MinFilter, d.MipFilter, d.Mipmaps))
	seti(glTextureMagFilter, filterToGL(d.MagFilter))
	seti(glTextureWrapS, wrapToGL(d.WrapU))
	seti(glTextureWrapT, wrapToGL(d.WrapV))
	seti(glTextureWrapR, wrapToGL(d.WrapW))
	setf(glTextureMinLOD, d.MinLOD)
	if d.MaxLOD > 0 {
		setf(glTextureMaxLOD, d.MaxLOD)
	}
	if d.Anisotropy > 1 && s.sys.caps.HasAnisotropicFilter {
		limit := s.sys.maxAnisotropy
		setf(glTextureMaxAnisotropy, float32(clamp(d.Anisotropy, 1, limit)))
	}
}

// bind makes the sampler active on a texture unit. A legacy sampler
// writes its parameters onto tex instead, which the caller already
// bound at the unit.
func (s *Sampler) bind(st *StateManager, unit uint32, tex *Texture) {
	if s.id != 0 {
		st.api.BindSampler(unit, s.id)
		return
	}
	if tex == nil {
		prism.Logger().Warn("legacy sampler without a texture at its slot", "sampler", s.label)
		return
	}
	api := st.api
	s.applyParams(
		func(pname uint32, v int32) { api.TexParameteri(tex.glTarget, pname, v) },
		func(pname uint32, v float32) { api.TexParameterf(tex.glTarget, pname, v) },
	)
}

func (s *Sampler) release(api API) {
	if s.id != 0 {
		api.DeleteSampler(s.id)
		s.id = 0
	}
}

func (s *Sampler) Label() string         { return s.label }
func (s *Sampler) SetLabel(label string) { s.label = label }
