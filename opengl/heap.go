package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// ResourceHeap binds whole descriptor sets against a pipeline layout
// in one call. The heap validates its resources once at creation, the
// per-frame bind stays cheap.
type ResourceHeap struct {
	sys    *System
	handle Handle
	label  string

	layout    *PipelineLayout
	resources []prism.Resource
}

var _ prism.ResourceHeap = (*ResourceHeap)(nil)

func newResourceHeap(sys *System, desc prism.ResourceHeapDescriptor) (*ResourceHeap, error) {
	layout, ok := desc.Layout.(*PipelineLayout)
	if !ok || layout == nil {
		return nil, fmt.Errorf("resource heap needs a pipeline layout, got %T", desc.Layout)
	}
	n := len(layout.bindings)
	if n == 0 {
		return nil, fmt.Errorf("resource heap layout has no bindings")
	}
	if len(desc.Resources) == 0 || len(desc.Resources)%n != 0 {
		return nil, fmt.Errorf("%d resources do not fill descriptor sets of %d bindings", len(desc.Resources), n)
	}

	for i, res := range desc.Resources {
		b := layout.bindings[i%n]
		var ok bool
		switch b.Kind {
		case prism.BindingTexture:
			_, ok = res.(*Texture)
		case prism.BindingSampler:
			_, ok = res.(*Sampler)
		case prism.BindingUniformBuffer:
			var buf *Buffer
			if buf, ok = res.(*Buffer); ok && buf.target != glUniformBuffer {
				return nil, fmt.Errorf("resource %d: buffer %q is not a uniform buffer", i, buf.label)
			}
		}
		if !ok {
			return nil, fmt.Errorf("resource %d: %T cannot bind to %q", i, res, b.Name)
		}
	}

	return &ResourceHeap{
		sys:       sys,
		label:     desc.Label,
		layout:    layout,
		resources: append([]prism.Resource(nil), desc.Resources...),
	}, nil
}

func (h *ResourceHeap) NumSets() uint32 {
	return uint32(len(h.resources) / len(h.layout.bindings))
}

// bind makes descriptor set index set current. Textures bind before
// legacy samplers so the samplers find their texture at the slot.
func (h *ResourceHeap) bind(st *StateManager, set uint32) error {
	if set >= h.NumSets() {
		return fmt.Errorf("descriptor set %d of a heap with %d: %w", set, h.NumSets(), prism.ErrIndexOutOfRange)
	}

	n := len(h.layout.bindings)
	resources := h.resources[int(set)*n : (int(set)+1)*n]

	texturesBySlot := make(map[uint32]*Texture, n)
	for i, b := range h.layout.bindings {
		if b.Kind != prism.BindingTexture {
			continue
		}
		tex := resources[i].(*Texture)
		st.BindTextureUnit(b.Slot, tex.glTarget, tex.id)
		texturesBySlot[b.Slot] = tex
	}
	for i, b := range h.layout.bindings {
		switch b.Kind {
		case prism.BindingSampler:
			resources[i].(*Sampler).bind(st, b.Slot, texturesBySlot[b.Slot])
		case prism.BindingUniformBuffer:
			st.api.BindBufferBase(glUniformBuffer, b.Slot, resources[i].(*Buffer).id)
		}
	}
	return nil
}

func (h *ResourceHeap) Label() string         { return h.label }
func (h *ResourceHeap) SetLabel(label string) { h.label = label }
