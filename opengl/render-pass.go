package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// RenderPass fixes attachment formats and sample count without owning
// attachment memory. Render targets built without an explicit pass
// derive one from their attachments.
type RenderPass struct {
	sys    *System
	handle Handle
	label  string

	colorFormats       []prism.Format
	depthStencilFormat prism.Format
	samples            uint32
}

var _ prism.RenderPass = (*RenderPass)(nil)

func newRenderPass(sys *System, desc prism.RenderPassDescriptor) (*RenderPass, error) {
	for i, f := range desc.ColorFormats {
		if !f.IsColor() {
			return nil, fmt.Errorf("format %s in color slot %d of render pass: %w", f, i, prism.ErrInvalidAttachmentType)
		}
	}
	if f := desc.DepthStencilFormat; f != prism.FormatUndefined && f.IsColor() {
		return nil, fmt.Errorf("format %s as render pass depth-stencil: %w", f, prism.ErrInvalidAttachmentType)
	}
	return &RenderPass{
		sys:                sys,
		label:              desc.Label,
		colorFormats:       append([]prism.Format(nil), desc.ColorFormats...),
		depthStencilFormat: desc.DepthStencilFormat,
		samples:            max(desc.Samples, 1),
	}, nil
}

func (p *RenderPass) Label() string         { return p.label }
func (p *RenderPass) SetLabel(label string) { p.label = label }

func (p *RenderPass) NumColorFormats() uint32 {
	return uint32(len(p.colorFormats))
}

// ColorFormat returns FormatUndefined for slots the pass does not
// have.
func (p *RenderPass) ColorFormat(i uint32) prism.Format {
	if i >= uint32(len(p.colorFormats)) {
		return prism.FormatUndefined
	}
	return p.colorFormats[i]
}

func (p *RenderPass) DepthStencilFormat() prism.Format { return p.depthStencilFormat }
func (p *RenderPass) Samples() uint32                  { return p.samples }
