package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// RenderTarget renders into textures and renderbuffers instead of the
// screen.
//
// A single-sampled target is one framebuffer. A multisampled target
// keeps two: the primary framebuffer that draws land in, and a
// single-sampled resolve framebuffer holding every texture that
// receives a downsampled copy. Non-multisampled color textures cannot
// be attached to the primary framebuffer directly, so the builder
// substitutes a multisampled renderbuffer for the slot and moves the
// texture to the resolve side.
type RenderTarget struct {
	sys    *System
	handle Handle
	label  string

	resolution prism.Extent2D
	samples    uint32

	fbo        framebuffer
	fboResolve framebuffer

	// renderbuffers the target allocated itself, released with it.
	renderbuffers []renderbuffer

	// drawBuffers is committed once after all attachments are built.
	drawBuffers        []uint32
	drawBuffersResolve []uint32

	depthStencilBinding uint32
	hasDepth            bool
	hasStencil          bool
	numColors           uint32

	renderPass prism.RenderPass
}

var _ prism.RenderTarget = (*RenderTarget)(nil)

// resolveAttachment is one pending attachment of the resolve
// framebuffer.
type resolveAttachment struct {
	binding uint32
	tex     *Texture
	level   int32
	layer   int32
}

func newRenderTarget(sys *System, desc prism.RenderTargetDescriptor) (rt *RenderTarget, err error) {
	if desc.Resolution.Width == 0 || desc.Resolution.Height == 0 {
		return nil, fmt.Errorf("render target resolution %dx%d is empty", desc.Resolution.Width, desc.Resolution.Height)
	}

	samples := clamp(max(desc.Samples, 1), 1, sys.caps.Limits.MaxSamples)
	if samples != max(desc.Samples, 1) {
		prism.Logger().Warn("sample count clamped to device limit",
			"requested", desc.Samples, "clamped", samples)
	}

	rt = &RenderTarget{
		sys:        sys,
		label:      desc.Label,
		resolution: desc.Resolution,
		samples:    samples,
		renderPass: desc.RenderPass,
	}

	// Anything created so far is torn down again when a later
	// attachment fails, a failed build leaves no objects behind.
	defer func() {
		if err != nil {
			rt.destroy(sys.api, sys.state)
			rt = nil
		}
	}()

	colors, resolves, depthStencil, err := partitionAttachments(desc.Attachments)
	if err != nil {
		return rt, err
	}
	rt.numColors = uint32(len(colors))
	if limit := sys.caps.Limits.MaxColorAttachments; rt.numColors > limit {
		return rt, fmt.Errorf("%d color attachments exceed the device limit of %d: %w",
			rt.numColors, limit, prism.ErrRenderTargetIncomplete)
	}

	if len(desc.Attachments) == 0 {
		err = rt.buildWithoutAttachments()
	} else {
		err = rt.buildWithAttachments(colors, resolves, depthStencil)
	}
	if err != nil {
		return rt, err
	}

	if rt.renderPass == nil {
		rt.renderPass = derivedRenderPass(colors, depthStencil, samples)
	}
	return rt, nil
}

// partitionAttachments splits the declaration list into color slots in
// declaration order, explicit resolve destinations by slot, and the
// single depth-stencil attachment.
func partitionAttachments(atts []prism.AttachmentDescriptor) (colors []prism.AttachmentDescriptor, resolves map[uint32]prism.AttachmentDescriptor, depthStencil *prism.AttachmentDescriptor, err error) {
	resolves = make(map[uint32]prism.AttachmentDescriptor)
	for _, att := range atts {
		switch att.Role {
		case prism.RoleColor:
			colors = append(colors, att)
		case prism.RoleResolve:
			if att.Texture == nil {
				return nil, nil, nil, fmt.Errorf("resolve attachment for slot %d has no texture: %w",
					att.Slot, prism.ErrInvalidAttachmentType)
			}
			if _, dup := resolves[att.Slot]; dup {
				return nil, nil, nil, fmt.Errorf("two resolve attachments for color slot %d", att.Slot)
			}
			resolves[att.Slot] = att
		case prism.RoleDepth, prism.RoleStencil, prism.RoleDepthStencil:
			if depthStencil != nil {
				return nil, nil, nil, fmt.Errorf("more than one depth-stencil attachment")
			}
			ds := att
			depthStencil = &ds
		}
	}
	for slot := range resolves {
		if slot >= uint32(len(colors)) {
			return nil, nil, nil, fmt.Errorf("resolve for color slot %d, target has %d: %w",
				slot, len(colors), prism.ErrIndexOutOfRange)
		}
	}
	return colors, resolves, depthStencil, nil
}

func (rt *RenderTarget) buildWithAttachments(colors []prism.AttachmentDescriptor, resolves map[uint32]prism.AttachmentDescriptor, depthStencil *prism.AttachmentDescriptor) error {
	api, st := rt.sys.api, rt.sys.state

	rt.fbo.create(api)
	st.BindFramebuffer(rt.fbo.id)

	var pending []resolveAttachment
	for slot, att := range colors {
		deferred, err := rt.buildColorAttachment(att, uint32(slot), resolves)
		if err != nil {
			return err
		}
		if deferred != nil {
			pending = append(pending, *deferred)
		}
	}
	if depthStencil != nil {
		if err := rt.buildDepthStencilAttachment(*depthStencil); err != nil {
			return err
		}
	}

	rt.commitDrawBuffers(rt.drawBuffers)
	if err := framebufferStatus(api, "render target"); err != nil {
		return err
	}

	// Explicit resolve destinations join the ones the substitution
	// above produced. Resolve framebuffers only exist under
	// multisampling, with one sample a resolve would copy nothing.
	if rt.samples > 1 {
		for slot := uint32(0); slot < rt.numColors; slot++ {
			att, ok := resolves[slot]
			if !ok {
				continue
			}
			res, err := rt.prepareResolveAttachment(att, glColorAttachment0+slot)
			if err != nil {
				return err
			}
			pending = append(pending, *res)
		}
	}
	if len(pending) > 0 {
		return rt.buildResolveFramebuffer(pending)
	}
	return nil
}

// buildColorAttachment attaches one color slot to the primary
// framebuffer. It returns a pending resolve attachment when a
// single-sampled texture had to be replaced by a renderbuffer.
func (rt *RenderTarget) buildColorAttachment(att prism.AttachmentDescriptor, slot uint32, resolves map[uint32]prism.AttachmentDescriptor) (*resolveAttachment, error) {
	api := rt.sys.api
	binding := glColorAttachment0 + slot

	if att.Texture == nil {
		format := att.Format
		if !format.IsColor() {
			return nil, fmt.Errorf("format %s in color slot %d: %w", format, slot, prism.ErrInvalidAttachmentType)
		}
		gf, err := formatToGL(format)
		if err != nil {
			return nil, err
		}
		if err := rt.addRenderbuffer(binding, gf.internal, rt.samples); err != nil {
			return nil, err
		}
		rt.drawBuffers = append(rt.drawBuffers, binding)
		return nil, nil
	}

	tex, err := asTexture(att.Texture)
	if err != nil {
		return nil, err
	}
	if !tex.format.IsColor() {
		return nil, fmt.Errorf("texture format %s in color slot %d: %w", tex.format, slot, prism.ErrInvalidAttachmentType)
	}
	if err := rt.validateResolution(tex, att.MipLevel); err != nil {
		return nil, err
	}

	if rt.samples > 1 && tex.samples == 1 {
		// The texture cannot live in the multisampled framebuffer.
		// Substitute a renderbuffer and downsample into the texture on
		// resolve. An explicit resolve attachment for the slot takes
		// precedence over the substituted texture.
		gf, err := formatToGL(tex.format)
		if err != nil {
			return nil, err
		}
		if err := rt.addRenderbuffer(binding, gf.internal, rt.samples); err != nil {
			return nil, err
		}
		rt.drawBuffers = append(rt.drawBuffers, binding)

		if _, claimed := resolves[slot]; claimed {
			prism.Logger().Warn("color texture shadowed by explicit resolve attachment", "slot", slot)
			return nil, nil
		}
		return &resolveAttachment{
			binding: binding,
			tex:     tex,
			level:   int32(att.MipLevel),
			layer:   int32(att.ArrayLayer),
		}, nil
	}

	if tex.samples > 1 && tex.samples != rt.samples {
		return nil, fmt.Errorf("texture with %d samples in a target with %d: %w",
			tex.samples, rt.samples, prism.ErrInvalidAttachmentType)
	}
	if err := rt.fbo.attachTexture(api, binding, tex, int32(att.MipLevel), int32(att.ArrayLayer)); err != nil {
		return nil, err
	}
	rt.drawBuffers = append(rt.drawBuffers, binding)
	return nil, nil
}

func (rt *RenderTarget) buildDepthStencilAttachment(att prism.AttachmentDescriptor) error {
	var tex *Texture
	format := att.Format
	if att.Texture != nil {
		var err error
		if tex, err = asTexture(att.Texture); err != nil {
			return err
		}
		format = tex.format
	}
	if format.IsColor() || format == prism.FormatUndefined {
		return fmt.Errorf("format %s as depth-stencil: %w", format, prism.ErrInvalidAttachmentType)
	}
	switch att.Role {
	case prism.RoleDepth:
		if !format.HasDepth() {
			return fmt.Errorf("format %s has no depth: %w", format, prism.ErrInvalidAttachmentType)
		}
	case prism.RoleStencil:
		if !format.HasStencil() {
			return fmt.Errorf("format %s has no stencil: %w", format, prism.ErrInvalidAttachmentType)
		}
	case prism.RoleDepthStencil:
		if !format.HasDepth() || !format.HasStencil() {
			return fmt.Errorf("format %s is not combined depth-stencil: %w", format, prism.ErrInvalidAttachmentType)
		}
	}

	// The format decides the attachment point. A depth role with a
	// combined format still binds as depth-stencil.
	binding := depthStencilBinding(format)

	if tex == nil {
		gf, err := formatToGL(format)
		if err != nil {
			return err
		}
		if err := rt.addRenderbuffer(binding, gf.internal, rt.samples); err != nil {
			return err
		}
	} else {
		switch tex.typ {
		case prism.Texture1D, prism.Texture1DArray, prism.Texture3D:
			return fmt.Errorf("%s as depth-stencil: %w", tex.typ, prism.ErrInvalidAttachmentType)
		}
		if err := rt.validateResolution(tex, att.MipLevel); err != nil {
			return err
		}
		if tex.samples != rt.samples {
			return fmt.Errorf("depth-stencil texture with %d samples in a target with %d: %w",
				tex.samples, rt.samples, prism.ErrInvalidAttachmentType)
		}
		if err := rt.fbo.attachTexture(rt.sys.api, binding, tex, int32(att.MipLevel), int32(att.ArrayLayer)); err != nil {
			return err
		}
	}

	rt.depthStencilBinding = binding
	rt.hasDepth = format.HasDepth()
	rt.hasStencil = format.HasStencil()
	return nil
}

// prepareResolveAttachment validates one explicit resolve destination.
func (rt *RenderTarget) prepareResolveAttachment(att prism.AttachmentDescriptor, binding uint32) (*resolveAttachment, error) {
	tex, err := asTexture(att.Texture)
	if err != nil {
		return nil, err
	}
	if !tex.format.IsColor() {
		return nil, fmt.Errorf("resolve texture format %s: %w", tex.format, prism.ErrInvalidAttachmentType)
	}
	if tex.samples > 1 {
		return nil, fmt.Errorf("multisampled texture as resolve destination: %w", prism.ErrInvalidAttachmentType)
	}
	if err := rt.validateResolution(tex, att.MipLevel); err != nil {
		return nil, err
	}
	return &resolveAttachment{
		binding: binding,
		tex:     tex,
		level:   int32(att.MipLevel),
		layer:   int32(att.ArrayLayer),
	}, nil
}

// buildResolveFramebuffer attaches every resolve destination to the
// secondary framebuffer under its source slot's binding.
func (rt *RenderTarget) buildResolveFramebuffer(pending []resolveAttachment) error {
	api, st := rt.sys.api, rt.sys.state

	rt.fboResolve.create(api)
	st.BindFramebuffer(rt.fboResolve.id)

	for _, res := range pending {
		if err := rt.fboResolve.attachTexture(api, res.binding, res.tex, res.level, res.layer); err != nil {
			return err
		}
		rt.drawBuffersResolve = append(rt.drawBuffersResolve, res.binding)
	}

	rt.commitDrawBuffers(rt.drawBuffersResolve)
	return framebufferStatus(api, "render target resolve")
}

// buildWithoutAttachments sizes an empty framebuffer. Drivers without
// default framebuffer parameters get a dummy renderbuffer that is
// excluded from the draw buffers.
func (rt *RenderTarget) buildWithoutAttachments() error {
	api, st := rt.sys.api, rt.sys.state

	rt.fbo.create(api)
	st.BindFramebuffer(rt.fbo.id)

	if defaults, ok := api.(APIFramebufferDefaults); ok && rt.sys.caps.HasNoAttachmentFramebuffers {
		defaults.FramebufferParameteri(glFramebuffer, glFramebufferDefaultWidth, int32(rt.resolution.Width))
		defaults.FramebufferParameteri(glFramebuffer, glFramebufferDefaultHeight, int32(rt.resolution.Height))
		if rt.samples > 1 {
			defaults.FramebufferParameteri(glFramebuffer, glFramebufferDefaultSamples, int32(rt.samples))
		}
	} else if err := rt.addRenderbuffer(glColorAttachment0, glR8, rt.samples); err != nil {
		return err
	}

	rt.commitDrawBuffers(nil)
	return framebufferStatus(api, "render target")
}

// commitDrawBuffers sets the framebuffer's draw buffer list, exactly
// once per framebuffer.
func (rt *RenderTarget) commitDrawBuffers(bufs []uint32) {
	api := rt.sys.api
	if len(bufs) == 0 {
		api.DrawBuffer(glNone)
		api.ReadBuffer(glNone)
		return
	}
	api.DrawBuffers(bufs)
}

// addRenderbuffer allocates a renderbuffer and attaches it to the
// bound framebuffer. The target owns it until released.
func (rt *RenderTarget) addRenderbuffer(binding, internalFormat uint32, samples uint32) error {
	api, st := rt.sys.api, rt.sys.state

	var rb renderbuffer
	rb.create(api)
	if err := rb.storage(api, st, internalFormat, rt.resolution, samples); err != nil {
		rb.release(api, st)
		return err
	}
	api.FramebufferRenderbuffer(glFramebuffer, binding, rb.id)
	rt.renderbuffers = append(rt.renderbuffers, rb)
	return nil
}

func (rt *RenderTarget) validateResolution(tex *Texture, level uint32) error {
	if level >= tex.mips {
		return fmt.Errorf("mip level %d of a texture with %d levels: %w", level, tex.mips, prism.ErrIndexOutOfRange)
	}
	e := tex.MipExtent(level)
	if e.Width != rt.resolution.Width || e.Height != rt.resolution.Height {
		return fmt.Errorf("attachment mip %d is %dx%d, target is %dx%d: %w",
			level, e.Width, e.Height, rt.resolution.Width, rt.resolution.Height,
			prism.ErrRenderTargetIncomplete)
	}
	return nil
}

func asTexture(t prism.Texture) (*Texture, error) {
	tex, ok := t.(*Texture)
	if !ok {
		return nil, fmt.Errorf("foreign texture implementation %T: %w", t, prism.ErrInvalidAttachmentType)
	}
	return tex, nil
}

// ResolveMultisampled downsamples every substituted and explicit
// resolve pair. A no-op for targets without a resolve framebuffer.
//
// Each slot is copied with its own read and draw buffer selection, the
// blit only transfers one color buffer at a time.
func (rt *RenderTarget) ResolveMultisampled(st *StateManager) {
	if !rt.fboResolve.valid() {
		return
	}
	api := rt.sys.api
	st.BindReadFramebuffer(rt.fbo.id)
	st.BindDrawFramebuffer(rt.fboResolve.id)
	for _, buf := range rt.drawBuffersResolve {
		api.ReadBuffer(buf)
		api.DrawBuffer(buf)
		blitFramebuffer(api, rt.resolution, glColorBufferBit)
	}
	debugCheck(api, "resolve render target")
}

// resolveToBackbuffer copies color attachment index onto the default
// framebuffer, clamped to the smaller of the two extents.
func (rt *RenderTarget) resolveToBackbuffer(st *StateManager, index uint32, backbuffer prism.Extent2D) error {
	if index >= rt.numColors {
		return fmt.Errorf("color attachment %d of a target with %d: %w", index, rt.numColors, prism.ErrIndexOutOfRange)
	}
	api := rt.sys.api
	st.BindReadFramebuffer(rt.fbo.id)
	st.BindDrawFramebuffer(0)
	api.ReadBuffer(glColorAttachment0 + index)
	api.DrawBuffer(glBack)

	extent := prism.Extent2D{
		Width:  min(rt.resolution.Width, backbuffer.Width),
		Height: min(rt.resolution.Height, backbuffer.Height),
	}
	blitFramebuffer(api, extent, glColorBufferBit)
	debugCheck(api, "resolve to backbuffer")
	return nil
}

func (rt *RenderTarget) destroy(api API, st *StateManager) {
	rt.fbo.release(api, st)
	rt.fboResolve.release(api, st)
	for i := range rt.renderbuffers {
		rt.renderbuffers[i].release(api, st)
	}
	rt.renderbuffers = nil
}

func (rt *RenderTarget) Label() string         { return rt.label }
func (rt *RenderTarget) SetLabel(label string) { rt.label = label }

func (rt *RenderTarget) Resolution() prism.Extent2D { return rt.resolution }
func (rt *RenderTarget) Samples() uint32            { return rt.samples }
func (rt *RenderTarget) NumColorAttachments() uint32 {
	return rt.numColors
}
func (rt *RenderTarget) HasDepthAttachment() bool   { return rt.hasDepth }
func (rt *RenderTarget) HasStencilAttachment() bool { return rt.hasStencil }

func (rt *RenderTarget) RenderPass() prism.RenderPass { return rt.renderPass }

func derivedRenderPass(colors []prism.AttachmentDescriptor, depthStencil *prism.AttachmentDescriptor, samples uint32) *RenderPass {
	pass := &RenderPass{samples: samples}
	for _, att := range colors {
		format := att.Format
		if att.Texture != nil {
			format = att.Texture.Format()
		}
		pass.colorFormats = append(pass.colorFormats, format)
	}
	if depthStencil != nil {
		pass.depthStencilFormat = depthStencil.Format
		if depthStencil.Texture != nil {
			pass.depthStencilFormat = depthStencil.Texture.Format()
		}
	}
	return pass
}
