package opengl

// StateManager tracks driver bindings so redundant binds are skipped.
// One instance exists per system and all rendering code binds through
// it; a direct bind on the API would desynchronize the cache.
//
// The state manager is confined to the context thread and is not
// locked.
type StateManager struct {
	api API

	drawFramebuffer uint32
	readFramebuffer uint32
	renderbuffer    uint32
	program         uint32
	vertexArray     uint32
	arrayBuffer     uint32
	activeUnit      uint32
}

func newStateManager(api API) *StateManager {
	return &StateManager{api: api}
}

// BindFramebuffer binds fb for drawing and reading at once.
func (st *StateManager) BindFramebuffer(fb uint32) {
	if st.drawFramebuffer == fb && st.readFramebuffer == fb {
		return
	}
	st.drawFramebuffer = fb
	st.readFramebuffer = fb
	st.api.BindFramebuffer(glFramebuffer, fb)
}

// BindDrawFramebuffer binds fb as the blit and render destination.
func (st *StateManager) BindDrawFramebuffer(fb uint32) {
	if st.drawFramebuffer == fb {
		return
	}
	st.drawFramebuffer = fb
	st.api.BindFramebuffer(glDrawFramebuffer, fb)
}

// BindReadFramebuffer binds fb as the blit source.
func (st *StateManager) BindReadFramebuffer(fb uint32) {
	if st.readFramebuffer == fb {
		return
	}
	st.readFramebuffer = fb
	st.api.BindFramebuffer(glReadFramebuffer, fb)
}

// DrawFramebuffer returns the currently bound draw framebuffer.
func (st *StateManager) DrawFramebuffer() uint32 {
	return st.drawFramebuffer
}

func (st *StateManager) BindRenderbuffer(rb uint32) {
	if st.renderbuffer == rb {
		return
	}
	st.renderbuffer = rb
	st.api.BindRenderbuffer(rb)
}

func (st *StateManager) UseProgram(p uint32) {
	if st.program == p {
		return
	}
	st.program = p
	st.api.UseProgram(p)
}

func (st *StateManager) BindVertexArray(va uint32) {
	if st.vertexArray == va {
		return
	}
	st.vertexArray = va
	st.api.BindVertexArray(va)
}

func (st *StateManager) BindArrayBuffer(b uint32) {
	if st.arrayBuffer == b {
		return
	}
	st.arrayBuffer = b
	st.api.BindBuffer(glArrayBuffer, b)
}

// BindTextureUnit makes unit active and binds tex to it. Texture
// bindings themselves are not cached, only the active unit is.
func (st *StateManager) BindTextureUnit(unit uint32, target uint32, tex uint32) {
	if st.activeUnit != unit {
		st.activeUnit = unit
		st.api.ActiveTexture(glTexture0 + unit)
	}
	st.api.BindTexture(target, tex)
}

// Deleting a bound object implicitly unbinds it, the notify methods
// keep the cache in sync with that.

func (st *StateManager) NotifyFramebufferReleased(fb uint32) {
	if st.drawFramebuffer == fb {
		st.drawFramebuffer = 0
	}
	if st.readFramebuffer == fb {
		st.readFramebuffer = 0
	}
}

func (st *StateManager) NotifyRenderbufferReleased(rb uint32) {
	if st.renderbuffer == rb {
		st.renderbuffer = 0
	}
}

func (st *StateManager) NotifyProgramReleased(p uint32) {
	if st.program == p {
		st.program = 0
	}
}

func (st *StateManager) NotifyVertexArrayReleased(va uint32) {
	if st.vertexArray == va {
		st.vertexArray = 0
	}
}

func (st *StateManager) NotifyBufferReleased(b uint32) {
	if st.arrayBuffer == b {
		st.arrayBuffer = 0
	}
}

// Reset forgets every cached binding, for use after the context was
// touched outside the system.
func (st *StateManager) Reset() {
	*st = StateManager{api: st.api}
}
