package prism

// Limits are the device's size and count ceilings.
type Limits struct {
	MaxTextureSize      uint32
	Max3DTextureSize    uint32
	MaxCubeTextureSize  uint32
	MaxArrayLayers      uint32
	MaxRenderbufferSize uint32
	MaxColorAttachments uint32
	MaxDrawBuffers      uint32
	MaxSamples          uint32
}

// Caps describes the opened driver and device.
type Caps struct {
	// Renderer and Version identify the device and driver build.
	Renderer string
	Version  string

	// HasTexture1D is false on drivers without 1D textures, such as
	// OpenGL ES.
	HasTexture1D bool

	// HasSamplerObjects is false on legacy drivers where sampler
	// state must be emulated through per-texture parameters.
	HasSamplerObjects bool

	// HasNoAttachmentFramebuffers allows render targets without any
	// attachment; otherwise a dummy attachment is allocated
	// internally.
	HasNoAttachmentFramebuffers bool

	// HasAnisotropicFilter reports the anisotropic filtering
	// extension.
	HasAnisotropicFilter bool

	Limits Limits
}
