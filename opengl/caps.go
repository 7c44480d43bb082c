package opengl

import "github.com/oliverbestmann/prism"

func queryCaps(api API, opts Options) prism.Caps {
	caps := prism.Caps{
		Renderer:          api.GetString(glRenderer),
		Version:           api.GetString(glVersion),
		HasSamplerObjects: !opts.LegacySamplers,
	}
	_, caps.HasTexture1D = api.(APITexture1D)
	_, caps.HasNoAttachmentFramebuffers = api.(APIFramebufferDefaults)

	for _, ext := range api.Extensions() {
		switch ext {
		case "GL_EXT_texture_filter_anisotropic", "GL_ARB_texture_filter_anisotropic":
			caps.HasAnisotropicFilter = true
		}
	}

	positive := func(pname uint32) uint32 {
		return uint32(max(api.GetInteger(pname), 1))
	}
	caps.Limits = prism.Limits{
		MaxTextureSize:      positive(glMaxTextureSize),
		Max3DTextureSize:    positive(glMax3DTextureSize),
		MaxCubeTextureSize:  positive(glMaxCubeMapTextureSize),
		MaxArrayLayers:      positive(glMaxArrayTextureLayers),
		MaxRenderbufferSize: positive(glMaxRenderbufferSize),
		MaxColorAttachments: positive(glMaxColorAttachments),
		MaxDrawBuffers:      positive(glMaxDrawBuffers),
		MaxSamples:          positive(glMaxSamples),
	}
	return caps
}
