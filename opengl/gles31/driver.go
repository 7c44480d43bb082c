package gles31

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/oliverbestmann/prism/opengl"
)

var (
	_ opengl.API                    = api{}
	_ opengl.APIFramebufferDefaults = api{}
)

func init() {
	opengl.RegisterDriver("gles", open)
}

// open loads the ES function pointers. The caller must have made an
// ES 3.1 context current on this thread before opening the driver.
func open() (opengl.API, opengl.Options, error) {
	if err := gl.Init(); err != nil {
		return nil, opengl.Options{}, fmt.Errorf("loading gles functions: %w", err)
	}
	return api{}, opengl.Options{}, nil
}
