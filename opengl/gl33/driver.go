package gl33

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/oliverbestmann/prism/opengl"
)

var (
	_ opengl.API                 = api{}
	_ opengl.APITexture1D        = api{}
	_ opengl.APIMultisampleArray = api{}
)

func init() {
	opengl.RegisterDriver("gl", open)
}

// open loads the desktop function pointers. The caller must have made
// a 3.3 core context current on this thread before opening the driver,
// glfw does that on MakeContextCurrent.
func open() (opengl.API, opengl.Options, error) {
	if err := gl.Init(); err != nil {
		return nil, opengl.Options{}, fmt.Errorf("loading gl functions: %w", err)
	}
	opts := opengl.Options{}
	if v, err := strconv.ParseBool(os.Getenv("PRISM_LEGACY_SAMPLERS")); err == nil {
		opts.LegacySamplers = v
	}
	return api{}, opts, nil
}
