package prism

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatComponentTraits(t *testing.T) {
	cases := []struct {
		format  Format
		depth   bool
		stencil bool
		color   bool
	}{
		{FormatUndefined, false, false, false},
		{FormatR8, false, false, true},
		{FormatRG8, false, false, true},
		{FormatRGBA8, false, false, true},
		{FormatRGBA8SRGB, false, false, true},
		{FormatBGRA8, false, false, true},
		{FormatRGB10A2, false, false, true},
		{FormatRGBA16F, false, false, true},
		{FormatRGBA32F, false, false, true},
		{FormatR32F, false, false, true},
		{FormatD16, true, false, false},
		{FormatD24S8, true, true, false},
		{FormatD32F, true, false, false},
		{FormatD32FS8, true, true, false},
		{FormatS8, false, true, false},
	}
	for _, c := range cases {
		require.Equal(t, c.depth, c.format.HasDepth(), "%s depth", c.format)
		require.Equal(t, c.stencil, c.format.HasStencil(), "%s stencil", c.format)
		require.Equal(t, c.color, c.format.IsColor(), "%s color", c.format)
	}
}

func TestFormatTexelSize(t *testing.T) {
	sizes := map[Format]uint32{
		FormatUndefined: 0,
		FormatR8:        1,
		FormatS8:        1,
		FormatRG8:       2,
		FormatD16:       2,
		FormatRGBA8:     4,
		FormatRGBA8SRGB: 4,
		FormatBGRA8:     4,
		FormatRGB10A2:   4,
		FormatR32F:      4,
		FormatD24S8:     4,
		FormatD32F:      4,
		FormatRGBA16F:   8,
		FormatD32FS8:    8,
		FormatRGBA32F:   16,
	}
	for format, size := range sizes {
		require.Equal(t, size, format.Size(), "%s", format)
	}
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "FormatRGBA8", FormatRGBA8.String())
	require.Equal(t, "FormatD24S8", FormatD24S8.String())
	require.Equal(t, "Format(15)", Format(15).String())
}
