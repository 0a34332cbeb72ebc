package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--title", "demo", "--create", "--frames", "3", "--interval", "5ms", "--feature", "GL_VERSION_2_0, GL_ARB_multitexture,"})
	require.NoError(t, err)
	assert.Equal(t, "demo", opts.title)
	assert.True(t, opts.create)
	assert.Equal(t, 3, opts.frames)
	assert.Equal(t, 5*time.Millisecond, opts.interval)
	assert.Equal(t, []string{"GL_VERSION_2_0", "GL_ARB_multitexture"}, opts.features)
	assert.Equal(t, 640, opts.width)
}

func TestParseFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "0"},
		{"stray"},
		{"--frames", "many"},
	} {
		_, err := parseFlags(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestExtensionSet(t *testing.T) {
	set := extensionSet("GL_ARB_multitexture  GL_EXT_bgra\nGL_ARB_vertex_buffer_object ")
	assert.Len(t, set, 3)
	assert.True(t, set["GL_EXT_bgra"])
	assert.Equal(t, "advertised", featureStatus("GL_EXT_bgra", set))
}
