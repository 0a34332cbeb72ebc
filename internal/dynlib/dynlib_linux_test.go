//go:build linux

package dynlib

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFallsThroughToLoadableName(t *testing.T) {
	lib, err := Open("libdoes-not-exist.so.0", "libc.so.6")
	require.NoError(t, err)
	assert.Equal(t, "libc.so.6", lib.Name())

	addr, err := lib.Lookup("strlen")
	assert.NoError(t, err)
	assert.NotZero(t, addr)
}

func TestOpenReportsEveryCandidate(t *testing.T) {
	_, err := Open("libnope-a.so", "libnope-b.so")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "libnope-a.so")
	assert.Contains(t, err.Error(), "libnope-b.so")

	_, err = Open()
	assert.Error(t, err)
}

func TestLookupMissingSymbol(t *testing.T) {
	lib, err := Open("libc.so.6")
	require.NoError(t, err)

	_, err = lib.Lookup("glNoSuchEntryPoint")
	require.Error(t, err)
	assert.Equal(t, ErrNotFound, errors.Cause(err))
	assert.Contains(t, err.Error(), "glNoSuchEntryPoint in libc.so.6")
}
