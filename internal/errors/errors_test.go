package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsType(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "seed.yaml", Err: fs.ErrNotExist}
	wrapped := Wrap(Wrapf(pathErr, "load %s", "seed.yaml"), "seed")

	got, ok := AsType[*fs.PathError](wrapped)
	require.True(t, ok)
	assert.Equal(t, "seed.yaml", got.Path)
	assert.True(t, Is(wrapped, fs.ErrNotExist))

	_, ok = AsType[*fs.PathError](New("plain"))
	assert.False(t, ok)
}
