package io

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReadPiped(t *testing.T) {
	t.Run("nil stdin", func(t *testing.T) {
		text, ok, err := ReadPiped(nil)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, text)
	})

	t.Run("plain reader is read fully", func(t *testing.T) {
		text, ok, err := ReadPiped(strings.NewReader("import bpy\n\n"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "import bpy\n\n", text)
	})

	t.Run("pipe", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()

		go func() {
			w.WriteString("class Foo:\r\n    pass\r\n")
			w.Close()
		}()

		text, ok, err := ReadPiped(r)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "class Foo:\r\n    pass\r\n", text)
	})

	t.Run("empty pipe is an empty script", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()
		w.Close()

		text, ok, err := ReadPiped(r)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, text)
	})

	t.Run("read error", func(t *testing.T) {
		_, ok, err := ReadPiped(failingReader{})
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
