package filestore

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteFileReemplazaYNoDejaTemporales(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := New(mem)

	require.NoError(t, s.WriteFile("price.pdf", []byte("%PDF-1.4 v1")))
	require.NoError(t, s.WriteFile("price.pdf", []byte("%PDF-1.7")))

	data, err := afero.ReadFile(mem, "/price.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))

	entries, err := afero.ReadDir(mem, "/")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	info, err := s.Stat("price.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(8), info.Size())
}

func TestStore_StatInexistente(t *testing.T) {
	_, err := New(afero.NewMemMapFs()).Stat("price.pdf")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestStore_NoEscapaDeLaRaiz(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := New(mem)

	require.NoError(t, s.WriteFile("../../etc/logo.png", []byte("x")))
	ok, err := afero.Exists(mem, "/etc/logo.png")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_HTTP(t *testing.T) {
	s := New(afero.NewMemMapFs())
	require.NoError(t, s.WriteFile("partner-1.png", []byte("png")))

	f, err := s.HTTP().Open("/partner-1.png")
	require.NoError(t, err)
	defer f.Close()
	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())
}
