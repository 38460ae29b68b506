// Package filestore implementa ports.FileStore sobre afero: disco real en producción,
// memoria en tests.
package filestore

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/jhoicas/woodini-site/internal/application/ports"
)

var _ ports.FileStore = (*Store)(nil)

const filePerm = 0o644

// Store almacén de ficheros con raíz fija.
type Store struct {
	fs afero.Fs
}

// New envuelve un afero.Fs ya enraizado.
func New(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// NewDisk crea (si falta) el directorio root y limita el acceso a él.
func NewDisk(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", root, err)
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), root)), nil
}

// WriteFile escribe a un temporal y renombra, de modo que los lectores nunca ven el
// fichero a medias.
func (s *Store) WriteFile(name string, data []byte) error {
	name = clean(name)
	tmp := path.Join(path.Dir(name), "."+path.Base(name)+"."+uuid.NewString()+".tmp")
	if err := afero.WriteFile(s.fs, tmp, data, filePerm); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}

// Stat información del fichero.
func (s *Store) Stat(name string) (fs.FileInfo, error) {
	return s.fs.Stat(clean(name))
}

// HTTP expone el almacén como http.FileSystem para servirlo estático.
func (s *Store) HTTP() http.FileSystem {
	return afero.NewHttpFs(s.fs)
}

func clean(name string) string {
	return path.Clean("/" + name)
}
