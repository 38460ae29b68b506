package ports

import "io/fs"

// FileStore define el puerto de salida para los ficheros publicados (lista de precios,
// logos). Los nombres son relativos a la raíz del almacén; el adaptador decide dónde vive.
type FileStore interface {
	// WriteFile reemplaza el fichero completo; si falla no debe quedar un fichero a medias.
	WriteFile(name string, data []byte) error
	// Stat devuelve un error que cumple errors.Is(err, fs.ErrNotExist) si no existe.
	Stat(name string) (fs.FileInfo, error)
}
