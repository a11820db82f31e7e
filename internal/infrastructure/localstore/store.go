// Package localstore implementa el medio durable del directorio: un almacén
// clave-valor donde cada clave es un documento JSON independiente en disco.
// Dos claves, employees_data y auth_user, sin motor de base de datos externo.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Claves del medio persistente.
const (
	KeyEmployees = "employees_data"
	KeyAuthUser  = "auth_user"
)

// Store persiste documentos JSON por clave bajo un directorio de datos.
// El filesystem es inyectable (afero): OsFs en producción, MemMapFs en tests.
type Store struct {
	fs      afero.Fs
	dataDir string
	mu      sync.Mutex
}

// New crea el store y garantiza que el directorio de datos exista.
func New(fs afero.Fs, dataDir string) (*Store, error) {
	if err := fs.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio de datos: %w", err)
	}
	return &Store{fs: fs, dataDir: dataDir}, nil
}

// Get devuelve el payload de la clave. ok=false si la clave no existe.
func (s *Store) Get(key string) (payload []byte, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("localstore: leer %s: %w", key, err)
	}
	return raw, true, nil
}

// Set escribe el payload de forma atómica: archivo temporal + rename, de modo
// que un lector concurrente vea siempre el documento completo anterior o el
// nuevo, nunca una escritura parcial.
func (s *Store) Set(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, payload, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("localstore: publicar %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave. Idempotente: borrar una clave ausente no es error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: eliminar %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}
