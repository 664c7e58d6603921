package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ KV = (*FileStore)(nil)

// FileStore guarda todas las entradas en un único documento JSON en disco.
// Cada escritura reemplaza el documento completo vía archivo temporal + rename
// (last-write-wins, sin merge). Un mutex serializa el acceso dentro del proceso.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore construye el almacén sobre el archivo indicado (se crea al primer Set).
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get devuelve el valor de la clave, ok=false si no existe.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// Set escribe la clave y persiste el documento completo.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[key] = json.RawMessage(value)
	return s.flush(entries)
}

// Delete elimina la clave; borrar una clave ausente no es error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.flush(entries)
}

// load lee el documento; un archivo ausente es "primera ejecución", no corrupción.
func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("leer almacén: %w", err)
	}
	entries := map[string]json.RawMessage{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decodificar almacén: %w", err)
	}
	return entries, nil
}

// flush escribe el documento de forma atómica (temp + rename en el mismo directorio).
func (s *FileStore) flush(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar almacén: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".eletror-*")
	if err != nil {
		return fmt.Errorf("archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir almacén: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("reemplazar almacén: %w", err)
	}
	return nil
}
