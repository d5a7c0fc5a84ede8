package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Store reads and writes the JSON documents under the content root. Raw file
// bytes are cached per relative path until invalidated; writes go through a
// temp file and rename so a crash never leaves a half-written document.
type Store struct {
	root   string
	logger *slog.Logger

	mu    sync.RWMutex
	wmu   sync.Mutex
	cache map[string][]byte
}

// NewStore creates a store rooted at root. The directory is created when
// missing so a fresh deployment starts from an empty content tree.
func NewStore(root string, logger *slog.Logger) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("content root is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create content root: %w", err)
	}

	return &Store{
		root:   root,
		logger: logger,
		cache:  make(map[string][]byte),
	}, nil
}

// Root returns the content root directory.
func (s *Store) Root() string {
	return s.root
}

// ReadDoc reads the JSON document at rel (relative to the root) into out.
// Missing files surface as fs.ErrNotExist via the wrapped os error.
func (s *Store) ReadDoc(rel string, out any) error {
	b, err := s.readBytes(rel)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", rel, err)
	}

	return nil
}

// WriteDoc marshals in with stable 2-space indentation and writes it
// atomically to rel, creating parent directories as needed.
func (s *Store) WriteDoc(rel string, in any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("marshal %s: %w", rel, err)
	}

	s.wmu.Lock()
	defer s.wmu.Unlock()

	full := filepath.Join(s.root, filepath.FromSlash(rel))
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place %s: %w", rel, err)
	}

	s.mu.Lock()
	s.cache[rel] = buf.Bytes()
	s.mu.Unlock()

	return nil
}

// Invalidate drops the cached bytes for rel, forcing the next read to hit
// the filesystem. Used by the watcher when documents change on disk.
func (s *Store) Invalidate(rel string) {
	s.mu.Lock()
	delete(s.cache, rel)
	s.mu.Unlock()
}

// InvalidateAll drops the whole read cache.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()
}

func (s *Store) readBytes(rel string) ([]byte, error) {
	s.mu.RLock()
	b, ok := s.cache[rel]
	s.mu.RUnlock()
	if ok {
		return b, nil
	}

	full := filepath.Join(s.root, filepath.FromSlash(rel))
	b, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}

	s.mu.Lock()
	s.cache[rel] = b
	s.mu.Unlock()

	return b, nil
}
