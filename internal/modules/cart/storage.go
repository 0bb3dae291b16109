package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the persistence port behind a Store. Load runs once at
// construction; Save runs after every mutation. Implementations must
// treat the serialized cart as one whole value under a single key.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// MemoryStorage keeps the cart in memory only. Used in tests and as the
// fallback when no durable storage is wired.
type MemoryStorage struct {
	mu    sync.Mutex
	items []Item
	Err   error // when set, Load and Save fail with it
}

func NewMemoryStorage(items []Item) *MemoryStorage {
	return &MemoryStorage{items: items}
}

func (m *MemoryStorage) Load() ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryStorage) Save(items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.items = make([]Item, len(items))
	copy(m.items, items)
	return nil
}

// FileStorage persists the cart as one JSON file, replaced whole on
// every save. A missing file means an empty cart.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (f *FileStorage) Load() ([]Item, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FileStorage) Save(items []Item) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, raw, 0o644)
}
