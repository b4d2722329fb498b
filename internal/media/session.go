package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SessionStore dereferences session handles. Implementations live for the
// authoring session; the resolver consumes a handle once and keeps nothing.
type SessionStore interface {
	Open(ctx context.Context, h SessionHandle) (*Payload, error)
}

// MemoryStore is a SessionStore backed by an in-memory map.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Payload
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Payload)}
}

// Put registers data under id.
func (m *MemoryStore) Put(id string, p Payload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = p
}

// Open returns the payload registered for h.
func (m *MemoryStore) Open(ctx context.Context, h SessionHandle) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.items[h.ID()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionUnavailable, h)
	}
	return &Payload{Data: p.Data, ContentType: p.ContentType}, nil
}

// DirStore is a SessionStore that maps handle ids to files in a directory,
// such as the scratch folder an editor session writes uploads to.
type DirStore struct {
	dir      string
	maxBytes int64
}

// NewDirStore creates a DirStore rooted at dir.
func NewDirStore(dir string, maxBytes int64) *DirStore {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &DirStore{dir: dir, maxBytes: maxBytes}
}

// Open reads the file named by the handle id.
func (d *DirStore) Open(ctx context.Context, h SessionHandle) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := h.ID()
	if id == "" || strings.ContainsAny(id, "/\\\x00") || id == "." || id == ".." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHandle, id)
	}

	path := filepath.Join(d.dir, id)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}
	if info.Size() > d.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())
	}

	data, err := os.ReadFile(path) // #nosec G304 -- id validated above
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}
	return &Payload{Data: data}, nil
}

// Compile-time interface checks.
var (
	_ SessionStore = (*MemoryStore)(nil)
	_ SessionStore = (*DirStore)(nil)
)
