package workflow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrWorkflowNotFound is returned when a workflow id is not in the
// registry.
var ErrWorkflowNotFound = errors.New("workflow not found")

// Registry holds the workflow manifests discovered at startup, keyed by
// iteration id. Safe for concurrent use; Reload swaps the whole set
// atomically.
type Registry struct {
	dir string

	mu        sync.RWMutex
	manifests map[string]*Manifest
}

// NewRegistry creates an empty registry rooted at dir. Call Reload to
// populate it.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:       dir,
		manifests: make(map[string]*Manifest),
	}
}

// LoadRegistry discovers and validates every manifest under dir.
func LoadRegistry(dir string) (*Registry, error) {
	r := NewRegistry(dir)
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-scans the manifest directory. Manifests that fail to parse
// or validate abort the reload; the previous set stays in place.
func (r *Registry) Reload() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("reading manifest dir %s: %w", r.dir, err)
	}

	loaded := make(map[string]*Manifest)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(r.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading manifest %s: %w", path, err)
		}
		m, err := ParseManifest(data)
		if err != nil {
			return fmt.Errorf("parsing manifest %s: %w", path, err)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("validating manifest %s: %w", path, err)
		}
		if _, dup := loaded[m.IterationID]; dup {
			return fmt.Errorf("iteration id %q declared by more than one manifest file", m.IterationID)
		}
		loaded[m.IterationID] = m
	}

	r.mu.Lock()
	r.manifests = loaded
	r.mu.Unlock()
	return nil
}

// Register adds or replaces a manifest directly, bypassing discovery.
// The manifest must validate.
func (r *Registry) Register(m *Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	r.manifests[m.IterationID] = m
	r.mu.Unlock()
	return nil
}

// Get returns the manifest with the given iteration id.
func (r *Registry) Get(id string) (*Manifest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.manifests[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorkflowNotFound, id)
	}
	return m, nil
}

// List returns every registered manifest, ordered by iteration id for
// stable API responses.
func (r *Registry) List() []*Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Manifest, 0, len(r.manifests))
	for _, m := range r.manifests {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IterationID < out[j].IterationID })
	return out
}

// Len returns the number of registered manifests.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.manifests)
}
