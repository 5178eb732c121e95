package rubric

import (
	"sort"
	"sync"

	"github.com/graderly/essay-engine/internal/errors"
)

// DefaultKey is the rubric used when a caller does not name one.
const DefaultKey = "standard"

// Registry holds the available rubrics. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	rubrics map[string]Rubric
}

// NewRegistry builds a registry preloaded with the built-in rubrics.
func NewRegistry() *Registry {
	r := &Registry{rubrics: make(map[string]Rubric, len(builtinRubrics))}
	for _, rb := range builtinRubrics {
		r.rubrics[rb.Key] = rb
	}
	return r
}

// Register validates and adds a rubric, replacing any existing rubric with
// the same key.
func (r *Registry) Register(rb Rubric) error {
	if err := rb.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rubrics[rb.Key] = rb
	return nil
}

// Resolve returns the rubric for key, or an unsupported-rubric error when no
// rubric with that key is registered.
func (r *Registry) Resolve(key string) (Rubric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rb, ok := r.rubrics[key]
	if !ok {
		return Rubric{}, errors.NewUnsupportedRubricError(key)
	}
	return rb, nil
}

// GetOrDefault returns the rubric for key, falling back to the standard
// rubric when the key is unknown or empty.
func (r *Registry) GetOrDefault(key string) Rubric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rb, ok := r.rubrics[key]; ok {
		return rb
	}
	return r.rubrics[DefaultKey]
}

// Keys returns the registered rubric keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keysLocked()
}

// List returns the registered rubrics sorted by key.
func (r *Registry) List() []Rubric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rubrics := make([]Rubric, 0, len(r.rubrics))
	for _, rb := range r.rubrics {
		rubrics = append(rubrics, rb)
	}
	sort.Slice(rubrics, func(i, j int) bool { return rubrics[i].Key < rubrics[j].Key })
	return rubrics
}

func (r *Registry) keysLocked() []string {
	keys := make([]string, 0, len(r.rubrics))
	for key := range r.rubrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
