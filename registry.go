package sortego

import (
	"fmt"
	"sync"
)

// Handle is an opaque identifier for a registered set. Handles are never
// reused within one registry.
type Handle uint64

// Registry owns a collection of sets addressed by opaque handles, for
// embedders that cannot hold pointers across their boundary. Releasing a
// handle drops the registry's reference; subsequent lookups fail with
// ErrBadHandle.
//
// The registry mutex guards only handle bookkeeping. Each set keeps its own
// fail-fast gate; registry lookups never contend with in-flight set
// operations.
type Registry struct {
	mu   sync.Mutex
	next Handle
	sets map[Handle]*Set
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[Handle]*Set)}
}

// CreateEmpty registers a set created via Empty and returns its handle.
func (r *Registry) CreateEmpty(maxBucketSize int, optFns ...Option) (Handle, error) {
	set, err := Empty(maxBucketSize, optFns...)
	if err != nil {
		return 0, err
	}
	return r.register(set), nil
}

// Create registers a preallocated set created via New and returns its
// handle.
func (r *Registry) Create(expectedItems, maxBucketSize int, optFns ...Option) (Handle, error) {
	set, err := New(expectedItems, maxBucketSize, optFns...)
	if err != nil {
		return 0, err
	}
	return r.register(set), nil
}

func (r *Registry) register(set *Set) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := r.next
	r.sets[h] = set
	return h
}

// Get resolves a handle to its set.
func (r *Registry) Get(h Handle) (*Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sets[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	return set, nil
}

// Release drops the registry's reference to the set behind h.
func (r *Registry) Release(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sets[h]; !ok {
		return fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	delete(r.sets, h)
	return nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sets)
}
