package radar

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register registers a backend factory under name, following the
// database/sql driver pattern. It panics if factory is nil or if name is
// already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("radar: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("radar: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry. It is a no-op for
// unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
//
//	import _ "github.com/gogpu/radar/backend/svg"
//
//	b, err := radar.NewBackend("svg")
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("radar: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend named name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
