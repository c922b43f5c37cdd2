package draw

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new Service instance.
type Factory func() Service

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a Service available by name. It is meant to be called
// from an init function of the implementing package:
//
//	func init() {
//	    draw.Register("raster", func() draw.Service { return New() })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("draw: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("draw: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a Service from the registry. It is a no-op for
// unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// NewService creates a Service by registered name.
func NewService(name string) (Service, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("draw: unknown service %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustService is like NewService but panics on error.
func MustService(name string) Service {
	s, err := NewService(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Services returns the registered names in sorted order.
func Services() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
