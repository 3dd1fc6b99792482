package native

import (
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/core"
)

// Registry maps capability types to lazily constructed instances.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]func() (any, error)
	instances map[reflect.Type]any
	group     singleflight.Group
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[reflect.Type]func() (any, error)),
		instances: make(map[reflect.Type]any),
	}
}

// Register installs the factory for capability T, replacing any previous
// one. An instance of T that was already built stays cached.
func Register[T any](r *Registry, factory func() (T, error)) {
	k := typeKey[T]()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[k] = func() (any, error) {
		return factory()
	}
}

// Get returns the instance of capability T, building it on first use.
//
// Concurrent first calls share a single construction. A construction that
// fails is not cached, so a later Get tries again. Get fails with
// CodeUnsupported if no factory is registered for T.
func Get[T any](r *Registry) (T, error) {
	var zero T
	k := typeKey[T]()

	if v, ok := r.cached(k); ok {
		return v.(T), nil
	}

	v, err, _ := r.group.Do(flightKey(k), func() (any, error) {
		if v, ok := r.cached(k); ok {
			return v, nil
		}

		r.mu.RLock()
		factory, ok := r.factories[k]
		r.mu.RUnlock()
		if !ok {
			return nil, errors.WithContext(
				errors.Newf(errors.CodeUnsupported, "no native implementation of %s on this platform", k),
				"capability", k.String(),
			)
		}

		v, err := factory()
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeInternal, "failed to construct %s", k)
		}
		if v == nil {
			return nil, errors.Newf(errors.CodeInternal, "factory for %s returned nil", k)
		}

		r.mu.Lock()
		r.instances[k] = v
		r.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// MustGet is Get that panics on failure.
func MustGet[T any](r *Registry) T {
	v, err := Get[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Registry) cached(k reflect.Type) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.instances[k]
	return v, ok
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// flightKey disambiguates types that share a short name.
func flightKey(k reflect.Type) string {
	return k.PkgPath() + ":" + k.String()
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry with this platform's
// factories installed.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerDefaults(defaultRegistry)
	})
	return defaultRegistry
}

// Files returns the process-wide core.Files facade.
func Files() (core.Files, error) {
	return Get[core.Files](Default())
}
