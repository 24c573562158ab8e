package di

import (
	"sync"

	"github.com/hbenali/mirror"
)

// Container is a registry mapping type-path strings to dependency values.
//
// A Container moves through two phases: a mutable wiring phase (Provide,
// Register) and an immutable serving phase entered via Seal or Build. In the
// serving phase all reads go through a read lock, so a sealed container may
// be shared across goroutines.
//
// Use [New] to create one.
type Container struct {
	mu        sync.RWMutex
	instances map[string]any
	providers map[string]provider
	sealed    bool
	built     bool
}

// New creates an empty container ready for wiring.
func New() *Container {
	return &Container{
		instances: make(map[string]any),
		providers: make(map[string]provider),
	}
}

// Provide stores a concrete value under the type path of its dynamic type.
//
// The derived key can be overridden with [WithKey]. To store a value under an
// interface's type path, use [ProvideAs]: providing a concrete value only
// registers the concrete path, never the interfaces it satisfies.
//
// It returns:
//   - ErrNilValue if val is nil
//   - ErrSealed if the container is sealed or built
//   - DuplicateProviderError if the key is already taken
func (c *Container) Provide(val any, opts ...Option) error {
	if val == nil {
		return ErrNilValue
	}
	return c.provide(mirror.PathOfValue(val), val, opts...)
}

// ProvideAs stores a value under the type path of the static type T rather
// than the value's dynamic type. This is how interface bindings are made:
//
//	di.ProvideAs[examples.Logger](c, examples.NewConsoleLogger(cfg))
func ProvideAs[T any](c *Container, val T, opts ...Option) error {
	if any(val) == nil {
		return ErrNilValue
	}
	return c.provide(mirror.TypePath[T](), val, opts...)
}

func (c *Container) provide(key string, val any, opts ...Option) error {
	s := settings{key: key}
	for _, opt := range opts {
		opt(&s)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed {
		return ErrSealed
	}
	if _, exists := c.instances[s.key]; exists {
		return DuplicateProviderError{Key: s.key}
	}
	if _, exists := c.providers[s.key]; exists {
		return DuplicateProviderError{Key: s.key}
	}

	c.instances[s.key] = val
	return nil
}

// Seal freezes the container without running the constructor graph. After
// Seal, Provide and Register fail with ErrSealed and the container is safe
// for concurrent reads.
//
// Seal is idempotent. Containers with registered constructors should call
// [Container.Build] instead, which validates the graph and then seals.
func (c *Container) Seal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sealed = true
}

// Sealed reports whether the container still accepts registrations.
func (c *Container) Sealed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sealed
}

// Resolve looks up a key in the registry.
//
// The optional-wrapping convention keeps lookup misses cheap to handle:
// a missing key is (nil, false, nil), not an error. err is non-nil only when
// something actually went wrong — a constructor-backed key resolved before
// Build (ErrNotBuilt), or a transient constructor failing (ConstructError).
func (c *Container) Resolve(key string) (val any, ok bool, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if v, found := c.instances[key]; found {
		return v, true, nil
	}

	p, found := c.providers[key]
	if !found {
		return nil, false, nil
	}
	if !c.built {
		return nil, false, ErrNotBuilt
	}

	// Singletons were cached during Build; anything still provider-backed
	// here is transient. construct only reads the maps, so the read lock
	// held above is sufficient.
	v, err := c.construct(p)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// ResolveAs resolves the type path of T and asserts the stored value to T.
//
// A present key with an incompatible stored type is reported as
// WrongTypeDependencyError — never coerced.
func ResolveAs[T any](c *Container) (T, bool, error) {
	var zero T
	key := mirror.TypePath[T]()

	raw, ok, err := c.Resolve(key)
	if err != nil || !ok {
		return zero, false, err
	}

	out, isT := raw.(T)
	if !isT {
		return zero, false, WrongTypeDependencyError{
			Key:  key,
			Want: key,
			Got:  mirror.PathOfValue(raw),
		}
	}
	return out, true, nil
}

// MustResolve returns the value for key or panics with
// MissingDependencyError. Useful in examples and tests where a missing key
// should fail fast.
func (c *Container) MustResolve(key string) any {
	v, ok, err := c.Resolve(key)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic(MissingDependencyError{Key: key})
	}
	return v
}

// MustResolveAs is ResolveAs with panic-on-miss semantics.
func MustResolveAs[T any](c *Container) T {
	v, ok, err := ResolveAs[T](c)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic(MissingDependencyError{Key: mirror.TypePath[T]()})
	}
	return v
}

// Has reports whether a key is present, either as an instance or as a
// registered constructor.
func (c *Container) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.instances[key]; ok {
		return true
	}
	_, ok := c.providers[key]
	return ok
}

// Keys returns a snapshot of every registered key, for diagnostics. Order is
// unspecified.
func (c *Container) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.instances)+len(c.providers))
	for k := range c.instances {
		keys = append(keys, k)
	}
	for k := range c.providers {
		if _, cached := c.instances[k]; !cached {
			keys = append(keys, k)
		}
	}
	return keys
}
