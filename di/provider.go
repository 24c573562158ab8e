package di

import (
	"reflect"

	"github.com/hbenali/mirror"
)

// provider holds the metadata for a single registered constructor.
type provider struct {
	ctor     reflect.Value
	lifetime Lifetime
	key      string
	out      reflect.Type
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Register adds a constructor to the container. The constructor must have
// the signature func(deps...) T or func(deps...) (T, error); each parameter
// is resolved by its type path when the graph is built.
//
// The key defaults to the type path of T and can be overridden with
// [WithKey]. [WithLifetime] selects Singleton (default) or Transient.
//
// It returns:
//   - ErrSealed if the container is sealed or built
//   - InvalidConstructorError if ctor has the wrong shape
//   - DuplicateProviderError if the key is already taken
func (c *Container) Register(ctor any, opts ...Option) error {
	if ctor == nil {
		return InvalidConstructorError{Detail: "must be a function, got nil"}
	}

	val := reflect.ValueOf(ctor)
	typ := val.Type()

	if typ.Kind() != reflect.Func {
		return InvalidConstructorError{Detail: "must be a function, got " + mirror.PathOf(typ)}
	}
	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return InvalidConstructorError{Detail: "must return (T) or (T, error)"}
	}
	if typ.NumOut() == 2 && !typ.Out(1).Implements(errType) {
		return InvalidConstructorError{Detail: "second return value must implement error"}
	}

	s := settings{key: mirror.PathOf(typ.Out(0)), lifetime: Singleton}
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

	c.providers[s.key] = provider{
		ctor:     val,
		lifetime: s.lifetime,
		key:      s.key,
		out:      typ.Out(0),
	}
	return nil
}

// ---------------------------------------------------------------------------
// Build
// ---------------------------------------------------------------------------

type buildState int

const (
	unvisited buildState = iota
	visiting
	visited
)

// Build validates the constructor graph — every dependency must be satisfied
// by an instance or another provider, and no cycles are allowed — then
// eagerly instantiates all Singleton providers and seals the container.
//
// It returns:
//   - ErrAlreadyBuilt on a second call
//   - MissingDependencyError for an unsatisfied parameter
//   - CircularDependencyError with the full chain for a cycle
//   - ConstructError when a constructor fails
func (c *Container) Build() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.built {
		return ErrAlreadyBuilt
	}

	states := make(map[string]buildState)
	for key := range c.providers {
		if err := c.buildResolve(key, states, nil); err != nil {
			return err
		}
	}

	c.built = true
	c.sealed = true
	return nil
}

// buildResolve walks the graph depth-first. Singletons are instantiated and
// cached in c.instances; transients are only validated.
func (c *Container) buildResolve(key string, states map[string]buildState, stack []string) error {
	switch states[key] {
	case visiting:
		// The stack may carry a non-cyclic prefix from where the walk
		// started; report only the cycle itself, from the repeated key on.
		start := 0
		for i, k := range stack {
			if k == key {
				start = i
				break
			}
		}
		return CircularDependencyError{Chain: append(append([]string(nil), stack[start:]...), key)}
	case visited:
		return nil
	}

	p := c.providers[key]

	states[key] = visiting
	stack = append(stack, key)

	fnType := p.ctor.Type()
	for i := 0; i < fnType.NumIn(); i++ {
		depKey := mirror.PathOf(fnType.In(i))

		if _, ok := c.instances[depKey]; ok {
			continue
		}
		if _, ok := c.providers[depKey]; !ok {
			return MissingDependencyError{Key: depKey}
		}
		if err := c.buildResolve(depKey, states, stack); err != nil {
			return err
		}
	}

	if p.lifetime == Singleton {
		instance, err := c.construct(p)
		if err != nil {
			return err
		}
		c.instances[key] = instance
	}

	states[key] = visited
	return nil
}

// construct invokes a constructor, resolving each parameter from the
// instance cache first and recursively constructing transient dependencies.
// It only reads the container maps, so it is safe under either lock.
func (c *Container) construct(p provider) (any, error) {
	fnType := p.ctor.Type()
	args := make([]reflect.Value, fnType.NumIn())

	for i := 0; i < fnType.NumIn(); i++ {
		depKey := mirror.PathOf(fnType.In(i))

		if inst, ok := c.instances[depKey]; ok {
			args[i] = reflect.ValueOf(inst)
			continue
		}

		depProvider, ok := c.providers[depKey]
		if !ok {
			return nil, MissingDependencyError{Key: depKey}
		}

		inst, err := c.construct(depProvider)
		if err != nil {
			return nil, err
		}
		args[i] = reflect.ValueOf(inst)
	}

	results := p.ctor.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, ConstructError{Key: p.key, Err: results[1].Interface().(error)}
	}

	return results[0].Interface(), nil
}
