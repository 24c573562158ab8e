// Package di provides a small dependency injection container keyed by
// type-path strings.
//
// The container holds one value per type path ("examples.Logger",
// "*examples.UserStore"). Values are provided explicitly — there is no
// automatic registration, no scanning, no casting between dynamic and static
// types. Wiring happens in two steps:
//
//   - Provide / Register: put instances (or constructors) into the registry.
//   - Inject: walk the fields of a target struct and set every field tagged
//     `inject:""` by reference, matching the field's type path against the
//     registry.
//
// Two layers are available:
//
//   - instance layer: Provide concrete values, Seal the container, Resolve
//     and Inject at will. Lookup misses follow an optional-wrapping
//     convention (val, ok, err) so missing dependencies are cheap to handle.
//
//   - constructor layer: Register func(deps...) T constructors and call
//     Build, which validates the whole graph (missing providers, cycles) and
//     eagerly instantiates singletons. Transient providers construct a fresh
//     value per resolve.
//
// Concurrency: a sealed (or built) container is immutable and safe for
// shared read-only access across goroutines. That is the only guarantee.
//
// Import
//
//	"github.com/hbenali/mirror/di"
package di
