package di

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrSealed is returned when Provide or Register is called on a sealed
	// (or built) container.
	ErrSealed = errors.New("di: container is sealed")

	// ErrNotBuilt is returned when a constructor-backed key is resolved
	// before Build has validated the graph.
	ErrNotBuilt = errors.New("di: container not built")

	// ErrAlreadyBuilt is returned when Build is called twice.
	ErrAlreadyBuilt = errors.New("di: container already built")

	// ErrNilValue is returned when a nil value is provided. A nil dependency
	// would satisfy lookups while silently breaking every consumer.
	ErrNilValue = errors.New("di: nil dependency value")

	// ErrNotInjectable is returned when an Inject target is not a non-nil
	// pointer to a struct. Injection mutates the target in place, which is
	// only visible through a pointer.
	ErrNotInjectable = errors.New("di: inject target must be a non-nil pointer to a struct")
)

// DuplicateProviderError is returned when a value or constructor is provided
// under a key that already has one.
type DuplicateProviderError struct{ Key string }

// Error implements the error interface.
func (e DuplicateProviderError) Error() string {
	// Example: di: duplicate provider for "examples.Logger"
	return "di: duplicate provider for " + strconv.Quote(e.Key)
}

// MissingDependencyError is returned when a key is not present in the
// registry. Field is set when the miss happened while injecting a struct
// field, and empty on direct resolves.
type MissingDependencyError struct {
	Key   string
	Field string
}

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	// Example: di: dependency "examples.Logger" missing (field "Log")
	msg := "di: dependency " + strconv.Quote(e.Key) + " missing"
	if e.Field != "" {
		msg += " (field " + strconv.Quote(e.Field) + ")"
	}
	return msg
}

// WrongTypeDependencyError is returned when a key resolves to a value whose
// type does not satisfy the requested static type. No conversion is
// attempted.
type WrongTypeDependencyError struct {
	Key string

	// Want is the type path the caller (or field) expects.
	Want string

	// Got is the type path of the stored value.
	Got string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: di: dependency "db" has wrong type (want *pg.DB, got *lite.DB)
	return "di: dependency " + strconv.Quote(e.Key) + " has wrong type (want " + e.Want + ", got " + e.Got + ")"
}

// InvalidConstructorError is returned by Register when a constructor does not
// have the shape func(deps...) T or func(deps...) (T, error).
type InvalidConstructorError struct{ Detail string }

// Error implements the error interface.
func (e InvalidConstructorError) Error() string {
	// Example: di: invalid constructor: must be a function
	return "di: invalid constructor: " + e.Detail
}

// CircularDependencyError is returned by Build when the constructor graph
// contains a cycle. Chain lists the type paths along the cycle.
type CircularDependencyError struct{ Chain []string }

// Error implements the error interface.
func (e CircularDependencyError) Error() string {
	// Example: di: circular dependency: a -> b -> a
	return "di: circular dependency: " + strings.Join(e.Chain, " -> ")
}

// ConstructError is returned when a constructor invocation fails during
// Build or a transient resolve. It wraps the constructor's own error.
type ConstructError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e ConstructError) Error() string {
	// Example: di: constructing "examples.UserStore": dial failed
	return "di: constructing " + strconv.Quote(e.Key) + ": " + e.Err.Error()
}

// Unwrap exposes the constructor's error to errors.Is / errors.As.
func (e ConstructError) Unwrap() error { return e.Err }
