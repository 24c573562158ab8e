package mirror

import (
	"errors"
	"strconv"
)

var (
	// ErrNilTarget is returned when an operation is applied to a nil value.
	ErrNilTarget = errors.New("mirror: nil target")

	// ErrNotPointer is returned when a mutating operation (Set) receives a
	// target that is not a pointer to a struct. Mutation through a copy would
	// silently go nowhere, so it is rejected up front.
	ErrNotPointer = errors.New("mirror: target must be a pointer to a struct")

	// ErrBuilderPanic is returned if the dynamic struct builder panics inside
	// the runtime (reflect.StructOf) despite prior validation.
	ErrBuilderPanic = errors.New("mirror: panic while building struct type")
)

// NotAStructError is returned when a struct operation is applied to a value
// whose underlying kind is not a struct.
type NotAStructError struct {
	// Path is the type path of the offending value.
	Path string
}

// Error implements the error interface.
func (e NotAStructError) Error() string {
	// Example: mirror: examples.Player is not a struct -> mirror: int is not a struct
	return "mirror: " + e.Path + " is not a struct"
}

// FieldNotFoundError is returned when a named field does not exist on the
// target struct.
type FieldNotFoundError struct {
	// Struct is the type path of the struct that was inspected.
	Struct string

	// Field is the requested field name.
	Field string
}

// Error implements the error interface.
func (e FieldNotFoundError) Error() string {
	// Example: mirror: examples.User has no field "Email"
	return "mirror: " + e.Struct + " has no field " + strconv.Quote(e.Field)
}

// UnexportedFieldError is returned when a field exists but cannot be read or
// written from outside its defining package.
type UnexportedFieldError struct {
	Struct string
	Field  string
}

// Error implements the error interface.
func (e UnexportedFieldError) Error() string {
	// Example: mirror: examples.User field "secret" is unexported
	return "mirror: " + e.Struct + " field " + strconv.Quote(e.Field) + " is unexported"
}

// NilEmbeddedError is returned when a promoted field cannot be reached
// because an embedded pointer along its index path is nil. Reading or
// writing through it would require an indirection the runtime refuses.
type NilEmbeddedError struct {
	Struct string
	Field  string
}

// Error implements the error interface.
func (e NilEmbeddedError) Error() string {
	// Example: mirror: examples.Player field "Wins" is behind a nil embedded pointer
	return "mirror: " + e.Struct + " field " + strconv.Quote(e.Field) + " is behind a nil embedded pointer"
}

// TypeMismatchError is returned when a value cannot be assigned to a field
// because the types are incompatible. No implicit conversion is attempted.
type TypeMismatchError struct {
	Field string

	// Want is the type path the field expects.
	Want string

	// Got is the type path of the value that was supplied.
	Got string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	// Example: mirror: field "Age" wants int, got string
	return "mirror: field " + strconv.Quote(e.Field) + " wants " + e.Want + ", got " + e.Got
}

// DuplicateFieldError is returned by the dynamic builder when the same field
// name is added twice.
type DuplicateFieldError struct{ Field string }

// Error implements the error interface.
func (e DuplicateFieldError) Error() string {
	// Example: mirror: duplicate field "Name"
	return "mirror: duplicate field " + strconv.Quote(e.Field)
}

// InvalidFieldNameError is returned by the dynamic builder when a field name
// is not an exported Go identifier.
type InvalidFieldNameError struct{ Field string }

// Error implements the error interface.
func (e InvalidFieldNameError) Error() string {
	// Example: mirror: invalid field name "name" (must be an exported identifier)
	return "mirror: invalid field name " + strconv.Quote(e.Field) + " (must be an exported identifier)"
}

// DuplicateStaticError is returned when a static descriptor is registered
// under a path that already has one.
type DuplicateStaticError struct{ Path string }

// Error implements the error interface.
func (e DuplicateStaticError) Error() string {
	// Example: mirror: static descriptor already registered for "examples.User"
	return "mirror: static descriptor already registered for " + strconv.Quote(e.Path)
}
