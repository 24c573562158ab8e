package mirror

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Builder assembles a struct type at run time, field by field.
//
// Validation errors (duplicate or invalid field names, nil types) are
// recorded as they happen and surfaced by Build, so calls can be chained:
//
//	st, err := mirror.NewBuilder().
//	    Field("Name", reflect.TypeFor[string](), `json:"name"`).
//	    Field("Age", reflect.TypeFor[int](), "").
//	    Build()
type Builder struct {
	fields []reflect.StructField
	seen   map[string]struct{}
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// Field appends a field and returns the builder for chaining.
//
// The name must be an exported Go identifier: the runtime cannot create
// unexported fields on behalf of another package.
func (b *Builder) Field(name string, typ reflect.Type, tag string) *Builder {
	if b.err != nil {
		return b
	}
	if !isExportedName(name) {
		b.err = InvalidFieldNameError{Field: name}
		return b
	}
	if typ == nil {
		b.err = fmt.Errorf("%w: field %q has nil type", ErrNilTarget, name)
		return b
	}
	if _, dup := b.seen[name]; dup {
		b.err = DuplicateFieldError{Field: name}
		return b
	}

	b.seen[name] = struct{}{}
	b.fields = append(b.fields, reflect.StructField{
		Name: name,
		Type: typ,
		Tag:  reflect.StructTag(tag),
	})
	return b
}

// Build materializes the struct type.
//
// Residual panics from reflect.StructOf (e.g. tag syntax the runtime
// rejects) are converted into ErrBuilderPanic rather than crashing the
// caller.
func (b *Builder) Build() (st *StructType, err error) {
	if b.err != nil {
		return nil, b.err
	}

	defer func() {
		if rec := recover(); rec != nil {
			st = nil
			err = fmt.Errorf("%w: %v", ErrBuilderPanic, rec)
		}
	}()

	typ := reflect.StructOf(b.fields)
	info, err := DescribeType(typ)
	if err != nil {
		return nil, err
	}

	return &StructType{typ: typ, info: info}, nil
}

// StructType is a dynamically built struct type.
//
// It is immutable after Build and safe for concurrent use; each call to New
// produces an independent instance.
type StructType struct {
	typ  reflect.Type
	info StructInfo
}

// Type returns the underlying reflect.Type.
func (st *StructType) Type() reflect.Type { return st.typ }

// Info returns the descriptor for the built type.
func (st *StructType) Info() StructInfo { return st.info }

// New allocates a zero instance of the built type.
func (st *StructType) New() *Instance {
	return &Instance{st: st, ptr: reflect.New(st.typ)}
}

// Instance is a single value of a dynamically built struct type, with field
// access by name.
type Instance struct {
	st  *StructType
	ptr reflect.Value
}

// Set writes a field by name. Errors follow the same taxonomy as the
// package-level Set.
func (in *Instance) Set(field string, value any) error {
	return Set(in.ptr.Interface(), field, value)
}

// Get reads a field by name.
func (in *Instance) Get(field string) (any, error) {
	return Get(in.ptr.Interface(), field)
}

// Interface returns a copy of the struct value.
func (in *Instance) Interface() any {
	return in.ptr.Elem().Interface()
}

// Addr returns a pointer to the underlying struct, for callers that need to
// keep mutating it or hand it to an injector.
func (in *Instance) Addr() any {
	return in.ptr.Interface()
}

// Info returns the descriptor of the instance's type.
func (in *Instance) Info() StructInfo { return in.st.info }

// isExportedName reports whether s is a non-empty identifier starting with an
// uppercase letter.
func isExportedName(s string) bool {
	if s == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(r) {
		return false
	}
	for _, c := range s[size:] {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return false
		}
	}
	return true
}
