package mirror

import "reflect"

// Get reads a field by name from a struct value or a pointer to one.
//
// It returns:
//   - ErrNilTarget if target is nil
//   - NotAStructError if the underlying kind is not a struct
//   - FieldNotFoundError if no field has that name
//   - UnexportedFieldError if the field cannot be read
//   - NilEmbeddedError if the field is promoted through a nil embedded pointer
func Get(target any, field string) (any, error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, ErrNilTarget
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, NotAStructError{Path: PathOf(v.Type())}
	}

	sf, ok := v.Type().FieldByName(field)
	if !ok {
		return nil, FieldNotFoundError{Struct: PathOf(v.Type()), Field: field}
	}
	if !sf.IsExported() {
		return nil, UnexportedFieldError{Struct: PathOf(v.Type()), Field: field}
	}

	fv, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, NilEmbeddedError{Struct: PathOf(v.Type()), Field: field}
	}
	return fv.Interface(), nil
}

// GetAs reads a field by name and asserts it to type T.
//
// The assertion is an exact dynamic-type check; there is no conversion
// between dynamic and static types. A stored int is not a usable int64.
func GetAs[T any](target any, field string) (T, error) {
	var zero T

	raw, err := Get(target, field)
	if err != nil {
		return zero, err
	}

	out, ok := raw.(T)
	if !ok {
		return zero, TypeMismatchError{
			Field: field,
			Want:  TypePath[T](),
			Got:   PathOfValue(raw),
		}
	}
	return out, nil
}

// Set writes a field by name through a pointer to a struct.
//
// The target must be a non-nil pointer so the mutation is visible to the
// caller; a plain struct value would only mutate a copy.
//
// It returns:
//   - ErrNilTarget if target is nil (or a nil pointer)
//   - ErrNotPointer if target is not a pointer to a struct
//   - FieldNotFoundError if no field has that name
//   - UnexportedFieldError if the field cannot be written
//   - NilEmbeddedError if the field is promoted through a nil embedded pointer
//   - TypeMismatchError if value is not assignable to the field
func Set(target any, field string, value any) error {
	if target == nil {
		return ErrNilTarget
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer {
		return ErrNotPointer
	}
	if v.IsNil() {
		return ErrNilTarget
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrNotPointer
	}

	structPath := PathOf(v.Type())

	sf, ok := v.Type().FieldByName(field)
	if !ok {
		return FieldNotFoundError{Struct: structPath, Field: field}
	}
	if !sf.IsExported() {
		return UnexportedFieldError{Struct: structPath, Field: field}
	}

	// Walk the index path by hand instead of FieldByIndex: a promoted field
	// behind a nil embedded pointer must surface as an error, not a panic.
	fv := v
	for i, x := range sf.Index {
		if i > 0 {
			for fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					return NilEmbeddedError{Struct: structPath, Field: field}
				}
				fv = fv.Elem()
			}
		}
		fv = fv.Field(x)
	}

	if value == nil {
		switch fv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			fv.Set(reflect.Zero(fv.Type()))
			return nil
		default:
			return TypeMismatchError{Field: field, Want: PathOf(fv.Type()), Got: "<nil>"}
		}
	}

	vv := reflect.ValueOf(value)
	if !vv.Type().AssignableTo(fv.Type()) {
		return TypeMismatchError{
			Field: field,
			Want:  PathOf(fv.Type()),
			Got:   PathOf(vv.Type()),
		}
	}

	fv.Set(vv)
	return nil
}
