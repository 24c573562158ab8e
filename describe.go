package mirror

import "reflect"

// FieldInfo describes a single struct field.
type FieldInfo struct {
	// Name is the field name as declared.
	Name string

	// Path is the type path of the field's type (see PathOf).
	Path string

	// Type is the field's reflect.Type. It is nil on statically derived
	// descriptors (cmd/derive output), where only the path is known.
	Type reflect.Type

	// Tag is the full struct tag.
	Tag reflect.StructTag

	// Index is the field's position within the struct.
	Index int

	// Exported reports whether the field is accessible from other packages.
	Exported bool
}

// StructInfo describes a struct type: its name, its type path, and its fields
// in declaration order.
//
// Descriptors are plain values. Once returned they are never mutated by this
// package, so they may be shared freely across goroutines.
type StructInfo struct {
	Name   string
	Path   string
	Fields []FieldInfo
}

// Field returns the descriptor for the named field.
func (si StructInfo) Field(name string) (FieldInfo, bool) {
	for _, f := range si.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldInfo{}, false
}

// FieldNames returns the field names in declaration order.
func (si StructInfo) FieldNames() []string {
	names := make([]string, len(si.Fields))
	for i, f := range si.Fields {
		names[i] = f.Name
	}
	return names
}

// Describe builds a descriptor for a struct value or a pointer to one.
//
// Unexported fields are included and marked Exported=false, so callers can
// see the full shape of a type even where access is not possible.
//
// It returns:
//   - ErrNilTarget if target is nil
//   - NotAStructError if the underlying kind is not a struct
func Describe(target any) (StructInfo, error) {
	if target == nil {
		return StructInfo{}, ErrNilTarget
	}

	t := reflect.TypeOf(target)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return DescribeType(t)
}

// DescribeType builds a descriptor for a struct reflect.Type.
func DescribeType(t reflect.Type) (StructInfo, error) {
	if t == nil {
		return StructInfo{}, ErrNilTarget
	}
	if t.Kind() != reflect.Struct {
		return StructInfo{}, NotAStructError{Path: PathOf(t)}
	}

	info := StructInfo{
		Name:   t.Name(),
		Path:   PathOf(t),
		Fields: make([]FieldInfo, 0, t.NumField()),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		info.Fields = append(info.Fields, FieldInfo{
			Name:     f.Name,
			Path:     PathOf(f.Type),
			Type:     f.Type,
			Tag:      f.Tag,
			Index:    i,
			Exported: f.IsExported(),
		})
	}

	return info, nil
}
