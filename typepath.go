package mirror

import (
	"reflect"
	"strconv"
	"strings"
)

// PathOf returns a stable, human-readable identifier for a type, suitable for
// use as a registry key: "examples.Logger", "*examples.User",
// "[]examples.Product", "map[string]examples.User". Builtins are reported by
// their plain name ("int", "string").
//
// The derivation is deterministic: the same type always yields the same path,
// and the path is never empty.
func PathOf(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + PathOf(t.Elem())
	case reflect.Slice:
		return "[]" + PathOf(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + PathOf(t.Elem())
	case reflect.Map:
		return "map[" + PathOf(t.Key()) + "]" + PathOf(t.Elem())
	case reflect.Chan:
		return "chan " + PathOf(t.Elem())
	}

	name := t.Name()
	if name == "" {
		// Anonymous structs, func types, etc. fall back to the runtime's own
		// rendering, which is stable for a given type.
		return t.String()
	}

	pkg := t.PkgPath()
	if pkg == "" {
		// Builtin or predeclared type.
		return name
	}

	return pkgBase(pkg) + "." + name
}

// TypePath returns the path of the type parameter T without requiring a value.
//
//	mirror.TypePath[*examples.Logger]() // "*examples.Logger"
func TypePath[T any]() string {
	return PathOf(reflect.TypeFor[T]())
}

// PathOfValue returns the path of a value's dynamic type.
// A nil value has the path "<nil>".
func PathOfValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	return PathOf(reflect.TypeOf(v))
}

// pkgBase returns the last element of an import path.
// "github.com/acme/examples" -> "examples".
func pkgBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
