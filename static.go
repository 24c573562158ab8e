package mirror

import (
	"reflect"
	"sync"
)

// The static registry holds descriptors derived at build time by cmd/derive.
// Generated files register themselves from init(), after which lookups are
// read-only, so a RWMutex is all the coordination required.
var static = struct {
	mu    sync.RWMutex
	infos map[string]StructInfo
}{infos: make(map[string]StructInfo)}

// RegisterStatic records a build-time descriptor under its type path.
//
// Registering the same path twice returns DuplicateStaticError; generated
// code should be the only caller, so a duplicate means two generated files
// describe the same type.
func RegisterStatic(info StructInfo) error {
	static.mu.Lock()
	defer static.mu.Unlock()

	if _, exists := static.infos[info.Path]; exists {
		return DuplicateStaticError{Path: info.Path}
	}
	static.infos[info.Path] = info
	return nil
}

// MustRegisterStatic is RegisterStatic for init() blocks in generated code.
func MustRegisterStatic(info StructInfo) {
	if err := RegisterStatic(info); err != nil {
		panic(err)
	}
}

// StaticInfo returns the build-time descriptor for a type path, if one was
// registered.
func StaticInfo(path string) (StructInfo, bool) {
	static.mu.RLock()
	defer static.mu.RUnlock()

	info, ok := static.infos[path]
	return info, ok
}

// Lookup returns a descriptor for target, preferring a build-time descriptor
// and falling back to runtime Describe when none was generated.
func Lookup(target any) (StructInfo, error) {
	if target == nil {
		return StructInfo{}, ErrNilTarget
	}

	// Pointers resolve to their element descriptor, matching Describe.
	t := reflect.TypeOf(target)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if info, ok := StaticInfo(PathOf(t)); ok {
		return info, nil
	}
	return Describe(target)
}
