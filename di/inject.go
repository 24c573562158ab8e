package di

import (
	"reflect"

	"github.com/hbenali/mirror"
)

// injectTag marks struct fields that receive dependencies from the
// container. An empty tag value means "match the field's type path"; a
// non-empty value overrides the key:
//
//	type UserService struct {
//	    Log   examples.Logger     `inject:""`
//	    Store *examples.UserStore `inject:"store.primary"`
//	}
const injectTag = "inject"

// Inject wires the tagged fields of target from the container's registry.
//
// target must be a non-nil pointer to a struct so the assignments are
// visible to the caller. For every field carrying the inject tag, the key
// (tag value, or the field's type path) is resolved and the field is set by
// reference. Fields without the tag are left untouched.
//
// It returns:
//   - ErrNotInjectable if target is not a non-nil pointer to a struct
//   - mirror.UnexportedFieldError if a tagged field cannot be set
//   - MissingDependencyError if a key is not in the registry
//   - WrongTypeDependencyError if a stored value is not assignable to the field
//   - any error surfaced by Resolve (ErrNotBuilt, ConstructError)
//
// Injection stops at the first failure; earlier fields keep their injected
// values.
func (c *Container) Inject(target any) error {
	if target == nil {
		return ErrNotInjectable
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return ErrNotInjectable
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrNotInjectable
	}

	t := v.Type()
	structPath := mirror.PathOf(t)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		tagKey, tagged := sf.Tag.Lookup(injectTag)
		if !tagged {
			continue
		}
		if !sf.IsExported() {
			return mirror.UnexportedFieldError{Struct: structPath, Field: sf.Name}
		}

		key := tagKey
		if key == "" {
			key = mirror.PathOf(sf.Type)
		}

		raw, ok, err := c.Resolve(key)
		if err != nil {
			return err
		}
		if !ok {
			return MissingDependencyError{Key: key, Field: sf.Name}
		}

		rv := reflect.ValueOf(raw)
		if !rv.Type().AssignableTo(sf.Type) {
			return WrongTypeDependencyError{
				Key:  key,
				Want: mirror.PathOf(sf.Type),
				Got:  mirror.PathOfValue(raw),
			}
		}

		v.Field(i).Set(rv)
	}

	return nil
}
