package di

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbenali/mirror"
)

//
// -----------------------------------------------------------------------------
// Provide
// -----------------------------------------------------------------------------

// TestProvide_KeyedByTypePath verifies values land under their dynamic type path.
func TestProvide_KeyedByTypePath(t *testing.T) {
	t.Parallel()

	c := New()
	store := newUserStore()
	require.NoError(t, c.Provide(store))

	got, ok, err := c.Resolve("*di.userStore")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, store, got)
}

// TestProvide_NilRejected verifies nil values never enter the registry.
func TestProvide_NilRejected(t *testing.T) {
	t.Parallel()

	c := New()
	assert.ErrorIs(t, c.Provide(nil), ErrNilValue)
}

// TestProvide_Duplicate verifies one value per type path.
func TestProvide_Duplicate(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Provide(newUserStore()))

	err := c.Provide(newUserStore())
	var dup DuplicateProviderError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "*di.userStore", dup.Key)
}

// TestProvide_WithKey verifies named keys allow several values of one type.
func TestProvide_WithKey(t *testing.T) {
	t.Parallel()

	c := New()
	primary, replica := newUserStore(), newUserStore()
	require.NoError(t, c.Provide(primary))
	require.NoError(t, c.Provide(replica, WithKey("store.replica")))

	got, ok, err := c.Resolve("store.replica")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, replica, got)
}

// TestProvideAs_InterfaceBinding verifies a concrete value can be stored
// under an interface's type path.
func TestProvideAs_InterfaceBinding(t *testing.T) {
	t.Parallel()

	c := New()
	logger := &memLogger{}
	require.NoError(t, ProvideAs[log](c, logger))

	// The interface path is the key; the concrete path was never registered.
	assert.True(t, c.Has("di.log"))
	assert.False(t, c.Has("*di.memLogger"))

	got, ok, err := ResolveAs[log](c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, logger, got)
}

// TestProvideAs_NilInterface verifies a nil interface value is rejected.
func TestProvideAs_NilInterface(t *testing.T) {
	t.Parallel()

	c := New()
	assert.ErrorIs(t, ProvideAs[log](c, nil), ErrNilValue)
}

//
// -----------------------------------------------------------------------------
// Seal
// -----------------------------------------------------------------------------

// TestSeal_StopsWiring verifies Provide and Register fail after Seal.
func TestSeal_StopsWiring(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Provide(newUserStore()))
	c.Seal()

	assert.True(t, c.Sealed())
	assert.ErrorIs(t, c.Provide(&memLogger{}), ErrSealed)
	assert.ErrorIs(t, c.Register(newUserStore), ErrSealed)

	// Reads still work.
	_, ok, err := c.Resolve("*di.userStore")
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestSeal_Idempotent verifies repeated Seal calls are harmless.
func TestSeal_Idempotent(t *testing.T) {
	t.Parallel()

	c := New()
	c.Seal()
	c.Seal()
	assert.True(t, c.Sealed())
}

// TestSealed_SharedReads verifies concurrent readers on a sealed container.
func TestSealed_SharedReads(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Provide(newUserStore()))
	require.NoError(t, ProvideAs[log](c, &memLogger{}))
	c.Seal()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok, _ := c.Resolve("*di.userStore"); !ok {
					t.Error("store disappeared under concurrent reads")
					return
				}
				svc := &userService{}
				_ = c.Inject(svc)
			}
		}()
	}
	wg.Wait()
}

//
// -----------------------------------------------------------------------------
// Resolve
// -----------------------------------------------------------------------------

// TestResolve_MissingIsNotAnError verifies the optional-wrapping convention.
func TestResolve_MissingIsNotAnError(t *testing.T) {
	t.Parallel()

	c := New()
	val, ok, err := c.Resolve("nope.Nothing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

// TestResolveAs_WrongType verifies stored values are never coerced.
func TestResolveAs_WrongType(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Provide(newUserStore(), WithKey("di.log")))

	_, _, err := ResolveAs[log](c)
	var wrong WrongTypeDependencyError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, "di.log", wrong.Key)
	assert.Equal(t, "*di.userStore", wrong.Got)
}

// TestMustResolve_PanicsOnMiss verifies the fail-fast variant.
func TestMustResolve_PanicsOnMiss(t *testing.T) {
	t.Parallel()

	c := New()
	assert.PanicsWithError(t, `di: dependency "nope.Nothing" missing`, func() {
		_ = c.MustResolve("nope.Nothing")
	})
}

// TestMustResolveAs_ReturnsValue verifies the happy path of the typed variant.
func TestMustResolveAs_ReturnsValue(t *testing.T) {
	t.Parallel()

	c := New()
	store := newUserStore()
	require.NoError(t, c.Provide(store))

	assert.Same(t, store, MustResolveAs[*userStore](c))
}

//
// -----------------------------------------------------------------------------
// Introspection
// -----------------------------------------------------------------------------

// TestHasAndKeys verifies the diagnostic surface covers instances and providers.
func TestHasAndKeys(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Provide(newUserStore()))
	require.NoError(t, c.Register(func(s *userStore) *memLogger { return &memLogger{} }))

	assert.True(t, c.Has("*di.userStore"))
	assert.True(t, c.Has("*di.memLogger"))
	assert.False(t, c.Has(mirror.TypePath[log]()))

	assert.ElementsMatch(t, []string{"*di.userStore", "*di.memLogger"}, c.Keys())
}
