package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Get
// -----------------------------------------------------------------------------

// TestGet_ByName verifies exported fields are readable by name, on values and pointers.
func TestGet_ByName(t *testing.T) {
	t.Parallel()

	acc := account{Name: "lina", Age: 34}

	got, err := Get(acc, "Name")
	require.NoError(t, err)
	assert.Equal(t, "lina", got)

	got, err = Get(&acc, "Age")
	require.NoError(t, err)
	assert.Equal(t, 34, got)
}

// TestGet_FieldNotFound verifies unknown names yield FieldNotFoundError with context.
func TestGet_FieldNotFound(t *testing.T) {
	t.Parallel()

	_, err := Get(account{}, "Nope")

	var notFound FieldNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "mirror.account", notFound.Struct)
	assert.Equal(t, "Nope", notFound.Field)
	assert.Equal(t, `mirror: mirror.account has no field "Nope"`, err.Error())
}

// TestGet_Unexported verifies unexported fields are refused, not zero-returned.
func TestGet_Unexported(t *testing.T) {
	t.Parallel()

	_, err := Get(account{}, "balance")

	var unexported UnexportedFieldError
	require.ErrorAs(t, err, &unexported)
	assert.Equal(t, "balance", unexported.Field)
}

// TestGet_Promoted verifies fields promoted through an embedded pointer are
// readable when the pointer is set, and fail with NilEmbeddedError when it is nil.
func TestGet_Promoted(t *testing.T) {
	t.Parallel()

	got, err := Get(profile{Stats: &Stats{Wins: 3}}, "Wins")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = Get(profile{}, "Wins")

	var nilEmbedded NilEmbeddedError
	require.ErrorAs(t, err, &nilEmbedded)
	assert.Equal(t, "mirror.profile", nilEmbedded.Struct)
	assert.Equal(t, "Wins", nilEmbedded.Field)
	assert.Equal(t, `mirror: mirror.profile field "Wins" is behind a nil embedded pointer`, err.Error())
}

// TestGet_NilAndNonStruct verifies nil targets and non-struct kinds are rejected.
func TestGet_NilAndNonStruct(t *testing.T) {
	t.Parallel()

	_, err := Get(nil, "X")
	assert.ErrorIs(t, err, ErrNilTarget)

	var p *account
	_, err = Get(p, "Name")
	assert.ErrorIs(t, err, ErrNilTarget)

	_, err = Get("hello", "Len")
	var notStruct NotAStructError
	assert.ErrorAs(t, err, &notStruct)
}

//
// -----------------------------------------------------------------------------
// GetAs
// -----------------------------------------------------------------------------

// TestGetAs_Typed verifies the typed read succeeds for matching dynamic types.
func TestGetAs_Typed(t *testing.T) {
	t.Parallel()

	age, err := GetAs[int](account{Age: 7}, "Age")
	require.NoError(t, err)
	assert.Equal(t, 7, age)
}

// TestGetAs_Mismatch verifies no conversion is attempted between dynamic and static types.
func TestGetAs_Mismatch(t *testing.T) {
	t.Parallel()

	_, err := GetAs[int64](account{Age: 7}, "Age")

	var mismatch TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "int64", mismatch.Want)
	assert.Equal(t, "int", mismatch.Got)
}

//
// -----------------------------------------------------------------------------
// Set
// -----------------------------------------------------------------------------

// TestSet_ByReference verifies mutation through a pointer is visible to the caller.
func TestSet_ByReference(t *testing.T) {
	t.Parallel()

	acc := account{Name: "old"}
	require.NoError(t, Set(&acc, "Name", "new"))
	assert.Equal(t, "new", acc.Name)
}

// TestSet_RejectsValueTarget verifies a plain struct value is refused: the
// write would only mutate a copy.
func TestSet_RejectsValueTarget(t *testing.T) {
	t.Parallel()

	acc := account{}
	assert.ErrorIs(t, Set(acc, "Name", "x"), ErrNotPointer)
}

// TestSet_NilTargets verifies nil and nil-pointer targets are rejected.
func TestSet_NilTargets(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Set(nil, "Name", "x"), ErrNilTarget)

	var p *account
	assert.ErrorIs(t, Set(p, "Name", "x"), ErrNilTarget)
}

// TestSet_TypeMismatch verifies incompatible assignments fail with both paths reported.
func TestSet_TypeMismatch(t *testing.T) {
	t.Parallel()

	acc := account{}
	err := Set(&acc, "Age", "not a number")

	var mismatch TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Age", mismatch.Field)
	assert.Equal(t, "int", mismatch.Want)
	assert.Equal(t, "string", mismatch.Got)
}

// TestSet_NilValue verifies nil clears nilable fields and is rejected elsewhere.
func TestSet_NilValue(t *testing.T) {
	t.Parallel()

	w := wallet{Owner: &account{}, Coins: []string{"a"}}

	require.NoError(t, Set(&w, "Owner", nil))
	assert.Nil(t, w.Owner)

	require.NoError(t, Set(&w, "Coins", nil))
	assert.Nil(t, w.Coins)

	acc := account{Age: 3}
	err := Set(&acc, "Age", nil)
	var mismatch TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "<nil>", mismatch.Got)
}

// TestSet_Promoted verifies writes to fields promoted through an embedded
// pointer reach the embedded struct, and fail with NilEmbeddedError when the
// pointer is nil instead of panicking.
func TestSet_Promoted(t *testing.T) {
	t.Parallel()

	p := profile{Stats: &Stats{Wins: 1}}
	require.NoError(t, Set(&p, "Wins", 9))
	assert.Equal(t, 9, p.Stats.Wins)

	err := Set(&profile{}, "Wins", 7)

	var nilEmbedded NilEmbeddedError
	require.ErrorAs(t, err, &nilEmbedded)
	assert.Equal(t, "mirror.profile", nilEmbedded.Struct)
	assert.Equal(t, "Wins", nilEmbedded.Field)
}

// TestSet_Unexported verifies unexported fields cannot be written.
func TestSet_Unexported(t *testing.T) {
	t.Parallel()

	acc := account{}
	err := Set(&acc, "balance", 1.0)

	var unexported UnexportedFieldError
	assert.ErrorAs(t, err, &unexported)
}
