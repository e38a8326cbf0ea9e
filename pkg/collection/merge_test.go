package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSameDeclaredType(t *testing.T) {
	a, err := From(Primitive(KindInteger), 1, 2)
	require.NoError(t, err)
	b, err := From(Primitive(KindInteger), 3, 4, 5)
	require.NoError(t, err)

	require.NoError(t, a.Merge(b))

	assert.Equal(t, 5, a.Len())
	for _, v := range b.Values() {
		assert.True(t, a.Contains(v))
	}
	assert.Equal(t, 3, b.Len(), "source must be untouched")
}

func TestMergeIgnoresSourceKeys(t *testing.T) {
	a, err := From(Primitive(KindString), "x")
	require.NoError(t, err)
	b := New[string](Primitive(KindString))
	require.NoError(t, b.Set(StringKey("named"), "y"))

	require.NoError(t, a.Merge(b))

	assert.False(t, a.ContainsKey(StringKey("named")), "merge auto-indexes, never copies keys")
	v, ok := a.Get(IndexKey(1))
	assert.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestMergeIncompatiblePrimitives(t *testing.T) {
	a, err := From(Primitive(KindInteger), 1)
	require.NoError(t, err)
	b, err := From(Primitive(KindString), "s")
	require.NoError(t, err)

	err = a.Merge(b)

	require.ErrorIs(t, err, ErrIncompatibleTypes)
	assert.Contains(t, err.Error(), "integer")
	assert.Contains(t, err.Error(), "string")
	assert.Contains(t, err.Error(), a.Name())
	assert.Contains(t, err.Error(), b.Name())
	assert.Equal(t, 1, a.Len(), "failed merge must leave the destination unchanged")
	assert.Equal(t, 1, b.Len(), "failed merge must leave the source unchanged")
}

func TestMergeUntypedDestinationAcceptsAnything(t *testing.T) {
	dst := NewUntyped()
	src, err := From(Primitive(KindInteger), 1, 2)
	require.NoError(t, err)

	require.NoError(t, dst.Merge(src))
	assert.Equal(t, 2, dst.Len())
}

func TestMergeTypedDestinationRejectsUntypedSource(t *testing.T) {
	dst, err := From(Primitive(KindInteger), 1)
	require.NoError(t, err)
	src := NewUntyped()
	require.NoError(t, src.Add(2))

	err = dst.Merge(src)

	require.ErrorIs(t, err, ErrIncompatibleTypes)
	assert.Equal(t, 1, dst.Len())
}

func TestMergeInterfaceDestinationFromConcreteSource(t *testing.T) {
	animals := New[animal](Of[animal]())
	require.NoError(t, animals.Add(&cat{name: "tom"}))
	dogs, err := From(Of[*dog](), &dog{name: "rex"}, &dog{name: "fido"})
	require.NoError(t, err)

	require.NoError(t, animals.Merge(dogs))
	assert.Equal(t, 3, animals.Len())
}

func TestMergeConcreteDestinationFromImplementedInterface(t *testing.T) {
	// Declared-type compatibility holds because *dog implements animal;
	// actual elements are still validated one by one on insertion.
	dogs := New[*dog](Of[*dog]())
	require.NoError(t, dogs.Add(&dog{name: "rex"}))

	onlyDogs := New[animal](Of[animal]())
	require.NoError(t, onlyDogs.Add(&dog{name: "fido"}))
	require.NoError(t, dogs.Merge(onlyDogs))
	assert.Equal(t, 2, dogs.Len())
}

func TestMergeBroaderSourceFailsMidMerge(t *testing.T) {
	// The compatibility check compares declared types only, so an animal
	// source holding a cat passes the check against a dog destination and
	// fails element validation once the cat is reached. Elements accepted
	// before the failure stay in place.
	dogs := New[*dog](Of[*dog]())
	mixed := New[animal](Of[animal]())
	require.NoError(t, mixed.Add(&dog{name: "fido"}))
	require.NoError(t, mixed.Add(&cat{name: "tom"}))

	err := dogs.Merge(mixed)

	require.ErrorIs(t, err, ErrInvalidElement)
	assert.Equal(t, 1, dogs.Len())
}

func TestMergeUnrelatedObjectTypes(t *testing.T) {
	dogs := New[*dog](Of[*dog]())
	require.NoError(t, dogs.Add(&dog{name: "rex"}))
	rocks, err := From(Of[*rock](), &rock{mass: 3})
	require.NoError(t, err)

	err = dogs.Merge(rocks)

	require.ErrorIs(t, err, ErrIncompatibleTypes)
	assert.Equal(t, 1, dogs.Len())
	assert.Equal(t, 1, rocks.Len())
}

func TestReplacePreservesStringKeysAppendsIndexed(t *testing.T) {
	dst := New[string](Primitive(KindString))
	require.NoError(t, dst.Set(StringKey("color"), "red"))
	require.NoError(t, dst.Add("zero")) // index 0

	src := New[string](Primitive(KindString))
	require.NoError(t, src.Set(StringKey("color"), "blue"))
	require.NoError(t, src.Add("appended"))

	require.NoError(t, dst.Replace(src))

	v, ok := dst.Get(StringKey("color"))
	assert.True(t, ok)
	assert.Equal(t, "blue", v, "string keys overwrite")

	v, ok = dst.Get(IndexKey(1))
	assert.True(t, ok)
	assert.Equal(t, "appended", v, "indexed elements append at the next auto index")
	assert.Equal(t, 3, dst.Len())
}

func TestReplaceIncompatible(t *testing.T) {
	dst, err := From(Primitive(KindInteger), 1)
	require.NoError(t, err)
	src, err := From(Primitive(KindBoolean), true)
	require.NoError(t, err)

	err = dst.Replace(src)

	require.ErrorIs(t, err, ErrIncompatibleTypes)
	assert.Equal(t, 1, dst.Len())
}
