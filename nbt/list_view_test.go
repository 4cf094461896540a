package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildIntList(values ...int32) Node {
	children := make([]Node, len(values))
	for i, v := range values {
		children[i] = newInt(v)
	}
	return newList(&List{elem: TagInt, children: children})
}

func TestListViewBasics(t *testing.T) {
	n := buildIntList(10, 20, 30)

	v, err := AsListOf[int32](n)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.False(t, v.IsEmpty())

	first, err := v.Front()
	require.NoError(t, err)
	require.EqualValues(t, 10, first)

	last, err := v.Back()
	require.NoError(t, err)
	require.EqualValues(t, 30, last)

	_, err = v.Get(3)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestListViewWrongElementTagMismatches(t *testing.T) {
	n := buildIntList(1, 2)
	_, err := AsListOf[int8](n)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestListViewUntyped(t *testing.T) {
	n := buildIntList(1, 2, 3)
	v, err := AsList(n)
	require.NoError(t, err)

	elem, err := v.Get(1)
	require.NoError(t, err)
	require.Equal(t, TagInt, elem.Tag())
}

func TestListViewIteratorMultiPass(t *testing.T) {
	n := buildIntList(5, 6, 7)
	v, err := AsListOf[int32](n)
	require.NoError(t, err)

	it1 := v.Iterator()
	it2 := v.Iterator()

	var got1, got2 []int32
	for {
		a, ok := it1.Next()
		if !ok {
			break
		}
		got1 = append(got1, a)
	}
	for {
		b, ok := it2.Next()
		if !ok {
			break
		}
		got2 = append(got2, b)
	}
	require.Equal(t, got1, got2)
	require.Equal(t, []int32{5, 6, 7}, got1)
}

func TestListViewEquality(t *testing.T) {
	a := buildIntList(1, 2, 3)
	b := buildIntList(1, 2, 3)
	c := buildIntList(1, 2, 4)

	va, _ := AsListOf[int32](a)
	vb, _ := AsListOf[int32](b)
	vc, _ := AsListOf[int32](c)

	require.True(t, va.Equal(vb))
	require.False(t, va.Equal(vc))

	// Same underlying List: equal without traversal.
	same, _ := AsListOf[int32](a)
	require.True(t, va.Equal(same))
}

func TestListViewEmptyListAnyElementTypeSucceeds(t *testing.T) {
	n := newList(&List{elem: TagEnd})
	v, err := AsListOf[string](n)
	require.NoError(t, err)
	require.True(t, v.IsEmpty())
}
