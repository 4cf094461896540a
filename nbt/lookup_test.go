package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupDescendsNestedCompounds(t *testing.T) {
	root := buildCompound(map[string]Node{
		"Data": buildCompound(map[string]Node{
			"Player": buildCompound(map[string]Node{
				"Health": newInt(20),
			}),
		}),
	})

	n, err := Lookup(root, "Data/Player/Health")
	require.NoError(t, err)
	v, err := AsInt(n)
	require.NoError(t, err)
	require.EqualValues(t, 20, v)

	n, err = Lookup(root, "/Data/Player/Health")
	require.NoError(t, err)
	v, err = AsInt(n)
	require.NoError(t, err)
	require.EqualValues(t, 20, v)
}

func TestLookupEmptyPathReturnsNodeItself(t *testing.T) {
	root := buildCompound(map[string]Node{"a": newInt(1)})
	n, err := Lookup(root, "")
	require.NoError(t, err)
	require.True(t, n.Equal(root))
}

func TestLookupMissingKeyFails(t *testing.T) {
	root := buildCompound(map[string]Node{
		"Data": buildCompound(map[string]Node{"Present": newInt(1)}),
	})
	_, err := Lookup(root, "Data/Missing")
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestLookupThroughNonCompoundFails(t *testing.T) {
	root := buildCompound(map[string]Node{"Data": newInt(1)})
	_, err := Lookup(root, "Data/Anything")
	require.ErrorIs(t, err, ErrTypeMismatch)
}
