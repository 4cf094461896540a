package nbt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpRendersCompoundAndList(t *testing.T) {
	n := buildCompound(map[string]Node{
		"name":  newString("Steve"),
		"items": buildIntList(1, 2, 3),
	})

	var buf bytes.Buffer
	Dump(&buf, n)

	out := buf.String()
	require.True(t, strings.Contains(out, "Compound(2)"))
	require.True(t, strings.Contains(out, `"name"`))
	require.True(t, strings.Contains(out, "String(\"Steve\")"))
	require.True(t, strings.Contains(out, "List[Int](3)"))
}
