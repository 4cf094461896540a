package nbt

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented, human-readable rendering of n to w. It is a
// debugging aid, not a wire format.
func Dump(w io.Writer, n Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.tag {
	case TagCompound:
		compound, _ := AsCompound(n)
		fmt.Fprintf(w, "Compound(%d):\n", compound.Len())
		compound.Range(func(key string, value Node) bool {
			fmt.Fprintf(w, "%s%q: ", indent, key)
			dump(w, value, depth+1)
			return true
		})

	case TagList:
		list, _ := AsList(n)
		fmt.Fprintf(w, "List[%s](%d):\n", n.list.elem, list.Len())
		it := list.Iterator()
		i := 0
		for elem, ok := it.Next(); ok; elem, ok = it.Next() {
			fmt.Fprintf(w, "%s[%d]: ", indent, i)
			dump(w, elem, depth+1)
			i++
		}

	default:
		fmt.Fprintf(w, "%s\n", n.String())
	}
}
