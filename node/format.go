package node

import (
	"iter"
	"strings"
)

// format renders a container in flow style. Kinds other than Map and
// Sequence are prefixed with their tag. Map entries are sorted.
func format(n Node) string {
	var b strings.Builder
	writeFlow(&b, n)
	return b.String()
}

func writeFlow(b *strings.Builder, n Node) {
	switch x := n.(type) {
	case *Map:
		writeEntries(b, SortedEntries(x), false)
	case *OrderedMap:
		b.WriteString("!!omap ")
		writeEntries(b, x.Entries(), false)
	case *Pairs:
		b.WriteString("!!pairs ")
		writeEntries(b, x.Entries(), false)
	case *Set:
		b.WriteString("!!set ")
		writeEntries(b, x.es.seq(), true)
	case *Sequence:
		b.WriteByte('[')
		for i, v := range x.list {
			if i > 0 {
				b.WriteString(", ")
			}
			writeFlow(b, v)
		}
		b.WriteByte(']')
	default:
		b.WriteString(n.String())
	}
}

func writeEntries(b *strings.Builder, es iter.Seq2[Node, Node], keysOnly bool) {
	b.WriteByte('{')
	i := 0
	for k, v := range es {
		if i > 0 {
			b.WriteString(", ")
		}
		i++
		writeFlow(b, k)
		if keysOnly {
			continue
		}
		b.WriteString(": ")
		writeFlow(b, v)
	}
	b.WriteByte('}')
}
