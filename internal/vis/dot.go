// Package vis renders heap snapshots for the presentation layer: a graphviz
// DOT document of the implicit tree and a plain text form of the array.
package vis

import (
	"fmt"

	"github.com/valyala/bytebufferpool"

	"heapvis/internal/heap"
)

// Node styling of the tree view. Uniform circle size, swapped pair in red.
const (
	highlightColor = "#FF4B4B"
	nodeColor      = "white"
	edgeColor      = "green"
)

// Tree renders elements as a DOT digraph. Parent i points to children 2i+1
// and 2i+2; when swapped is non-nil those two positions are filled with the
// highlight color. An empty slice yields a valid empty graph.
func Tree[T any](elements []T, swapped *heap.Swap) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	_, _ = b.WriteString("digraph {\n\tbgcolor=black;\n")

	for i, v := range elements {
		color, font := nodeColor, "black"
		if swapped != nil && (i == swapped.A || i == swapped.B) {
			color, font = highlightColor, "white"
		}

		_, _ = fmt.Fprintf(b,
			"\t%d [label=\"%v\" shape=circle style=filled color=\"%s\" fontcolor=\"%s\" fixedsize=true width=0.8 height=0.8 fontsize=14];\n",
			i, v, color, font)

		left, right := 2*i+1, 2*i+2
		if left < len(elements) {
			_, _ = fmt.Fprintf(b, "\t%d -> %d [color=\"%s\"];\n", i, left, edgeColor)
		}
		if right < len(elements) {
			_, _ = fmt.Fprintf(b, "\t%d -> %d [color=\"%s\"];\n", i, right, edgeColor)
		}
	}

	_, _ = b.WriteString("}\n")

	return b.String()
}

// Array renders elements the way the original UI shows the backing array,
// e.g. "[10, 45, 34]".
func Array[T any](elements []T) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	_ = b.WriteByte('[')
	for i, v := range elements {
		if i != 0 {
			_, _ = b.WriteString(", ")
		}
		_, _ = fmt.Fprintf(b, "%v", v)
	}
	_ = b.WriteByte(']')

	return b.String()
}
