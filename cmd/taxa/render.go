package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kaytchjam/taxa/internal/taxonomy"
)

// renderTree writes an indented view of the hierarchy, one taxon summary per
// line, truncated to width.
func renderTree(w io.Writer, root *taxonomy.Taxon, width int) {
	renderSubtree(w, root, 0, width)
}

func renderSubtree(w io.Writer, tx *taxonomy.Taxon, depth, width int) {
	line := strings.Repeat("  ", depth) + tx.String()
	if width > 1 && len(line) > width {
		line = line[:width-1] + "…"
	}
	fmt.Fprintln(w, line)
	for _, b := range tx.Branches() {
		renderSubtree(w, b, depth+1, width)
	}
}
