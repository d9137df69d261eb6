package board

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the subtree rooted at b.
//
// Internal nodes are drawn as ellipses labelled with their level, position
// and size. Leaves are boxes filled with their colour. Edges are labelled
// with the quadrant the child occupies, so the fixed child order is visible.
func (b *Block) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph Board {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none, fontsize=10];\n\n")
	b.writeDOTNode(&buf, 0)
	buf.WriteString("}\n")
	return buf.String()
}

func (b *Block) writeDOTNode(buf *bytes.Buffer, id int) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	if !b.split {
		fmt.Fprintf(buf, "  %s [label=%q, shape=box, style=\"filled,rounded\", fillcolor=%q];\n",
			nodeID, fmt.Sprintf("%s\n(%d,%d) %d", b.colour, b.x, b.y, b.size), b.colour.Hex())
		return next
	}

	fmt.Fprintf(buf, "  %s [label=%q, shape=ellipse];\n", nodeID, fmt.Sprintf("L%d\n(%d,%d) %d", b.level, b.x, b.y, b.size))
	for q, c := range b.quads {
		fmt.Fprintf(buf, "  %s -> n%d [label=%q];\n", nodeID, next, Quadrant(q).String())
		next = c.writeDOTNode(buf, next)
	}
	return next
}

// RenderSVG renders the tree structure produced by ToDOT as an SVG document.
func (b *Block) RenderSVG(ctx context.Context) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(b.ToDOT()))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
