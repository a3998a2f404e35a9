package memory

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Tree is a labelled memory-estimate node with an ordered list of children,
// mirroring how the teacher's own operational tooling favors nested,
// human-readable breakdowns over a single opaque number.
type Tree struct {
	Name     string
	Estimate Range
	Children []*Tree
}

// NewTree returns a leaf Tree node.
func NewTree(name string, estimate Range) *Tree {
	return &Tree{Name: name, Estimate: estimate}
}

// AddChild appends a child node and returns the parent for chaining.
func (t *Tree) AddChild(child *Tree) *Tree {
	t.Children = append(t.Children, child)
	return t
}

// TotalEstimate returns this node's own estimate plus every descendant's,
// matching how a textual tree's root total should read as "everything below
// it, summed."
func (t *Tree) TotalEstimate() Range {
	total := t.Estimate
	for _, c := range t.Children {
		total = total.Add(c.TotalEstimate())
	}
	return total
}

// Render returns a human-readable, indented tree using go-humanize for byte
// counts (e.g. "1.2 GiB" rather than a raw integer), the same dependency the
// teacher already carries for its own operator-facing output.
func (t *Tree) Render() string {
	var b strings.Builder
	t.render(&b, 0)
	return b.String()
}

func (t *Tree) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	total := t.TotalEstimate()
	fmt.Fprintf(b, "%s%s: %s\n", indent, t.Name, humanizeRange(total))
	for _, c := range t.Children {
		c.render(b, depth+1)
	}
}

func humanizeRange(r Range) string {
	if r.Min == r.Max {
		return humanize.IBytes(uint64(r.Min))
	}
	return fmt.Sprintf("%s .. %s", humanize.IBytes(uint64(r.Min)), humanize.IBytes(uint64(r.Max)))
}

// AsMap renders the tree as a structured map, for callers that want
// machine-readable output instead of Render()'s text.
func (t *Tree) AsMap() map[string]any {
	total := t.TotalEstimate()
	out := map[string]any{
		"name":    t.Name,
		"minBytes": total.Min,
		"maxBytes": total.Max,
	}
	if len(t.Children) > 0 {
		children := make([]map[string]any, 0, len(t.Children))
		for _, c := range t.Children {
			children = append(children, c.AsMap())
		}
		out["children"] = children
	}
	return out
}
