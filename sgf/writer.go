package sgf

import (
	"sort"
	"strings"

	"goatee/types"
)

// RenderError reports a value that cannot be encoded, such as an
// out-of-range coordinate.
type RenderError struct {
	Msg string
}

func (e *RenderError) Error() string {
	return "sgf: render: " + e.Msg
}

// categoryRank fixes the property order within a rendered node.
var categoryRank = map[Category]int{
	CategoryRoot:           0,
	CategoryGameInfo:       1,
	CategorySetup:          2,
	CategoryMove:           3,
	CategoryNodeAnnotation: 4,
	CategoryMoveAnnotation: 5,
	CategoryMarkup:         6,
	CategoryInherited:      7,
	CategoryTiming:         8,
	CategoryOther:          9,
}

// Render encodes a collection back to SGF text. Root properties found
// anywhere in a tree are emitted on its root node; setup properties are
// deduplicated so each node names a coordinate at most once.
func Render(c *Collection) ([]byte, error) {
	var b strings.Builder
	for _, root := range c.Games {
		if err := renderGame(&b, root); err != nil {
			return nil, err
		}
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func renderGame(b *strings.Builder, root *Node) error {
	hoisted := collectRootProps(root)
	b.WriteByte('(')
	if err := renderTree(b, root, root, hoisted); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

// collectRootProps gathers root-category properties from the whole tree
// in pre-order, keeping the first occurrence per tag.
func collectRootProps(root *Node) []*Property {
	var out []*Property
	seen := make(map[Tag]bool)
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, p := range n.Properties {
			if p.Tag.Category() == CategoryRoot && !seen[p.Tag] {
				seen[p.Tag] = true
				out = append(out, p)
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}

func renderTree(b *strings.Builder, n, root *Node, hoisted []*Property) error {
	for {
		if err := renderNode(b, n, n == root, hoisted); err != nil {
			return err
		}
		if len(n.Children) == 1 {
			n = n.Children[0]
			continue
		}
		for _, child := range n.Children {
			b.WriteByte('(')
			if err := renderTree(b, child, root, hoisted); err != nil {
				return err
			}
			b.WriteByte(')')
		}
		return nil
	}
}

func renderNode(b *strings.Builder, n *Node, isRoot bool, hoisted []*Property) error {
	props := nodeRenderProps(n, isRoot, hoisted)
	props = dedupSetup(props)
	sort.SliceStable(props, func(i, j int) bool {
		return categoryRank[props[i].Tag.Category()] < categoryRank[props[j].Tag.Category()]
	})

	b.WriteByte(';')
	for _, p := range props {
		values, err := renderValues(p)
		if err != nil {
			return &RenderError{Msg: err.Error()}
		}
		b.WriteString(string(p.Tag))
		for _, v := range values {
			b.WriteByte('[')
			b.WriteString(v)
			b.WriteByte(']')
		}
	}
	return nil
}

func nodeRenderProps(n *Node, isRoot bool, hoisted []*Property) []*Property {
	var props []*Property
	if isRoot {
		props = append(props, hoisted...)
	}
	for _, p := range n.Properties {
		if p.Tag.Category() == CategoryRoot {
			continue // emitted on the root via hoisted
		}
		props = append(props, p)
	}
	return props
}

// dedupSetup enforces at most one of AB/AW/AE per coordinate per node,
// first occurrence winning. Untouched properties keep their compressed
// spans; properties that lose coordinates are rewritten as point lists.
func dedupSetup(props []*Property) []*Property {
	seen := make(map[types.Coord]bool)
	out := props[:0]
	for _, p := range props {
		switch p.Tag {
		case "AB", "AW", "AE":
		default:
			out = append(out, p)
			continue
		}
		if len(p.Coords) == 0 {
			// Whole-board AE clears everything; nothing to deduplicate.
			out = append(out, p)
			continue
		}
		expanded := p.Coords.Expand()
		kept := expanded[:0]
		for _, c := range expanded {
			if !seen[c] {
				seen[c] = true
				kept = append(kept, c)
			}
		}
		if len(kept) == spanCoverage(p.Coords) {
			out = append(out, p)
			continue
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, &Property{Tag: p.Tag, Coords: types.Points(kept...)})
	}
	return out
}

// spanCoverage counts coordinates covered by the spans, duplicates
// included.
func spanCoverage(l types.CoordList) int {
	n := 0
	for _, span := range l {
		dx := span.To.X - span.From.X
		if dx < 0 {
			dx = -dx
		}
		dy := span.To.Y - span.From.Y
		if dy < 0 {
			dy = -dy
		}
		n += (dx + 1) * (dy + 1)
	}
	return n
}
