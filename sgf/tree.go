package sgf

// Node is a single position record in a game tree: an ordered sequence of
// properties and an ordered sequence of child nodes. The first child is
// the main line; further children are variations.
type Node struct {
	Properties []*Property
	Children   []*Node
}

// NewNode creates an empty node.
func NewNode() *Node {
	return &Node{}
}

// NewGameTree creates a root node for a new Go game record of the given
// board size, carrying the standard root properties.
func NewGameTree(width, height int) *Node {
	root := NewNode()
	root.SetProperty(IntProp("GM", 1))
	root.SetProperty(IntProp("FF", 4))
	root.SetProperty(SimpleTextProp("CA", "UTF-8"))
	root.SetProperty(SizeProp(width, height))
	return root
}

// Property returns the first property with the tag, or nil.
func (n *Node) Property(tag Tag) *Property {
	for _, p := range n.Properties {
		if p.Tag == tag {
			return p
		}
	}
	return nil
}

// SetProperty replaces the property with the same tag, or appends it.
func (n *Node) SetProperty(p *Property) {
	for i, q := range n.Properties {
		if q.Tag == p.Tag {
			n.Properties[i] = p
			return
		}
	}
	n.Properties = append(n.Properties, p)
}

// RemoveProperty deletes all properties with the tag and reports whether
// any were present.
func (n *Node) RemoveProperty(tag Tag) bool {
	kept := n.Properties[:0]
	removed := false
	for _, p := range n.Properties {
		if p.Tag == tag {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	n.Properties = kept
	return removed
}

// AddChild appends a child node and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// IsGameInfoNode reports whether any property on the node carries game
// info. At most one node per path from the root should.
func (n *Node) IsGameInfoNode() bool {
	for _, p := range n.Properties {
		if p.Tag.Category() == CategoryGameInfo {
			return true
		}
	}
	return false
}

// MoveProperty returns the node's B or W property, or nil.
func (n *Node) MoveProperty() *Property {
	for _, p := range n.Properties {
		if _, ok := p.MoveColor(); ok {
			return p
		}
	}
	return nil
}

// Collection is an ordered sequence of game trees, the top-level unit of
// an SGF file.
type Collection struct {
	Games []*Node
}

// NewCollection creates a collection holding the given game trees.
func NewCollection(games ...*Node) *Collection {
	return &Collection{Games: games}
}
