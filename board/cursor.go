package board

import (
	"goatee/sgf"
	"goatee/types"
)

// Cursor is a zipper positioned at one node of a game tree, carrying the
// board state derived from the path to it. Cursors are immutable: every
// operation returns a new cursor and never touches the one it was called
// on, so callers may keep cursors into older versions of a tree.
//
// An edit marks the cursor's subtree as diverged from what its parent
// recorded; walking upward reconciles lazily, rebuilding each ancestor
// node with the replaced child on the way to the root.
type Cursor struct {
	parent     *Cursor
	childIndex int
	node       *sgf.Node
	modified   bool
	board      *State
}

// RootCursor opens a cursor at a game tree's root.
func RootCursor(root *sgf.Node) *Cursor {
	return &Cursor{childIndex: -1, node: root, board: NewRootState(root)}
}

// Node returns the node the cursor is positioned at.
func (c *Cursor) Node() *sgf.Node { return c.node }

// Board returns the board state at the cursor's node.
func (c *Cursor) Board() *State { return c.board }

// IsRoot reports whether the cursor is at a tree root.
func (c *Cursor) IsRoot() bool { return c.parent == nil }

// ChildIndex returns the cursor's index among its parent's children, -1
// at the root.
func (c *Cursor) ChildIndex() int { return c.childIndex }

// NumChildren returns the number of child nodes.
func (c *Cursor) NumChildren() int { return len(c.node.Children) }

// Child descends to the i'th child, or returns nil if there is none.
func (c *Cursor) Child(i int) *Cursor {
	if i < 0 || i >= len(c.node.Children) {
		return nil
	}
	child := c.node.Children[i]
	return &Cursor{
		parent:     c,
		childIndex: i,
		node:       child,
		board:      childState(c.board, child),
	}
}

// Children returns cursors for every child, deriving them all from one
// shared reset of the current board.
func (c *Cursor) Children() []*Cursor {
	if len(c.node.Children) == 0 {
		return nil
	}
	base := c.board.Clone()
	base.resetForNode()
	out := make([]*Cursor, len(c.node.Children))
	for i, child := range c.node.Children {
		b := base.Clone()
		for _, p := range child.Properties {
			b.applyProperty(p)
		}
		out[i] = &Cursor{parent: c, childIndex: i, node: child, board: b}
	}
	return out
}

// Parent ascends one level, or returns nil at the root. If the cursor's
// subtree was modified, the returned parent is rebuilt to record the new
// child and is itself marked modified relative to its own parent.
func (c *Cursor) Parent() *Cursor {
	if c.parent == nil {
		return nil
	}
	if !c.modified {
		return c.parent
	}
	node := &sgf.Node{
		Properties: c.parent.node.Properties,
		Children:   append([]*sgf.Node(nil), c.parent.node.Children...),
	}
	node.Children[c.childIndex] = c.node
	return &Cursor{
		parent:     c.parent.parent,
		childIndex: c.parent.childIndex,
		node:       node,
		modified:   c.parent.parent != nil,
		board:      c.parent.board,
	}
}

// Root ascends to the tree root, reconciling any modifications on the
// way.
func (c *Cursor) Root() *Cursor {
	for c.parent != nil {
		c = c.Parent()
	}
	return c
}

// MovePlayed returns the point the cursor's node played at, or nil when
// the node holds no move or the move is a pass.
func (c *Cursor) MovePlayed() *types.Coord {
	mp := c.node.MoveProperty()
	if mp == nil {
		return nil
	}
	return moveTarget(mp, c.board.Width(), c.board.Height())
}

// ChildPlayingAt finds the first child whose move matches: the current
// player to move playing at the point, or passing when at is nil.
func (c *Cursor) ChildPlayingAt(at *types.Coord) *Cursor {
	color := c.board.PlayerTurn
	for i, child := range c.node.Children {
		mp := child.MoveProperty()
		if mp == nil {
			continue
		}
		mc, _ := mp.MoveColor()
		if mc != color {
			continue
		}
		target := moveTarget(mp, c.board.Width(), c.board.Height())
		if (target == nil) != (at == nil) {
			continue
		}
		if target == nil || *target == *at {
			return c.Child(i)
		}
	}
	return nil
}

// NextVariation moves to the next sibling, or returns nil at the last
// one (or at the root).
func (c *Cursor) NextVariation() *Cursor {
	if c.parent == nil {
		return nil
	}
	return c.Parent().Child(c.childIndex + 1)
}

// PrevVariation moves to the previous sibling, or returns nil at the
// first one (or at the root).
func (c *Cursor) PrevVariation() *Cursor {
	if c.parent == nil {
		return nil
	}
	return c.Parent().Child(c.childIndex - 1)
}

// ModifyNode replaces the cursor's node with f(node) and recomputes the
// board. The change propagates to ancestors only as they are revisited;
// trees held by the caller are unaffected.
func (c *Cursor) ModifyNode(f func(*sgf.Node) *sgf.Node) *Cursor {
	node := f(c.node)
	nc := &Cursor{
		parent:     c.parent,
		childIndex: c.childIndex,
		node:       node,
		modified:   c.parent != nil,
	}
	if c.parent == nil {
		nc.board = NewRootState(node)
	} else {
		nc.board = childState(c.parent.board, node)
	}
	return nc
}
