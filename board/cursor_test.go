package board

import (
	"reflect"
	"testing"

	"goatee/sgf"
	"goatee/types"
)

func TestRootCursorBoard(t *testing.T) {
	root := parseGame(t, "(;SZ[9]AB[cc];B[ee])")
	c := RootCursor(root)

	if c.Node() != root {
		t.Error("root cursor should sit on the root node")
	}
	if !c.IsRoot() || c.Parent() != nil || c.ChildIndex() != -1 {
		t.Error("root cursor parent state wrong")
	}
	if !reflect.DeepEqual(c.Board(), NewRootState(root)) {
		t.Error("root cursor board should equal the root board state")
	}
}

func TestDownThenUpReturnsSameCursor(t *testing.T) {
	root := parseGame(t, "(;SZ[9];B[aa];W[bb])")
	c := RootCursor(root)

	down := c.Child(0)
	if down == nil {
		t.Fatal("Child(0) should exist")
	}
	if up := down.Parent(); up != c {
		t.Error("Parent of an unmodified child should be the original cursor")
	}
	if down.Node() != root.Children[0] {
		t.Error("child cursor should sit on the child node")
	}
}

func TestChildOutOfRange(t *testing.T) {
	c := RootCursor(parseGame(t, "(;SZ[9];B[aa])"))
	if c.Child(1) != nil {
		t.Error("Child(1) should be nil")
	}
	if c.Child(-1) != nil {
		t.Error("Child(-1) should be nil")
	}
}

func TestChildrenMatchChild(t *testing.T) {
	root := parseGame(t, "(;SZ[9];B[aa](;W[bb])(;W[cc]))")
	move := RootCursor(root).Child(0)

	children := move.Children()
	if len(children) != 2 {
		t.Fatalf("Children() = %d cursors, want 2", len(children))
	}
	for i, child := range children {
		direct := move.Child(i)
		if child.Node() != direct.Node() {
			t.Errorf("child %d node mismatch", i)
		}
		if !reflect.DeepEqual(child.Board(), direct.Board()) {
			t.Errorf("child %d board mismatch", i)
		}
	}
}

func TestBoardFollowsPath(t *testing.T) {
	root := parseGame(t, "(;SZ[9];B[ba];W[aa];B[ab])")
	c := RootCursor(root)

	c = c.Child(0)
	if c.Board().MoveNumber != 1 {
		t.Errorf("depth 1 move number = %d, want 1", c.Board().MoveNumber)
	}
	c = c.Child(0).Child(0)
	if c.Board().BlackCaptures != 1 {
		t.Errorf("depth 3 captures = %d, want 1", c.Board().BlackCaptures)
	}
	if got := c.Board().At(0, 0).Stone; got != types.NoColor {
		t.Errorf("stone at (0,0) = %v, want captured", got)
	}
}

func TestChildPlayingAt(t *testing.T) {
	root := parseGame(t, "(;SZ[9];B[aa](;W[bb])(;W[cc])(;W[]))")
	move := RootCursor(root).Child(0)

	at := types.Coord{X: 2, Y: 2}
	found := move.ChildPlayingAt(&at)
	if found == nil {
		t.Fatal("should find the W[cc] child")
	}
	if found.ChildIndex() != 1 {
		t.Errorf("ChildIndex = %d, want 1", found.ChildIndex())
	}

	pass := move.ChildPlayingAt(nil)
	if pass == nil || pass.ChildIndex() != 2 {
		t.Error("should find the W[] pass child")
	}

	missing := types.Coord{X: 8, Y: 8}
	if move.ChildPlayingAt(&missing) != nil {
		t.Error("no child plays at (8,8)")
	}
}

func TestChildPlayingAtRespectsTurn(t *testing.T) {
	// The child must be played by the current player to move.
	root := parseGame(t, "(;SZ[9];B[aa](;B[cc])(;W[cc]))")
	move := RootCursor(root).Child(0)

	at := types.Coord{X: 2, Y: 2}
	found := move.ChildPlayingAt(&at)
	if found == nil {
		t.Fatal("should find a child")
	}
	if found.ChildIndex() != 1 {
		t.Errorf("ChildIndex = %d, want 1 (White to move)", found.ChildIndex())
	}
}

func TestNextPrevVariation(t *testing.T) {
	root := parseGame(t, "(;SZ[9];B[aa](;W[bb])(;W[cc]))")
	first := RootCursor(root).Child(0).Child(0)

	second := first.NextVariation()
	if second == nil || second.ChildIndex() != 1 {
		t.Fatal("NextVariation should reach the sibling")
	}
	if second.NextVariation() != nil {
		t.Error("NextVariation past the last sibling should be nil")
	}
	back := second.PrevVariation()
	if back == nil || back.ChildIndex() != 0 {
		t.Error("PrevVariation should return to the first sibling")
	}
	if back.PrevVariation() != nil {
		t.Error("PrevVariation before the first sibling should be nil")
	}
	if RootCursor(root).NextVariation() != nil {
		t.Error("the root has no siblings")
	}
}

// addComment returns a copy of the node with a comment property added,
// leaving the original untouched.
func addComment(text string) func(*sgf.Node) *sgf.Node {
	return func(n *sgf.Node) *sgf.Node {
		copied := &sgf.Node{
			Properties: append([]*sgf.Property(nil), n.Properties...),
			Children:   n.Children,
		}
		copied.SetProperty(sgf.CommentProp(text))
		return copied
	}
}

func TestModifyThenRoot(t *testing.T) {
	root := parseGame(t, "(;SZ[9];B[aa];W[bb](;B[cc])(;B[dd]))")
	c := RootCursor(root).Child(0).Child(0).Child(0) // depth 3: B[cc]

	modified := c.ModifyNode(addComment("here"))
	if modified.Node().Property("C") == nil {
		t.Fatal("modified node should carry the comment")
	}

	newRoot := modified.Root()
	if newRoot.Node() == root {
		t.Error("reconciled root should be a new node")
	}

	// The comment is present at the original path of the new tree.
	got := newRoot.Node().Children[0].Children[0].Children[0]
	if got.Property("C") == nil || got.Property("C").Text != "here" {
		t.Error("new root should contain the modified node at the original path")
	}

	// Untouched siblings and the original tree are unchanged.
	if newRoot.Node().Children[0].Children[0].Children[1] != root.Children[0].Children[0].Children[1] {
		t.Error("untouched sibling should be shared with the original tree")
	}
	if root.Children[0].Children[0].Children[0].Property("C") != nil {
		t.Error("original tree must not change")
	}
}

func TestModifyNodeRecomputesBoard(t *testing.T) {
	root := parseGame(t, "(;SZ[9];B[aa])")
	c := RootCursor(root).Child(0)

	modified := c.ModifyNode(func(n *sgf.Node) *sgf.Node {
		copied := &sgf.Node{Properties: append([]*sgf.Property(nil), n.Properties...), Children: n.Children}
		copied.SetProperty(sgf.SetupProp("AW", types.Points(types.Coord{X: 5, Y: 5})))
		return copied
	})

	if got := modified.Board().At(5, 5).Stone; got != types.White {
		t.Errorf("stone at (5,5) = %v, want White after modify", got)
	}
	if got := modified.Board().At(0, 0).Stone; got != types.Black {
		t.Errorf("stone at (0,0) = %v, want Black still", got)
	}
}

func TestModifyRoot(t *testing.T) {
	root := parseGame(t, "(;SZ[9])")
	c := RootCursor(root).ModifyNode(addComment("root note"))

	if !c.IsRoot() {
		t.Error("modifying the root keeps the cursor at the root")
	}
	if c.Root() != c {
		t.Error("Root() of a modified root is itself")
	}
	if c.Node().Property("C") == nil {
		t.Error("root node should carry the comment")
	}
}

func TestModifiedBoardMatchesRecomputedPath(t *testing.T) {
	// The cursor board invariant: the cached board equals the board
	// derived by replaying the path from the reconciled root.
	root := parseGame(t, "(;SZ[9];B[aa];W[bb])")
	c := RootCursor(root).Child(0).Child(0)

	modified := c.ModifyNode(func(n *sgf.Node) *sgf.Node {
		copied := &sgf.Node{Properties: append([]*sgf.Property(nil), n.Properties...), Children: n.Children}
		copied.SetProperty(sgf.MarkProp(types.MarkTriangle, types.Points(types.Coord{X: 1, Y: 1})))
		return copied
	})

	replayed := RootCursor(modified.Root().Node()).Child(0).Child(0)
	if !reflect.DeepEqual(modified.Board(), replayed.Board()) {
		t.Error("cached board should match the board replayed from the new root")
	}
}

func TestParentAfterModifyReconciles(t *testing.T) {
	root := parseGame(t, "(;SZ[9];B[aa];W[bb])")
	c := RootCursor(root).Child(0).Child(0)

	modified := c.ModifyNode(addComment("deep"))
	parent := modified.Parent()

	if parent.Node() == root.Children[0] {
		t.Error("reconciled parent should be a fresh node")
	}
	if parent.Node().Children[0] != modified.Node() {
		t.Error("reconciled parent should record the modified child")
	}
	if parent.Node().MoveProperty() == nil {
		t.Error("reconciled parent keeps its own properties")
	}
	if root.Children[0].Children[0].Property("C") != nil {
		t.Error("original tree must not change")
	}
}
