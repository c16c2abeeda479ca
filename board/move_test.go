package board

import (
	"testing"

	"goatee/types"
)

func emptyState(t *testing.T) *State {
	t.Helper()
	return NewRootState(parseGame(t, "(;SZ[9])"))
}

func TestSingleCapture(t *testing.T) {
	// B[ba], W[aa], B[ab]: the white corner stone loses its last liberty.
	root := parseGame(t, "(;SZ[9];B[ba];W[aa];B[ab])")
	s := walk(t, root, 3).Board()

	if got := s.At(0, 0).Stone; got != types.NoColor {
		t.Errorf("stone at (0,0) = %v, want captured", got)
	}
	if s.BlackCaptures != 1 {
		t.Errorf("BlackCaptures = %d, want 1", s.BlackCaptures)
	}
	if s.WhiteCaptures != 0 {
		t.Errorf("WhiteCaptures = %d, want 0", s.WhiteCaptures)
	}
	if got := s.At(1, 0).Stone; got != types.Black {
		t.Errorf("stone at (1,0) = %v, want Black", got)
	}
	if got := s.At(0, 1).Stone; got != types.Black {
		t.Errorf("stone at (0,1) = %v, want Black", got)
	}
}

func TestGroupCapture(t *testing.T) {
	// White stones at (0,0) and (1,0) fall together when Black fills the
	// last shared liberty.
	root := parseGame(t, "(;SZ[9];B[ca];W[aa];B[ab];W[ba];B[bb])")
	s := walk(t, root, 5).Board()

	if s.At(0, 0).Stone != types.NoColor || s.At(1, 0).Stone != types.NoColor {
		t.Error("white group should be captured")
	}
	if s.BlackCaptures != 2 {
		t.Errorf("BlackCaptures = %d, want 2", s.BlackCaptures)
	}
	for _, c := range []types.Coord{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		if s.At(c.X, c.Y).Stone != types.Black {
			t.Errorf("stone at %v = %v, want Black", c, s.At(c.X, c.Y).Stone)
		}
	}
}

func TestSuicideRejected(t *testing.T) {
	s := emptyState(t)
	for _, c := range []types.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}} {
		if err := s.ApplyMove(types.Black, c, MoveParams{}); err != nil {
			t.Fatalf("setup move %v: %v", c, err)
		}
	}

	at := types.Coord{X: 0, Y: 0}
	if s.IsValidMove(types.White, at) {
		t.Error("IsValidMove should reject suicide")
	}

	err := s.ApplyMove(types.White, at, MoveParams{})
	me, ok := err.(*MoveError)
	if !ok || me.Kind != MoveSuicide {
		t.Fatalf("ApplyMove = %v, want suicide error", err)
	}
	if s.At(0, 0).Stone != types.NoColor {
		t.Error("rejected move must leave the board unchanged")
	}
}

func TestSuicideAllowedRemovesGroup(t *testing.T) {
	s := emptyState(t)
	for _, c := range []types.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}} {
		if err := s.ApplyMove(types.Black, c, MoveParams{}); err != nil {
			t.Fatalf("setup move %v: %v", c, err)
		}
	}

	at := types.Coord{X: 0, Y: 0}
	if err := s.ApplyMove(types.White, at, MoveParams{AllowSuicide: true}); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if s.At(0, 0).Stone != types.NoColor {
		t.Error("suicide stone should be removed")
	}
	if s.BlackCaptures != 1 {
		t.Errorf("BlackCaptures = %d, want 1 (credited to the opponent)", s.BlackCaptures)
	}
}

func TestMultiStoneSuicide(t *testing.T) {
	// A two-stone white group fills its own last liberty.
	root := parseGame(t, "(;SZ[9]AB[ca][ab][bb]AW[aa])")
	s := NewRootState(root)

	if err := s.ApplyMove(types.White, types.Coord{X: 1, Y: 0}, MoveParams{AllowSuicide: true}); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if s.At(0, 0).Stone != types.NoColor || s.At(1, 0).Stone != types.NoColor {
		t.Error("the whole white group should be removed")
	}
	if s.BlackCaptures != 2 {
		t.Errorf("BlackCaptures = %d, want 2", s.BlackCaptures)
	}
}

func TestOverwriteRejected(t *testing.T) {
	s := emptyState(t)
	if err := s.ApplyMove(types.Black, types.Coord{X: 4, Y: 4}, MoveParams{}); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	err := s.ApplyMove(types.White, types.Coord{X: 4, Y: 4}, MoveParams{})
	me, ok := err.(*MoveError)
	if !ok || me.Kind != MoveOverwrite {
		t.Fatalf("ApplyMove = %v, want overwrite error", err)
	}
	if me.Existing != types.Black {
		t.Errorf("Existing = %v, want Black", me.Existing)
	}
	if s.At(4, 4).Stone != types.Black {
		t.Error("rejected move must leave the board unchanged")
	}
}

func TestOutOfBoundsRejected(t *testing.T) {
	s := emptyState(t)
	err := s.ApplyMove(types.Black, types.Coord{X: 9, Y: 0}, MoveParams{})
	me, ok := err.(*MoveError)
	if !ok || me.Kind != MoveOutOfBounds {
		t.Fatalf("ApplyMove = %v, want out-of-bounds error", err)
	}
	if s.IsValidMove(types.Black, types.Coord{X: -1, Y: 0}) {
		t.Error("IsValidMove should reject off-board points")
	}
}

func TestIsValidMoveDoesNotMutate(t *testing.T) {
	s := emptyState(t)
	if !s.IsValidMove(types.Black, types.Coord{X: 4, Y: 4}) {
		t.Fatal("center should be a valid move")
	}
	if s.At(4, 4).Stone != types.NoColor {
		t.Error("IsValidMove must not place a stone")
	}
	if s.MoveNumber != 0 {
		t.Error("IsValidMove must not advance the move number")
	}
}

func TestValidMoveImpliesApplySucceeds(t *testing.T) {
	root := parseGame(t, "(;SZ[9]AB[ba][ab]AW[bb])")
	s := NewRootState(root)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			at := types.Coord{X: x, Y: y}
			for _, c := range []types.Color{types.Black, types.White} {
				if !s.IsValidMove(c, at) {
					continue
				}
				if err := s.Clone().ApplyMove(c, at, MoveParams{}); err != nil {
					t.Errorf("IsValidMove(%v, %v) true but ApplyMove failed: %v", c, at, err)
				}
			}
		}
	}
}

func TestPlayAdvancesTurn(t *testing.T) {
	s := emptyState(t)
	if err := s.Play(types.Black, types.Coord{X: 2, Y: 2}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if s.MoveNumber != 1 || s.PlayerTurn != types.White {
		t.Errorf("after Play: move %d turn %v, want 1 White", s.MoveNumber, s.PlayerTurn)
	}

	s.Pass(types.White)
	if s.MoveNumber != 2 || s.PlayerTurn != types.Black {
		t.Errorf("after Pass: move %d turn %v, want 2 Black", s.MoveNumber, s.PlayerTurn)
	}
}

func TestPlayRejectedLeavesStateAlone(t *testing.T) {
	s := emptyState(t)
	s.Play(types.Black, types.Coord{X: 0, Y: 1})
	s.Play(types.White, types.Coord{X: 5, Y: 5})
	s.Play(types.Black, types.Coord{X: 1, Y: 0})

	before := s.MoveNumber
	if err := s.Play(types.White, types.Coord{X: 0, Y: 0}); err == nil {
		t.Fatal("suicide Play should fail")
	}
	if s.MoveNumber != before {
		t.Error("failed Play must not advance the move number")
	}
}

func TestCaptureConservation(t *testing.T) {
	// Stones played minus stones on the board equals stones captured.
	root := parseGame(t, "(;SZ[9];B[ba];W[aa];B[ab];W[ee];B[ca];W[ed];B[bb])")
	s := walk(t, root, 7).Board()

	placed := 7
	onBoard := 0
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if s.At(x, y).Stone != types.NoColor {
				onBoard++
			}
		}
	}
	captured := s.BlackCaptures + s.WhiteCaptures
	if placed-onBoard != captured {
		t.Errorf("placed %d, on board %d, captured %d: conservation violated", placed, onBoard, captured)
	}
}

func TestCaptureOpensLiberty(t *testing.T) {
	// The corner is surrounded by black stones, but the move captures
	// one of them, so it is not suicide.
	root := parseGame(t, "(;SZ[9]AB[ba][ab]AW[ca][bb])")
	s := NewRootState(root)

	at := types.Coord{X: 0, Y: 0}
	if !s.IsValidMove(types.White, at) {
		t.Fatal("capturing move should be valid even with no prior liberty")
	}
	if err := s.ApplyMove(types.White, at, MoveParams{}); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if s.At(1, 0).Stone != types.NoColor {
		t.Error("black stone at (1,0) should be captured")
	}
	if s.At(0, 1).Stone != types.Black {
		t.Error("black stone at (0,1) keeps its outside liberty and stays")
	}
	if s.WhiteCaptures != 1 {
		t.Errorf("WhiteCaptures = %d, want 1", s.WhiteCaptures)
	}
}
