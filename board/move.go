package board

import (
	"errors"
	"fmt"

	"goatee/types"
)

// MoveParams relaxes move legality checks. The zero value is standard
// play: no suicide, no overwriting an occupied point.
type MoveParams struct {
	AllowSuicide   bool
	AllowOverwrite bool
}

// MoveErrorKind classifies why a move was rejected.
type MoveErrorKind int

const (
	MoveOutOfBounds MoveErrorKind = iota + 1
	MoveOverwrite
	MoveSuicide
)

// MoveError reports an illegal move. The board is left unchanged.
type MoveError struct {
	Kind     MoveErrorKind
	Existing types.Color // occupying stone, for MoveOverwrite
}

func (e *MoveError) Error() string {
	switch e.Kind {
	case MoveOutOfBounds:
		return "board: move off the board"
	case MoveOverwrite:
		return fmt.Sprintf("board: point occupied by %v", e.Existing)
	case MoveSuicide:
		return "board: move is suicide"
	}
	return "board: illegal move"
}

// errCaptureSuicide flags a position that captured opponent stones yet
// left the played group without liberties. The rules make this
// unreachable; it guards against engine inconsistency.
var errCaptureSuicide = errors.New("board: capture and suicide in one move")

// ApplyMove places a stone for the color, removing captured opponent
// groups and crediting their stones. Move number and turn are not
// touched; Play and applyProperty layer those on.
func (s *State) ApplyMove(c types.Color, at types.Coord, params MoveParams) error {
	if !s.InBounds(at) {
		return &MoveError{Kind: MoveOutOfBounds}
	}
	existing := s.grid[at.Y][at.X].Stone
	if existing != types.NoColor && !params.AllowOverwrite {
		return &MoveError{Kind: MoveOverwrite, Existing: existing}
	}
	s.grid[at.Y][at.X].Stone = c

	captured := 0
	for _, n := range s.neighbors(at) {
		if s.grid[n.Y][n.X].Stone != c.Other() {
			continue
		}
		group := s.group(n)
		if s.liberties(group) == 0 {
			for _, g := range group {
				s.grid[g.Y][g.X].Stone = types.NoColor
			}
			captured += len(group)
		}
	}

	own := s.group(at)
	if s.liberties(own) == 0 {
		if captured > 0 {
			return errCaptureSuicide
		}
		if !params.AllowSuicide {
			s.grid[at.Y][at.X].Stone = existing
			return &MoveError{Kind: MoveSuicide}
		}
		for _, g := range own {
			s.grid[g.Y][g.X].Stone = types.NoColor
		}
		s.credit(c.Other(), len(own))
		return nil
	}

	s.credit(c, captured)
	return nil
}

// IsValidMove reports whether the color may play at the point under
// standard rules.
func (s *State) IsValidMove(c types.Color, at types.Coord) bool {
	if !s.InBounds(at) {
		return false
	}
	return s.Clone().ApplyMove(c, at, MoveParams{}) == nil
}

// Play makes a standard move, advancing the move number and turn. On an
// illegal move the board is unchanged and the error says why.
func (s *State) Play(c types.Color, at types.Coord) error {
	if err := s.ApplyMove(c, at, MoveParams{}); err != nil {
		return err
	}
	s.MoveNumber++
	s.PlayerTurn = c.Other()
	return nil
}

// Pass records a pass for the color.
func (s *State) Pass(c types.Color) {
	s.MoveNumber++
	s.PlayerTurn = c.Other()
}

func (s *State) credit(c types.Color, n int) {
	if n == 0 {
		return
	}
	if c == types.Black {
		s.BlackCaptures += n
	} else {
		s.WhiteCaptures += n
	}
}

// neighbors returns the up-to-four orthogonal neighbors on the board.
func (s *State) neighbors(at types.Coord) []types.Coord {
	out := make([]types.Coord, 0, 4)
	for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		n := types.Coord{X: at.X + d[0], Y: at.Y + d[1]}
		if s.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// group flood-fills the connected group of same-valued points seeded at
// the coordinate.
func (s *State) group(seed types.Coord) []types.Coord {
	value := s.grid[seed.Y][seed.X].Stone
	visited := map[types.Coord]bool{seed: true}
	stack := []types.Coord{seed}
	group := []types.Coord{seed}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range s.neighbors(at) {
			if visited[n] || s.grid[n.Y][n.X].Stone != value {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
			group = append(group, n)
		}
	}
	return group
}

// liberties counts the distinct empty points adjacent to the group.
func (s *State) liberties(group []types.Coord) int {
	seen := make(map[types.Coord]bool)
	for _, g := range group {
		for _, n := range s.neighbors(g) {
			if s.grid[n.Y][n.X].Stone == types.NoColor && !seen[n] {
				seen[n] = true
			}
		}
	}
	return len(seen)
}
