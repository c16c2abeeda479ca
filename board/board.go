// Package board derives playable Go positions from SGF game trees: it
// interprets node properties into a grid state, enforces move legality,
// and exposes a cursor for walking and editing the tree.
package board

import (
	"goatee/sgf"
	"goatee/types"
)

// CoordState is everything known about one intersection.
type CoordState struct {
	Star    bool
	Stone   types.Color
	Mark    types.Mark
	Visible bool
	Dimmed  bool
}

// RootInfo carries the root properties a board depends on.
type RootInfo struct {
	Width, Height int
	Variations    types.VariationMode
}

// GameInfo collects the game-info properties seen on the path to a node.
// String fields are empty when absent; pointer fields are nil.
type GameInfo struct {
	RootInfo

	Annotator   string
	BlackRank   string
	BlackTeam   string
	Copyright   string
	Date        string
	Event       string
	GameComment string
	GameName    string
	Opening     string
	Overtime    string
	PlayerBlack string
	Place       string
	PlayerWhite string
	Round       string
	Source      string
	User        string
	WhiteRank   string

	Result    *types.GameResult
	Rules     *types.Ruleset
	TimeLimit *float64
	Handicap  *int
	Komi      *float64
}

// State is the derived board position at one node.
type State struct {
	grid [][]CoordState // indexed [y][x]

	Arrows []types.Arrow
	Lines  []types.Line
	Labels []types.Label

	MoveNumber    int
	PlayerTurn    types.Color
	BlackCaptures int // stones captured by Black
	WhiteCaptures int // stones captured by White

	Info GameInfo

	hasInvisible bool
	hasDimmed    bool
	hasMarks     bool
}

// Width returns the board width.
func (s *State) Width() int { return s.Info.Width }

// Height returns the board height.
func (s *State) Height() int { return s.Info.Height }

// At returns the state of the intersection at (x, y).
func (s *State) At(x, y int) CoordState {
	return s.grid[y][x]
}

// InBounds reports whether the coordinate is on the board.
func (s *State) InBounds(c types.Coord) bool {
	return c.X >= 0 && c.X < s.Width() && c.Y >= 0 && c.Y < s.Height()
}

// HasInvisible reports whether any intersection is hidden, letting
// renderers skip the visibility pass when none is.
func (s *State) HasInvisible() bool { return s.hasInvisible }

// HasDimmed reports whether any intersection is dimmed.
func (s *State) HasDimmed() bool { return s.hasDimmed }

// HasMarks reports whether any intersection carries a mark.
func (s *State) HasMarks() bool { return s.hasMarks }

// Clone returns an independent deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.grid = make([][]CoordState, len(s.grid))
	for y := range s.grid {
		c.grid[y] = append([]CoordState(nil), s.grid[y]...)
	}
	c.Arrows = append([]types.Arrow(nil), s.Arrows...)
	c.Lines = append([]types.Line(nil), s.Lines...)
	c.Labels = append([]types.Label(nil), s.Labels...)
	return &c
}

// NewRootState builds the position described by a game tree's root node:
// an empty board of the SZ size (19x19 when absent) with star points set,
// then the root properties applied in order.
func NewRootState(root *sgf.Node) *State {
	width, height := 19, 19
	if sz := root.Property("SZ"); sz != nil {
		width, height = sz.Width, sz.Height
	}
	s := &State{
		PlayerTurn: types.Black,
		Info: GameInfo{RootInfo: RootInfo{
			Width:      width,
			Height:     height,
			Variations: types.DefaultVariationMode(),
		}},
	}
	s.grid = make([][]CoordState, height)
	for y := range s.grid {
		s.grid[y] = make([]CoordState, width)
		for x := range s.grid[y] {
			s.grid[y][x].Visible = true
		}
	}
	for _, c := range starPoints(width, height) {
		s.grid[c.Y][c.X].Star = true
	}
	for _, p := range root.Properties {
		s.applyProperty(p)
	}
	return s
}

// childState derives the position of a child node from its parent's
// position: node-local markup is cleared, then the child's properties
// are applied.
func childState(parent *State, child *sgf.Node) *State {
	s := parent.Clone()
	s.resetForNode()
	for _, p := range child.Properties {
		s.applyProperty(p)
	}
	return s
}

// resetForNode drops state that does not carry across nodes. Dimming and
// visibility are inherited and stay until a later DD or VW replaces them.
func (s *State) resetForNode() {
	s.Arrows = nil
	s.Lines = nil
	s.Labels = nil
	if s.hasMarks {
		for y := range s.grid {
			for x := range s.grid[y] {
				s.grid[y][x].Mark = types.MarkNone
			}
		}
		s.hasMarks = false
	}
}

// moveTarget resolves a move property to its target point; nil is a
// pass. The FF[3] form [tt] counts as a pass on boards up to 19x19.
func moveTarget(p *sgf.Property, width, height int) *types.Coord {
	if p.Move == nil {
		return nil
	}
	if p.Move.X == 19 && p.Move.Y == 19 && width <= 19 && height <= 19 {
		return nil
	}
	return p.Move
}

// applyProperty folds one property into the state.
func (s *State) applyProperty(p *sgf.Property) {
	if s.applyGameInfo(p) {
		return
	}
	switch p.Tag {
	case "B", "W":
		c, _ := p.MoveColor()
		at := moveTarget(p, s.Width(), s.Height())
		if at != nil && s.InBounds(*at) {
			// Play the move as recorded; historical records contain
			// illegal positions, so overwrite and suicide pass through.
			s.ApplyMove(c, *at, MoveParams{AllowSuicide: true, AllowOverwrite: true})
		}
		s.MoveNumber++
		s.PlayerTurn = c.Other()
	case "AB", "AW":
		stone := types.Black
		if p.Tag == "AW" {
			stone = types.White
		}
		for _, c := range p.Coords.Expand() {
			if s.InBounds(c) {
				s.grid[c.Y][c.X].Stone = stone
			}
		}
	case "AE":
		if len(p.Coords) == 0 {
			for y := range s.grid {
				for x := range s.grid[y] {
					s.grid[y][x].Stone = types.NoColor
				}
			}
			return
		}
		for _, c := range p.Coords.Expand() {
			if s.InBounds(c) {
				s.grid[c.Y][c.X].Stone = types.NoColor
			}
		}
	case "PL":
		s.PlayerTurn = p.Color
	case "MN":
		s.MoveNumber = p.Int
	case "CR", "MA", "SL", "SQ", "TR":
		mark, _ := sgf.TagMark(p.Tag)
		for _, c := range p.Coords.Expand() {
			if s.InBounds(c) {
				s.grid[c.Y][c.X].Mark = mark
				s.hasMarks = true
			}
		}
	case "AR":
		s.Arrows = append(s.Arrows, p.Arrows...)
	case "LN":
		s.Lines = append(s.Lines, p.Lines...)
	case "LB":
		s.Labels = append(s.Labels, p.Labels...)
	case "DD":
		// Most recent DD wins: clear, then dim the listed points.
		for y := range s.grid {
			for x := range s.grid[y] {
				s.grid[y][x].Dimmed = false
			}
		}
		s.hasDimmed = false
		for _, c := range p.Coords.Expand() {
			if s.InBounds(c) {
				s.grid[c.Y][c.X].Dimmed = true
				s.hasDimmed = true
			}
		}
	case "VW":
		if len(p.Coords) == 0 {
			for y := range s.grid {
				for x := range s.grid[y] {
					s.grid[y][x].Visible = true
				}
			}
			s.hasInvisible = false
			return
		}
		for y := range s.grid {
			for x := range s.grid[y] {
				s.grid[y][x].Visible = false
			}
		}
		s.hasInvisible = true
		for _, c := range p.Coords.Expand() {
			if s.InBounds(c) {
				s.grid[c.Y][c.X].Visible = true
			}
		}
	case "ST":
		s.Info.Variations = p.Variations
	}
	// Annotation, timing and KO properties have no board effect.
}

// applyGameInfo stores game-info property values on the Info struct and
// reports whether the property was one.
func (s *State) applyGameInfo(p *sgf.Property) bool {
	switch p.Tag {
	case "AN":
		s.Info.Annotator = p.Text
	case "BR":
		s.Info.BlackRank = p.Text
	case "BT":
		s.Info.BlackTeam = p.Text
	case "CP":
		s.Info.Copyright = p.Text
	case "DT":
		s.Info.Date = p.Text
	case "EV":
		s.Info.Event = p.Text
	case "GC":
		s.Info.GameComment = p.Text
	case "GN":
		s.Info.GameName = p.Text
	case "ON":
		s.Info.Opening = p.Text
	case "OT":
		s.Info.Overtime = p.Text
	case "PB":
		s.Info.PlayerBlack = p.Text
	case "PC":
		s.Info.Place = p.Text
	case "PW":
		s.Info.PlayerWhite = p.Text
	case "RO":
		s.Info.Round = p.Text
	case "SO":
		s.Info.Source = p.Text
	case "US":
		s.Info.User = p.Text
	case "WR":
		s.Info.WhiteRank = p.Text
	case "RE":
		r := p.Result
		s.Info.Result = &r
	case "RU":
		ru := p.Rules
		s.Info.Rules = &ru
	case "TM":
		tm := p.Real
		s.Info.TimeLimit = &tm
	case "HA":
		ha := p.Int
		s.Info.Handicap = &ha
	case "KM":
		km := p.Real
		s.Info.Komi = &km
	default:
		return false
	}
	return true
}

// starPoints returns the hoshi pattern for the board size. The three
// traditional square sizes use their fixed patterns; other sizes place
// corner stars at an edge offset of 3 (2 below size 13) per axis, a
// center star when both dimensions are odd and at least 9, and edge
// midpoint stars when both are at least 13.
func starPoints(width, height int) []types.Coord {
	if width == height {
		switch width {
		case 9:
			return []types.Coord{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 6}, {X: 6, Y: 6}}
		case 13:
			return []types.Coord{{X: 3, Y: 3}, {X: 9, Y: 3}, {X: 6, Y: 6}, {X: 3, Y: 9}, {X: 9, Y: 9}}
		case 19:
			return []types.Coord{
				{X: 3, Y: 3}, {X: 9, Y: 3}, {X: 15, Y: 3},
				{X: 3, Y: 9}, {X: 9, Y: 9}, {X: 15, Y: 9},
				{X: 3, Y: 15}, {X: 9, Y: 15}, {X: 15, Y: 15},
			}
		}
	}

	offX, offY := 2, 2
	if width >= 13 {
		offX = 3
	}
	if height >= 13 {
		offY = 3
	}

	var out []types.Coord
	seen := make(map[types.Coord]bool)
	add := func(x, y int) {
		c := types.Coord{X: x, Y: y}
		if x < 0 || x >= width || y < 0 || y >= height || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}

	if width > 2*offX && height > 2*offY {
		add(offX, offY)
		add(width-1-offX, offY)
		add(offX, height-1-offY)
		add(width-1-offX, height-1-offY)
	}
	if width%2 == 1 && height%2 == 1 && width >= 9 && height >= 9 {
		add(width/2, height/2)
	}
	if width >= 13 && height >= 13 {
		if width%2 == 1 {
			add(width/2, offY)
			add(width/2, height-1-offY)
		}
		if height%2 == 1 {
			add(offX, height/2)
			add(width-1-offX, height/2)
		}
	}
	return out
}
