package sgf

import "goatee/types"

// GameSummary holds the header metadata of one game tree, the fields a
// file listing shows without replaying the game.
type GameSummary struct {
	Width, Height int
	Komi          float64
	Handicap      int
	PlayerBlack   string
	PlayerWhite   string
	Date          string
	Result        types.GameResult
	Moves         int
}

// Summarize reads the root and game-info properties of a game tree and
// counts the moves on its main line.
func Summarize(root *Node) GameSummary {
	s := GameSummary{Width: 19, Height: 19}
	if sz := root.Property("SZ"); sz != nil {
		s.Width, s.Height = sz.Width, sz.Height
	}
	for n := root; n != nil; {
		for _, p := range n.Properties {
			switch p.Tag {
			case "KM":
				s.Komi = p.Real
			case "HA":
				s.Handicap = p.Int
			case "PB":
				s.PlayerBlack = p.Text
			case "PW":
				s.PlayerWhite = p.Text
			case "DT":
				s.Date = p.Text
			case "RE":
				s.Result = p.Result
			}
		}
		if n.MoveProperty() != nil {
			s.Moves++
		}
		if len(n.Children) == 0 {
			break
		}
		n = n.Children[0]
	}
	return s
}
