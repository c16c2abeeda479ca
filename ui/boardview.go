// Package ui specifies custom controls for tview to browse Go game
// records in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"goatee/board"
	"goatee/config"
	"goatee/types"
)

// style indices into BoardView.styles.
const (
	styleBoard = iota
	styleBlack
	styleWhite
	styleLine
	styleMark
	styleLabel
	styleDim
	styleLastPlayed
)

// BoardView draws a board.State inside a tview Box: stones, star points,
// marks, labels, dimming and visibility windows.
type BoardView struct {
	Box      *tview.Box
	cfg      *config.Config
	styles   []tcell.Color
	state    *board.State
	lastMove *types.Coord
}

func NewBoardView(cfg *config.Config) *BoardView {
	v := &BoardView{Box: tview.NewBox()}
	v.SetConfig(cfg)
	v.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		if v.state == nil || v.state.Width() == 0 {
			return x, y, 1, 1
		}
		s := v.state
		boardW, boardH := s.Width()*2, s.Height()

		for boardY := 0; boardY < s.Height(); boardY++ {
			for boardX := 0; boardX < s.Width(); boardX++ {
				cs := s.At(boardX, boardY)
				style := tcell.StyleDefault.Background(v.styles[styleBoard])

				if s.HasInvisible() && !cs.Visible {
					drawCell(screen, tcell.StyleDefault, ' ', ' ', boardX, boardY, x+4, y)
					continue
				}

				drawRune, conn := v.cellRune(s, cs, boardX, boardY)
				fg := v.cellColor(s, cs, boardX, boardY)
				if s.HasDimmed() && cs.Dimmed {
					fg = v.styles[styleDim]
				}
				if v.lastMove != nil && v.lastMove.X == boardX && v.lastMove.Y == boardY {
					style = style.Background(v.styles[styleLastPlayed])
				}
				drawCell(screen, style.Foreground(fg), drawRune, conn, boardX, boardY, x+4, y)
			}
		}
		if v.cfg.Viewer.ShowCoordinates {
			drawCoordinates(screen, x, y, v)
		}
		return x, y, boardW + 4, boardH + 2
	})
	return v
}

// SetState updates the position the view draws. lastMove highlights the
// point the current node played at, nil for none.
func (v *BoardView) SetState(s *board.State, lastMove *types.Coord) {
	v.state = s
	v.lastMove = lastMove
}

func (v *BoardView) SetConfig(c *config.Config) {
	v.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),
		tcell.PaletteColor(c.Theme.Colors.BlackColor),
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),
		tcell.PaletteColor(c.Theme.Colors.LineColor),
		tcell.PaletteColor(c.Theme.Colors.MarkColor),
		tcell.PaletteColor(c.Theme.Colors.LabelColor),
		tcell.PaletteColor(c.Theme.Colors.DimColor),
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG),
	}
	v.cfg = c
}

// cellRune picks the rune for an intersection and the connector drawn in
// the second half of the cell.
func (v *BoardView) cellRune(s *board.State, cs board.CoordState, x, y int) (rune, rune) {
	conn := ' '
	if v.cfg.Theme.UseGridLines && x < s.Width()-1 && s.At(x+1, y).Stone == types.NoColor {
		conn = '─'
	}

	if cs.Stone != types.NoColor {
		if cs.Mark != types.MarkNone {
			return markRune(cs.Mark), ' '
		}
		if cs.Stone == types.Black {
			return v.cfg.Theme.Symbols.BlackStone, ' '
		}
		return v.cfg.Theme.Symbols.WhiteStone, ' '
	}
	if label := v.labelAt(s, x, y); label != 0 {
		return label, conn
	}
	if cs.Mark != types.MarkNone {
		return markRune(cs.Mark), conn
	}
	if v.cfg.Theme.UseGridLines {
		if cs.Star {
			return v.cfg.Theme.Symbols.StarPoint, conn
		}
		return gridRune(x, y, s.Width(), s.Height()), conn
	}
	return v.cfg.Theme.Symbols.BoardSquare, conn
}

func (v *BoardView) cellColor(s *board.State, cs board.CoordState, x, y int) tcell.Color {
	switch {
	case cs.Mark != types.MarkNone:
		return v.styles[styleMark]
	case cs.Stone == types.Black:
		return v.styles[styleBlack]
	case cs.Stone == types.White:
		return v.styles[styleWhite]
	case v.labelAt(s, x, y) != 0:
		return v.styles[styleLabel]
	}
	return v.styles[styleLine]
}

// labelAt returns the display rune of a label on the point, 0 when none.
func (v *BoardView) labelAt(s *board.State, x, y int) rune {
	for _, l := range s.Labels {
		if l.At.X == x && l.At.Y == y && len(l.Text) > 0 {
			return []rune(l.Text)[0]
		}
	}
	return 0
}

func markRune(m types.Mark) rune {
	switch m {
	case types.MarkCircle:
		return '◯'
	case types.MarkSquare:
		return '□'
	case types.MarkTriangle:
		return '△'
	case types.MarkX:
		return '✕'
	case types.MarkSelected:
		return '▣'
	}
	return ' '
}

// drawCell draws a 2-character cell: the intersection and its connector.
func drawCell(s tcell.Screen, c tcell.Style, r, conn rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, conn, nil, c)
}

// gridRune returns the box-drawing character for an empty grid position.
func gridRune(x, y, width, height int) rune {
	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

func drawCoordinates(s tcell.Screen, x, y int, v *BoardView) {
	hCoord := int('A')
	w, h := v.state.Width(), v.state.Height()
	if v.cfg.Theme.FullWidthLetters {
		hCoord = int('Ａ')
	}

	style := tcell.StyleDefault
	lpHighlight := tcell.StyleDefault.Background(v.styles[styleLastPlayed])

	for ix := 0; ix < w; ix++ {
		_style := style
		if v.lastMove != nil && ix == v.lastMove.X {
			_style = lpHighlight
		}
		s.SetContent(x+4+(ix*2), y+h+1, rune(hCoord+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	for iy := 0; iy < h; iy++ {
		iyInv := h - iy - 1 // display numbers count from the bottom edge
		_style := style
		if v.lastMove != nil && iyInv == v.lastMove.Y {
			_style = lpHighlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + int((displayNum-(displayNum%10))/10))
		}
		s.SetContent(1, y+h-iy-1, tensRune, nil, _style)
		s.SetContent(2, y+h-iy-1, rune('0'+(displayNum%10)), nil, _style)
	}
	s.Show()
}
