package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"goatee/board"
	"goatee/sgf"
	"goatee/types"
)

// InfoPanel displays game metadata and the state of the current node
// alongside the board.
type InfoPanel struct {
	box *tview.TextView
}

// NewInfoPanel creates a new info panel.
func NewInfoPanel() *InfoPanel {
	panel := &InfoPanel{
		box: tview.NewTextView(),
	}
	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	return panel
}

// Box returns the underlying tview component.
func (p *InfoPanel) Box() *tview.TextView {
	return p.box
}

// SetPosition updates the panel for the cursor's node and board.
func (p *InfoPanel) SetPosition(c *board.Cursor) {
	if c == nil {
		p.box.SetText("")
		return
	}
	s := c.Board()
	info := s.Info

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	black := info.PlayerBlack
	if black == "" {
		black = "Black"
	}
	if info.BlackRank != "" {
		black += " " + info.BlackRank
	}
	white := info.PlayerWhite
	if white == "" {
		white = "White"
	}
	if info.WhiteRank != "" {
		white += " " + info.WhiteRank
	}
	text += fmt.Sprintf("[white]●[-:-:-] %s\n", tview.Escape(black))
	text += fmt.Sprintf("[dimgray]○[-:-:-] %s\n", tview.Escape(white))

	if info.Komi != nil {
		text += fmt.Sprintf("[white]Komi:[-:-:-] %.1f\n", *info.Komi)
	}
	if info.Handicap != nil {
		text += fmt.Sprintf("[white]Handicap:[-:-:-] %d\n", *info.Handicap)
	}
	if info.Rules != nil {
		text += fmt.Sprintf("[white]Rules:[-:-:-] %s\n", *info.Rules)
	}
	if info.Result != nil {
		text += fmt.Sprintf("[white]Result:[-:-:-] %s\n", info.Result)
	}
	if info.Date != "" {
		text += fmt.Sprintf("[white]Date:[-:-:-] %s\n", tview.Escape(info.Date))
	}

	text += "\n[white::b]Position[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", s.MoveNumber)
	turn := "● Black"
	if s.PlayerTurn == types.White {
		turn = "○ White"
	}
	text += fmt.Sprintf("[white]To play:[-:-:-] %s\n", turn)
	text += fmt.Sprintf("[white]Captures:[-:-:-] ● %d  ○ %d\n", s.BlackCaptures, s.WhiteCaptures)

	if comment := c.Node().Property("C"); comment != nil {
		text += "\n[white::b]Comment[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"
		text += tview.Escape(clipComment(comment.Text, 10)) + "\n"
	}

	if c.NumChildren() > 1 {
		text += "\n[white::b]Variations[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"
		for i, child := range c.Node().Children {
			text += fmt.Sprintf("[dimgray]%d.[-] %s\n", i+1, variationName(child, s.Height()))
		}
	}

	p.box.SetText(text)
}

// clipComment keeps the first maxLines lines of a comment.
func clipComment(text string, maxLines int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	return strings.Join(lines[:maxLines], "\n") + "\n…"
}

// variationName names a child node by the move it plays.
func variationName(n *sgf.Node, boardHeight int) string {
	mp := n.MoveProperty()
	if mp == nil {
		return "(no move)"
	}
	color, _ := mp.MoveColor()
	stone := "●"
	if color == types.White {
		stone = "○"
	}
	if mp.Move == nil {
		return stone + " pass"
	}
	return stone + " " + displayCoord(mp.Move.X, mp.Move.Y, boardHeight)
}

// displayCoord formats a point in board notation: letter column (I is
// skipped) and a row number counted from the bottom edge.
func displayCoord(x, y, height int) string {
	col := x
	if col >= 8 {
		col++ // skip I
	}
	return fmt.Sprintf("%c%d", 'A'+col, height-y)
}

// CreateViewerLayout builds the main layout: board beside the info
// panel, with a status bar underneath.
func CreateViewerLayout(view *BoardView, panel *InfoPanel, hint *tview.TextView) *tview.Flex {
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(view.Box, 0, 1, true)
	boardRow.AddItem(panel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)
	return mainFlex
}
