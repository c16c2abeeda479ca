// goatee is a terminal viewer for SGF Go game records.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"goatee/board"
	"goatee/config"
	"goatee/sgf"
	"goatee/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagGame    = flag.Int("game", 1, "Game to open when the file holds several")
	flagEnd     = flag.Bool("end", false, "Open at the end of the main line")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var boardView *ui.BoardView
var infoPanel *ui.InfoPanel
var hint *tview.TextView
var cfg *config.Config

var (
	collection *sgf.Collection
	fileName   string
	gameIndex  int
	cursor     *board.Cursor
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("goatee %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: goatee [flags] file.sgf")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)
	fileName = filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goatee: %s\n", err)
		os.Exit(1)
	}
	collection, err = sgf.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goatee: %s: %s\n", fileName, err)
		os.Exit(1)
	}

	app = tview.NewApplication()

	hint = tview.NewTextView()
	hint.SetBorder(false)
	hint.SetDynamicColors(true)

	boardView = ui.NewBoardView(cfg)
	infoPanel = ui.NewInfoPanel()
	frame := ui.CreateViewerLayout(boardView, infoPanel, hint)
	frame.SetBorder(true).SetTitle(" ⬡ goatee ")

	openGame(*flagGame - 1)

	boardView.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyRight, tcell.KeyDown:
			descend()
		case tcell.KeyLeft, tcell.KeyUp:
			ascend()
		case tcell.KeyRune:
			switch r := event.Rune(); r {
			case 'j', 'l':
				descend()
			case 'k', 'h':
				ascend()
			case ']':
				if next := cursor.NextVariation(); next != nil {
					cursor = next
				}
			case '[':
				if prev := cursor.PrevVariation(); prev != nil {
					cursor = prev
				}
			case 'g':
				cursor = cursor.Root()
			case 'G':
				toEnd()
			case '>':
				openGame(gameIndex + 1)
			case '<':
				openGame(gameIndex - 1)
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				if child := cursor.Child(int(r - '1')); child != nil {
					cursor = child
				}
			case 'q':
				app.Stop()
				return nil
			}
		}
		refresh()
		return event
	})

	if err := app.SetRoot(frame, true).Run(); err != nil {
		panic(err)
	}
}

func descend() {
	if child := cursor.Child(0); child != nil {
		cursor = child
	}
}

func ascend() {
	if parent := cursor.Parent(); parent != nil {
		cursor = parent
	}
}

func toEnd() {
	for {
		child := cursor.Child(0)
		if child == nil {
			return
		}
		cursor = child
	}
}

// openGame switches to another game tree in the collection.
func openGame(i int) {
	if i < 0 || i >= len(collection.Games) {
		return
	}
	gameIndex = i
	cursor = board.RootCursor(collection.Games[i])
	if *flagEnd || cfg.Viewer.StartAtEnd {
		toEnd()
	}
	refresh()
}

func refresh() {
	boardView.SetState(cursor.Board(), cursor.MovePlayed())
	infoPanel.SetPosition(cursor)
	refreshHint()
}

func refreshHint() {
	status := fmt.Sprintf("[::b]%s[::-]", tview.Escape(fileName))
	if len(collection.Games) > 1 {
		status += fmt.Sprintf("  [dimgray]game %d/%d[-]", gameIndex+1, len(collection.Games))
	}
	status += fmt.Sprintf("  [dimgray]move %d[-]", cursor.Board().MoveNumber)
	if !cursor.IsRoot() {
		if parent := cursor.Parent(); parent.NumChildren() > 1 {
			status += fmt.Sprintf("  [dimgray]var %d/%d[-]", cursor.ChildIndex()+1, parent.NumChildren())
		}
	}

	controls := "[dimgray]hjkl[-] navigate  [dimgray][ ][-] variation  [dimgray]g G[-] ends  [dimgray]< >[-] game  [dimgray]q[-] quit"

	_, _, width, _ := hint.GetInnerRect()
	if width < 40 {
		width = 80
	}
	statusLen := len(tview.TranslateANSI(status))
	controlsLen := len(tview.TranslateANSI(controls))
	padding := width - statusLen - controlsLen - 4
	if padding < 2 {
		padding = 2
	}
	spacer := ""
	for i := 0; i < padding; i++ {
		spacer += " "
	}
	hint.SetText(fmt.Sprintf("  %s%s%s", status, spacer, controls))
}
