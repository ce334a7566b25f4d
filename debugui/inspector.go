package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/arcade/tetris"
)

// TetrisInspector shows the live state of a Tetris scene's session.
type TetrisInspector struct {
	scene *tetris.Scene
}

func NewTetrisInspector(s *tetris.Scene) *TetrisInspector {
	return &TetrisInspector{scene: s}
}

func (i *TetrisInspector) Item() Item {
	return Item{Render: i.Render}
}

func (i *TetrisInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 480), imgui.CondOnce)
	if !imgui.BeginV("Tetris", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := i.scene.Game()
	if g == nil {
		imgui.Text("no session")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Session: %s", g.ID()))
	imgui.Text(fmt.Sprintf("State: %s", g.State()))
	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Text(fmt.Sprintf("Level: %d", g.Level()))
	imgui.Text(fmt.Sprintf("Lines: %d", g.Lines()))
	imgui.Text(fmt.Sprintf("Drop Interval: %.2fs", g.DropInterval()))

	imgui.Separator()
	if cur := g.Current(); cur != nil {
		imgui.Text(fmt.Sprintf("Current: %s at (%d, %d)", cur.Kind, cur.X, cur.Y))
		imgui.Text(fmt.Sprintf("Ghost Row: %d", g.GhostY()))
	}
	if next := g.Next(); next != nil {
		imgui.Text(fmt.Sprintf("Next: %s", next.Kind))
	}

	if imgui.TreeNodeStr("Grid") {
		for _, row := range GridRows(g.Grid(), g.Current()) {
			imgui.Text(row)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// GridRows renders the grid as text, one string per row: '#' for locked
// cells, '@' for the falling piece and '.' for empty cells. p may be nil.
func GridRows(grid *tetris.Grid, p *tetris.Piece) []string {
	cells := grid.Snapshot()

	var falling [tetris.Rows][tetris.Columns]bool
	if p != nil {
		for _, c := range p.AbsoluteCells() {
			if c.X >= 0 && c.X < tetris.Columns && c.Y >= 0 && c.Y < tetris.Rows {
				falling[c.Y][c.X] = true
			}
		}
	}

	rows := make([]string, 0, tetris.Rows)
	var b strings.Builder
	for y := range tetris.Rows {
		b.Reset()
		for x := range tetris.Columns {
			switch {
			case falling[y][x]:
				b.WriteByte('@')
			case cells[y][x].Filled:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}
