package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/engine"
	"github.com/lixenwraith/tunnelman/parameter"
)

const (
	colorSky   = tcell.ColorBlack
	colorEarth = tcell.ColorSaddleBrown
)

var kindColors = [component.KindCount]tcell.Color{
	component.KindPlayer:            tcell.ColorYellow,
	component.KindRegularProtester:  tcell.ColorRed,
	component.KindHardcoreProtester: tcell.ColorFuchsia,
	component.KindBoulder:           tcell.ColorGray,
	component.KindBarrel:            tcell.ColorGreen,
	component.KindGoldNugget:        tcell.ColorGold,
	component.KindSonarKit:          tcell.ColorAqua,
	component.KindWaterPool:         tcell.ColorBlue,
	component.KindSquirt:            tcell.ColorLightBlue,
}

// Canvas is one color per grid cell, indexed [y][x] with y growing upward
type Canvas [parameter.GridHeight][parameter.GridWidth]tcell.Color

// Compose paints earth, then visible entities from the back (highest depth) forward
func Compose(w *engine.World) *Canvas {
	var c Canvas
	earth := w.Earth()
	for y := 0; y < parameter.GridHeight; y++ {
		for x := 0; x < parameter.GridWidth; x++ {
			if earth.Has(x, y) {
				c[y][x] = colorEarth
			} else {
				c[y][x] = colorSky
			}
		}
	}

	for depth := component.DepthPickup; depth >= component.DepthAgent; depth-- {
		for _, e := range w.Entities() {
			if e.Alive && e.Visible && e.Depth == depth {
				c.fill(e)
			}
		}
	}
	if p := w.Player(); p != nil && p.Alive {
		c.fill(p)
	}
	return &c
}

func (c *Canvas) fill(e *component.Entity) {
	color := kindColors[e.Kind]
	for y := e.Y; y < e.Y+parameter.Footprint && y < parameter.GridHeight; y++ {
		for x := e.X; x < e.X+parameter.Footprint && x < parameter.GridWidth; x++ {
			if x >= 0 && y >= 0 {
				c[y][x] = color
			}
		}
	}
}

// Draw renders the status line on row 0 and the grid below it,
// two grid rows per terminal row using upper half blocks
func (t *Terminal) Draw(w *engine.World) {
	t.screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range []rune(t.status) {
		t.screen.SetContent(i, 0, r, nil, style)
	}

	c := Compose(w)
	for row := 0; row < parameter.GridHeight/2; row++ {
		top := parameter.GridHeight - 1 - 2*row
		for x := 0; x < parameter.GridWidth; x++ {
			cell := tcell.StyleDefault.Foreground(c[top][x]).Background(c[top-1][x])
			t.screen.SetContent(x, row+1, '▀', nil, cell)
		}
	}

	t.screen.Show()
}
