package canvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/vectorgrid"
)

const (
	cursorOffset    = 15.0
	cursorLabelSize = 8.0
)

// drawGrid paints the grid overlay: light cell lines and black axes.
func drawGrid(dst *ebiten.Image, lines []vectorgrid.GridLine) {
	for _, l := range lines {
		c := vectorgrid.ColorLightGray
		if l.Axis {
			c = vectorgrid.ColorBlack
		}
		vector.StrokeLine(dst, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), 1, c, false)
	}
}

// cursorReadout shows the Cartesian coordinates of the hovering pointer.
type cursorReadout struct {
	grid    vectorgrid.Grid
	x, y    float64
	label   string
	visible bool
}

func (c *cursorReadout) move(x, y float64) {
	c.x, c.y = x, y
	c.label = c.grid.Label(x, y)
	c.visible = true
}

func (c *cursorReadout) draw(dst *ebiten.Image, face text.Face) {
	if !c.visible {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(c.x-cursorOffset, c.y-cursorOffset)
	op.ColorScale.ScaleWithColor(vectorgrid.ColorRed)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, c.label, face, op)
}

// drawFPS prints the current FPS and TPS in the top-left corner.
func drawFPS(dst *ebiten.Image) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
}
