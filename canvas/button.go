package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/vectorgrid"
)

const (
	buttonSize      = 20.0
	buttonFadeIn    = 0.15 // seconds
	buttonLabelSize = 9.0
)

var (
	buttonFill   = vectorgrid.Color{R: 0.93, G: 0.93, B: 0.93, A: 1}
	buttonBorder = vectorgrid.Color{R: 0.45, G: 0.45, B: 0.45, A: 1}
)

// DeleteButton is the "X" control shown next to a selected node. It
// implements vectorgrid.DeleteAffordance. Its top-left corner is placed at the
// position given to Show, and it fades in over a short tween.
type DeleteButton struct {
	X, Y float64

	visible bool
	alpha   float64
	fade    *gween.Tween
}

// NewDeleteButton creates a hidden button.
func NewDeleteButton() *DeleteButton {
	return &DeleteButton{}
}

// Show places the button's top-left corner at (x, y) and makes it visible.
// Moving an already visible button does not restart the fade.
func (b *DeleteButton) Show(x, y float64) {
	b.X, b.Y = x, y
	if b.visible {
		return
	}
	b.visible = true
	b.alpha = 0
	b.fade = gween.New(0, 1, buttonFadeIn, ease.OutQuad)
}

// Hide removes the button from the screen.
func (b *DeleteButton) Hide() {
	b.visible = false
	b.alpha = 0
	b.fade = nil
}

// Visible reports whether the button is shown.
func (b *DeleteButton) Visible() bool {
	return b.visible
}

// Alpha returns the current fade-in opacity in [0, 1].
func (b *DeleteButton) Alpha() float64 {
	return b.alpha
}

// Bounds returns the button's rectangle.
func (b *DeleteButton) Bounds() vectorgrid.Rect {
	return vectorgrid.Rect{X: b.X, Y: b.Y, Width: buttonSize, Height: buttonSize}
}

// Contains reports whether (x, y) hits the visible button.
func (b *DeleteButton) Contains(x, y float64) bool {
	return b.visible && b.Bounds().Contains(x, y)
}

// Update advances the fade by dt seconds.
func (b *DeleteButton) Update(dt float32) {
	if b.fade == nil {
		return
	}
	v, done := b.fade.Update(dt)
	b.alpha = float64(v)
	if done {
		b.alpha = 1
		b.fade = nil
	}
}

// Draw paints the button with face used for the "X" glyph.
func (b *DeleteButton) Draw(dst *ebiten.Image, face text.Face) {
	if !b.visible {
		return
	}
	x, y := float32(b.X), float32(b.Y)
	vector.DrawFilledRect(dst, x, y, buttonSize, buttonSize, buttonFill.WithAlpha(b.alpha), false)
	vector.StrokeRect(dst, x, y, buttonSize, buttonSize, 1, buttonBorder.WithAlpha(b.alpha), false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(b.X+buttonSize/2, b.Y+buttonSize/2)
	op.ColorScale.ScaleWithColor(vectorgrid.ColorBlack.WithAlpha(b.alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, "X", face, op)
}
