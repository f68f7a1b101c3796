package canvas

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/vectorgrid"
)

// pointsToPixels converts a font size in points to pixels at 96 DPI.
const pointsToPixels = 96.0 / 72.0

// nodeOutline is the stroke drawn around endpoint nodes.
const nodeOutline = 1.0

// Surface is a vectorgrid.DrawSurface rendered with Ebitengine. Items are
// retained in an embedded MemorySurface and painted in creation order on every
// Draw.
type Surface struct {
	*vectorgrid.MemorySurface

	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace // keyed by point size
}

// NewSurface creates an empty surface with Go Regular as the label font.
func NewSurface() (*Surface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("canvas: failed to parse label font: %w", err)
	}
	return &Surface{
		MemorySurface: vectorgrid.NewMemorySurface(),
		source:        source,
		faces:         make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns the label face for a point size, creating it on first use.
func (s *Surface) Face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.source, Size: size * pointsToPixels}
	s.faces[size] = f
	return f
}

// Draw paints every live item onto dst.
func (s *Surface) Draw(dst *ebiten.Image) {
	s.Items(func(it *vectorgrid.Item) {
		switch it.Kind {
		case vectorgrid.ItemNode:
			c := it.Points[0]
			vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), vectorgrid.NodeRadius, it.Color, true)
			vector.StrokeCircle(dst, float32(c.X), float32(c.Y), vectorgrid.NodeRadius, nodeOutline, vectorgrid.ColorBlack, true)
		case vectorgrid.ItemLine:
			drawLine(dst, it.Points[0], it.Points[1], it.LineStyle)
		case vectorgrid.ItemArrowhead:
			solid := vectorgrid.LineStyle{Color: it.LineStyle.Color, Width: it.LineStyle.Width}
			drawLine(dst, it.Points[0], it.Points[1], solid)
			drawLine(dst, it.Points[0], it.Points[2], solid)
		case vectorgrid.ItemText:
			s.drawText(dst, it)
		}
	})
}

func (s *Surface) drawText(dst *ebiten.Image, it *vectorgrid.Item) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(it.Points[0].X, it.Points[0].Y)
	op.ColorScale.ScaleWithColor(it.TextStyle.Color)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, it.Text, s.Face(it.TextStyle.Size), op)
}

func drawLine(dst *ebiten.Image, a, b vectorgrid.Vec2, style vectorgrid.LineStyle) {
	w := float32(style.Width)
	if w <= 0 {
		w = 1
	}
	if len(style.Dash) == 0 {
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, style.Color, true)
		return
	}
	for _, seg := range dashSegments(a, b, style.Dash) {
		vector.StrokeLine(dst, float32(seg[0].X), float32(seg[0].Y), float32(seg[1].X), float32(seg[1].Y), w, style.Color, true)
	}
}

// dashSegments splits the segment a-b into the "on" pieces of an alternating
// on/off dash pattern. A pattern without positive lengths yields the whole
// segment.
func dashSegments(a, b vectorgrid.Vec2, dash []float64) [][2]vectorgrid.Vec2 {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	var period float64
	for _, d := range dash {
		if d > 0 {
			period += d
		}
	}
	if period == 0 {
		return [][2]vectorgrid.Vec2{{a, b}}
	}
	ux, uy := dx/length, dy/length

	var out [][2]vectorgrid.Vec2
	pos := 0.0
	for i := 0; pos < length; i++ {
		d := dash[i%len(dash)]
		if d <= 0 {
			continue
		}
		end := math.Min(pos+d, length)
		if i%2 == 0 {
			out = append(out, [2]vectorgrid.Vec2{
				{a.X + ux*pos, a.Y + uy*pos},
				{a.X + ux*end, a.Y + uy*end},
			})
		}
		pos = end
	}
	return out
}
