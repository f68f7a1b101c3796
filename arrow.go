package vectorgrid

import "math"

// Arrowhead dimensions shared by every vector and the resultant.
const (
	ArrowLength = 10.0
	ArrowSpread = math.Pi / 6 // 30 degrees either side of the shaft
)

// ShaftAngle returns the direction of the shaft from (x1, y1) to (x2, y2) in
// radians. A zero-length shaft has angle 0.
func ShaftAngle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Arrowhead returns the chevron drawn at the (x2, y2) end of a shaft: the tip
// followed by the two barb ends, each length pixels back from the tip and
// rotated by spread from the shaft direction.
func Arrowhead(x1, y1, x2, y2, length, spread float64) [3]Vec2 {
	angle := ShaftAngle(x1, y1, x2, y2)
	return [3]Vec2{
		{x2, y2},
		{x2 - length*math.Cos(angle-spread), y2 - length*math.Sin(angle-spread)},
		{x2 - length*math.Cos(angle+spread), y2 - length*math.Sin(angle+spread)},
	}
}
