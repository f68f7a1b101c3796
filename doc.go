// Package vectorgrid is the interaction engine of a 2D vector-drawing
// playground.
//
// A [Controller] turns pointer press, drag and release events into vectors on
// a Cartesian grid: press on empty space to place a start node, drag to see a
// dashed preview, release to place the end node. Each finished vector is
// drawn with an arrowhead and coordinate labels at both ends. Pressing an
// existing node selects its vector; dragging moves that endpoint, and the
// [DeleteAffordance] removes it. After every change the [ResultantEngine]
// redraws the sum of all vectors from a fixed origin.
//
// The engine is headless. It draws through the [DrawSurface] interface and
// never touches a window, so the whole state machine runs in tests against a
// [MemorySurface]:
//
//	surface := vectorgrid.NewMemorySurface()
//	ctrl := vectorgrid.NewController(surface, nil, vectorgrid.ControllerConfig{})
//	ctrl.OnPress(400, 400)
//	ctrl.OnDrag(450, 420)
//	ctrl.OnRelease(500, 450)
//	tip := ctrl.Resultant().Endpoint() // (540, 490)
//
// The Ebitengine window, pointer source, delete button and grid overlay live
// in package canvas.
//
// # Coordinates
//
// [Grid] maps pixels to grid units: the canvas center is (0, 0), one unit is
// Grid.Spacing pixels, and Y grows downward as it does on screen. Labels show
// Cartesian coordinates rounded to three decimals, see [FormatPoint].
package vectorgrid
