// Package canvas runs the vectorgrid playground in an Ebitengine window.
//
// [Run] opens an 880x880 window with a Cartesian grid overlay. Press and drag
// on empty space to draw a vector; press an endpoint to select its vector and
// drag that endpoint; the "X" button next to the selection, or the Delete key,
// removes it. The purple arrow from the center is the sum of all vectors.
//
//	if err := canvas.Run(canvas.RunConfig{ShowFPS: true}); err != nil {
//		log.Fatal(err)
//	}
//
// For automated sessions, load a JSON script with [LoadTestScript] and set it
// as RunConfig.Script. Scripts inject pointer events frame by frame and can
// capture screenshots:
//
//	{"steps": [
//		{"action": "drag", "fromX": 400, "fromY": 400, "toX": 500, "toY": 450, "frames": 10},
//		{"action": "screenshot", "label": "one-vector"}
//	]}
package canvas
