package app

import "meta-ca/pkg/core"

// cellAt maps a cursor position in screen pixels to a grid cell. ok is
// false when the cursor is outside the grid area.
func cellAt(mx, my, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y = mx/scale, my/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// DragStimulus reports whether a sim takes the stimulus on every frame the
// button is held. Sims with a movable source follow the cursor; the rest
// only react to the initial press so a click toggles a cell once.
func DragStimulus(sim core.Sim) bool {
	_, ok := sim.(core.SourceToggler)
	return ok
}
