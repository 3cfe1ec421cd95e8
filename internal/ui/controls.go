package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"meta-ca/pkg/core"
)

type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	textLineHeight = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
	defaultStep    = 0.05
)

// KeyHelp lists the key bindings shown under the HUD controls.
var KeyHelp = []string{
	"Space  pause",
	"N      step once",
	"R      reset",
	"S      reseed",
	"L      toggle source",
	"1      activity",
	"Q      quit",
}

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

// refreshControlValues reads float control values out of the snapshot.
func refreshControlValues(states []controlState, snapshot core.ParameterSnapshot) {
	params := map[string]core.Parameter{}
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			params[p.Key] = p
		}
	}
	for i := range states {
		st := &states[i]
		st.hasValue = false
		st.value = "--"
		p, ok := params[st.control.Key]
		if !ok || st.control.Type != core.ParamTypeFloat {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		st.floatValue = v
		st.value = formatFloat(st.control, v)
		st.hasValue = true
	}
}

// target returns the value one step in direction and whether it differs
// from the current value once clamped.
func (st *controlState) target(direction int) (float64, bool) {
	if !st.hasValue || direction == 0 {
		return st.floatValue, false
	}
	step := st.control.Step
	if step <= 0 {
		step = defaultStep
	}
	v := st.control.Clamp(st.floatValue + float64(direction)*step)
	return v, math.Abs(v-st.floatValue) >= 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

// statLines formats a sim's stats as "Label: value" rows.
func statLines(sim core.Sim) []string {
	provider, ok := sim.(core.StatsProvider)
	if !ok {
		return nil
	}
	stats := provider.Stats()
	lines := make([]string, len(stats))
	for i, s := range stats {
		lines[i] = s.Label + ": " + s.Value
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
