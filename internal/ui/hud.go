//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"meta-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders the controls and live stats panel to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string

	controls     []controlState
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	width = max(width, 0)
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls(), width)
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes control values and handles clicks on the +/- buttons.
// It reports whether the click landed on the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		refreshControlValues(h.controls, provider.Parameters())
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	h.handleClick(mx-h.panelOffsetX, my)
	return true
}

func (h *HUD) handleClick(px, py int) {
	if h.floatSetter == nil {
		return
	}
	for i := range h.controls {
		st := &h.controls[i]
		dir := 0
		switch {
		case pointInRect(px, py, st.minusRect):
			dir = -1
		case pointInRect(px, py, st.plusRect):
			dir = 1
		default:
			continue
		}
		if v, ok := st.target(dir); ok && h.floatSetter.SetFloatParameter(st.control.Key, v) {
			st.floatValue = v
			st.value = formatFloat(st.control, v)
		}
		return
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, headerColor)
	y := h.drawControls()
	for _, line := range statLines(h.sim) {
		y += textLineHeight
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}
	y += textLineHeight
	for _, line := range KeyHelp {
		y += textLineHeight
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// drawControls paints the adjustable parameters and returns the baseline
// below the last one.
func (h *HUD) drawControls() int {
	face := basicfont.Face7x13
	if len(h.controls) == 0 {
		y := controlsTop + labelBaseline/2
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y, dimColor)
		return y + textLineHeight
	}
	for i := range h.controls {
		st := &h.controls[i]
		labelY := st.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, labelY, textColor)
		valueColor := textColor
		if !st.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, st.value)
		text.Draw(h.panel, st.value, face, st.minusRect.Min.X-buttonGap-bounds.Dx(), labelY, valueColor)

		_, minusOK := st.target(-1)
		_, plusOK := st.target(1)
		h.drawButton(st.minusRect, "-", minusOK && h.floatSetter != nil)
		h.drawButton(st.plusRect, "+", plusOK && h.floatSetter != nil)
	}
	return h.controls[len(h.controls)-1].top + lineHeight
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
