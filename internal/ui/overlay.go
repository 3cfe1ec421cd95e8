//go:build ebiten

package ui

import (
	"image/color"

	"meta-ca/internal/render"
	"meta-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type activityMaskProvider interface {
	ActivityMask() []float32
}

var activityTint = color.RGBA{R: 255, G: 120, B: 40, A: 0}

// Overlay draws an optional activity heat map on top of the base view.
type Overlay struct {
	sim          core.Sim
	scale        int
	showActivity bool
	painter      *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showActivity = !o.showActivity
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showActivity {
		return
	}
	provider, ok := o.sim.(activityMaskProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if w, h := o.painterSize(); w != size.W || h != size.H {
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	o.painter.BlitMask(screen, provider.ActivityMask(), activityTint, o.scale)
}

func (o *Overlay) painterSize() (int, int) {
	if o.painter == nil {
		return 0, 0
	}
	return o.painter.Size()
}
