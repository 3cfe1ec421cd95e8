//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"meta-ca/pkg/core"
)

// HUDWidth matches the GUI build so window sizing stays consistent.
const HUDWidth = 220

var errNoGUI = errors.New("app.Game requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(core.Sim, int, int64, *slog.Logger) *Game {
	panic(errNoGUI)
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return errNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
