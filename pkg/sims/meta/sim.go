package meta

import (
	"fmt"
	"image/color"
	"strconv"

	icore "meta-ca/internal/core"
	"meta-ca/pkg/automaton"
	"meta-ca/pkg/core"
	"meta-ca/pkg/sims/life"
)

// Raster values used by Cells.
const (
	pixelOff uint8 = iota
	pixelOn
	pixelRule
	pixelLeader
)

var metaPalette = []color.RGBA{
	pixelOff:    {R: 0, G: 0, B: 0, A: 255},
	pixelOn:     {R: 235, G: 235, B: 235, A: 255},
	pixelRule:   {R: 48, G: 48, B: 60, A: 255},
	pixelLeader: {R: 255, G: 170, B: 60, A: 255},
}

// Sim drives a meta Grid and composes its tiles into a single raster with a
// one pixel rule between tiles. Live cells of sub-grids that advanced in the
// last step are drawn in the leader color.
type Sim struct {
	cfg    Config
	grid   Grid
	raster *icore.ByteGrid
	steps  int
}

// NewSim returns a Sim with empty sub-grids; call Reset to seed it.
func NewSim(cfg Config) *Sim {
	s := &Sim{cfg: cfg, grid: New(cfg.Width, cfg.Height, cfg.SubWidth, cfg.SubHeight)}
	s.raster = icore.NewByteGrid(cfg.Width*(cfg.SubWidth+1)+1, cfg.Height*(cfg.SubHeight+1)+1)
	s.refresh(nil)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "meta" }

// Size returns the composite raster dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.raster.W, H: s.raster.H} }

// Cells exposes the composite raster.
func (s *Sim) Cells() []uint8 { return s.raster.Cells() }

// Palette maps raster values to colors.
func (s *Sim) Palette() []color.RGBA { return metaPalette }

// Grid returns the current snapshot.
func (s *Sim) Grid() Grid { return s.grid }

// Reset randomizes every sub-grid from the seed.
func (s *Sim) Reset(seed int64) {
	s.grid = Random(s.cfg.Width, s.cfg.Height, s.cfg.SubWidth, s.cfg.SubHeight, core.NewRNG(seed).Source())
	s.steps = 0
	s.refresh(nil)
}

// Step advances the outer grid once.
func (s *Sim) Step() {
	prev := s.grid
	s.grid = s.grid.GlobalTransition()
	s.steps++
	s.refresh(leaders(prev))
}

// leaders marks the sub-grids that pass the activity gate in g.
func leaders(g Grid) []bool {
	out := make([]bool, g.grid.Len())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			i := g.grid.Index(x, y)
			nbrs, err := g.grid.Neighbors(x, y)
			if err != nil {
				continue
			}
			out[i] = g.grid.Cells()[i].Leads(nbrs)
		}
	}
	return out
}

// Stimulate toggles the sub-grid cell under raster pixel (x, y). Clicks on
// the rules between tiles are rejected.
func (s *Sim) Stimulate(x, y int) error {
	tw, th := s.cfg.SubWidth+1, s.cfg.SubHeight+1
	if x < 1 || y < 1 || (x%tw) == 0 || (y%th) == 0 {
		return fmt.Errorf("meta: pixel (%d,%d) is on a tile rule: %w", x, y, automaton.ErrOutOfBounds)
	}
	if err := s.grid.Toggle(x/tw, y/th, x%tw-1, y%th-1); err != nil {
		return err
	}
	s.refresh(nil)
	return nil
}

// String renders the current grid as text.
func (s *Sim) String() string { return s.grid.String() }

// Stats reports the step count, summed activity and how many sub-grids
// changed last step.
func (s *Sim) Stats() []core.Stat {
	total, live := 0, 0
	for _, a := range s.grid.Activities() {
		total += a
		if a > 0 {
			live++
		}
	}
	return []core.Stat{
		{Label: "Step", Value: strconv.Itoa(s.steps)},
		{Label: "Activity", Value: strconv.Itoa(total)},
		{Label: "Active tiles", Value: strconv.Itoa(live)},
	}
}

// ActivityMask weights each raster pixel by its tile's activity relative to
// the busiest tile. Rules and quiet grids are zero.
func (s *Sim) ActivityMask() []float32 {
	mask := make([]float32, s.raster.W*s.raster.H)
	acts := s.grid.Activities()
	peak := 0
	for _, a := range acts {
		peak = max(peak, a)
	}
	if peak == 0 {
		return mask
	}
	tw, th := s.cfg.SubWidth+1, s.cfg.SubHeight+1
	for i, a := range acts {
		if a == 0 {
			continue
		}
		w := float32(a) / float32(peak)
		ox, oy := (i%s.grid.Width())*tw+1, (i/s.grid.Width())*th+1
		for y := oy; y < oy+s.cfg.SubHeight; y++ {
			row := mask[y*s.raster.W+ox : y*s.raster.W+ox+s.cfg.SubWidth]
			for j := range row {
				row[j] = w
			}
		}
	}
	return mask
}

// Parameters describes the active configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Outer",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
			},
		},
		{
			Name: "Sub-grid",
			Params: []core.Parameter{
				core.IntParam("sub_w", "Width", s.cfg.SubWidth),
				core.IntParam("sub_h", "Height", s.cfg.SubHeight),
			},
		},
	}}
}

func (s *Sim) refresh(lead []bool) {
	s.raster.Clear()
	tw, th := s.cfg.SubWidth+1, s.cfg.SubHeight+1
	for x := 0; x < s.raster.W; x += tw {
		for y := 0; y < s.raster.H; y++ {
			s.raster.Set(x, y, pixelRule)
		}
	}
	for y := 0; y < s.raster.H; y += th {
		for x := 0; x < s.raster.W; x++ {
			s.raster.Set(x, y, pixelRule)
		}
	}
	tile := make([]uint8, s.cfg.SubWidth*s.cfg.SubHeight)
	for i, sub := range s.grid.Grids() {
		on := pixelOn
		if i < len(lead) && lead[i] {
			on = pixelLeader
		}
		for j := range tile {
			tile[j] = pixelOff
		}
		for j, st := range sub.States() {
			if j < len(tile) && st == life.On {
				tile[j] = on
			}
		}
		ox, oy := i%s.grid.Width(), i/s.grid.Width()
		s.raster.Blit(ox*tw+1, oy*th+1, s.cfg.SubWidth, s.cfg.SubHeight, tile)
	}
}

func init() {
	core.Register("meta", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
