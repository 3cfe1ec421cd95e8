// Command ca-term runs a registered sim in the terminal. With -dump it
// prints text frames to stdout instead.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"meta-ca/internal/app"
	icore "meta-ca/internal/core"
	"meta-ca/pkg/core"
	_ "meta-ca/pkg/sims/briansbrain"
	_ "meta-ca/pkg/sims/elementary"
	_ "meta-ca/pkg/sims/flux"
	_ "meta-ca/pkg/sims/life"
	_ "meta-ca/pkg/sims/light"
	_ "meta-ca/pkg/sims/meta"
)

// cellWidth is how many terminal columns one grid cell spans.
const cellWidth = 2

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 10
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("dump", -1, "print this many steps as text and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	if err := cfg.Load(flag.CommandLine); err != nil {
		log.Error("load run file", "err", err)
		os.Exit(1)
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Error("unknown sim", "sim", cfg.Sim, "available", strings.Join(core.Names(), ","))
		os.Exit(1)
	}
	sim := factory(cfg.Params)
	sim.Reset(cfg.Seed)

	if *frames >= 0 {
		if err := dump(os.Stdout, sim, *frames); err != nil {
			log.Error("dump", "err", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Error("terminal", "err", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		log.Error("terminal", "err", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	v := &view{screen: screen, sim: sim, styles: newStyler(sim), seed: cfg.Seed, log: log}
	v.run(icore.NewFixedStep(cfg.TPS))
	screen.Fini()
}

type view struct {
	screen tcell.Screen
	sim    core.Sim
	styles styler
	log    *slog.Logger
	seed   int64
	paused bool
	held   bool // Button1 was down on the previous mouse event
}

func (v *view) run(clock *icore.FixedStep) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			if clock.ShouldStep() && !v.paused {
				v.sim.Step()
			}
			v.draw()
		}
	}
}

func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.sim.Step()
		case 'r':
			v.sim.Reset(v.seed)
		case 's':
			v.seed = time.Now().UnixNano()
			v.sim.Reset(v.seed)
		case 'l':
			if t, ok := v.sim.(core.SourceToggler); ok {
				t.ToggleSource()
			}
		}
	case *tcell.EventMouse:
		mx, my := ev.Position()
		v.mouse(ev.Buttons(), mx, my)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *view) draw() {
	size := v.sim.Size()
	cells := v.sim.Cells()
	tw, th := v.screen.Size()
	for y := 0; y < min(size.H, th); y++ {
		for x := 0; x < size.W && x*cellWidth < tw; x++ {
			st := v.styles.style(cells[y*size.W+x])
			for c := 0; c < cellWidth; c++ {
				v.screen.SetContent(x*cellWidth+c, y, ' ', nil, st)
			}
		}
	}
	v.screen.Show()
}

// mouse stimulates the sim under the cursor. tcell reports every motion while
// the button is down, so sims without a movable source only see the press.
func (v *view) mouse(buttons tcell.ButtonMask, mx, my int) {
	down := buttons&tcell.Button1 != 0
	pressed := down && !v.held
	v.held = down
	if !pressed && !(down && app.DragStimulus(v.sim)) {
		return
	}
	s, ok := v.sim.(core.Stimulator)
	if !ok {
		return
	}
	if err := s.Stimulate(mx/cellWidth, my); err != nil {
		v.log.Debug("stimulus ignored", "x", mx/cellWidth, "y", my, "err", err)
	}
}
