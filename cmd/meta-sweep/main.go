// Command meta-sweep runs random meta-grids across sub-grid sizes and seeds
// and reports how much activity each configuration sustains.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"meta-ca/internal/parallel"
)

func main() {
	steps := flag.Int("steps", 200, "outer steps to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 8, "outer grid width")
	height := flag.Int("h", 4, "outer grid height")
	subs := flag.String("subs", "8,12,16,24", "comma separated sub-grid sizes")
	seeds := flag.Int("seeds", 8, "seeds per sub-grid size")
	baseSeed := flag.Int64("seed", 1, "first seed")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	sizes, err := parseSizes(*subs)
	if err != nil {
		log.Error("bad -subs", "err", err)
		os.Exit(2)
	}

	// Scenarios already run in parallel; keep each transition on one goroutine.
	if *workers > 1 {
		parallel.SetWorkers(1)
	}

	sets := scenarios(*width, *height, sizes, *seeds, *baseSeed)
	log.Info("sweeping", "scenarios", len(sets), "workers", *workers, "steps", *steps)

	start := time.Now()
	all := sweep(sets, *steps, *workers)
	elapsed := time.Since(start)

	fmt.Printf("Top %d results (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) mean=%.1f std=%.1f peak=%.0f active=%d quiet=%d %s\n",
			i+1, res.meanActivity, res.stdActivity, res.peakActivity, res.finalActive, res.quietStep, res.scenario)
	}
	quiet := 0
	for _, res := range all {
		if res.quietStep >= 0 {
			quiet++
		}
	}
	fmt.Printf("\n%d of %d scenarios went quiet within %d steps\n", quiet, len(all), *steps)
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("sub-grid size %q: must be a positive integer", part)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sub-grid sizes in %q", s)
	}
	return out, nil
}
