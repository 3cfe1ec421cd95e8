package main

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"meta-ca/pkg/core"
	"meta-ca/pkg/sims/meta"
)

type scenario struct {
	width, height int
	subW, subH    int
	seed          int64
}

func (s scenario) String() string {
	return fmt.Sprintf("outer=%dx%d sub=%dx%d seed=%d", s.width, s.height, s.subW, s.subH, s.seed)
}

type scenarioResult struct {
	scenario     scenario
	meanActivity float64
	stdActivity  float64
	peakActivity float64
	finalActive  int
	// quietStep is the first step after which no sub-grid changed, or -1.
	quietStep int
}

// scenarios expands the sweep grid: every sub-grid size against every seed.
func scenarios(width, height int, subSizes []int, seeds int, baseSeed int64) []scenario {
	var out []scenario
	for _, sub := range subSizes {
		for i := 0; i < seeds; i++ {
			out = append(out, scenario{width: width, height: height, subW: sub, subH: sub, seed: baseSeed + int64(i)})
		}
	}
	return out
}

func runScenario(sc scenario, steps int) scenarioResult {
	g := meta.Random(sc.width, sc.height, sc.subW, sc.subH, core.NewRNG(sc.seed).Source())
	series := make([]float64, 0, steps)
	res := scenarioResult{scenario: sc, quietStep: -1}
	for step := 0; step < steps; step++ {
		g = g.GlobalTransition()
		total, active := 0, 0
		for _, a := range g.Activities() {
			total += a
			if a > 0 {
				active++
			}
		}
		series = append(series, float64(total))
		res.finalActive = active
		if total == 0 {
			res.quietStep = step + 1
			break
		}
	}
	switch {
	case len(series) > 1:
		res.meanActivity, res.stdActivity = stat.MeanStdDev(series, nil)
		res.peakActivity = floats.Max(series)
	case len(series) == 1:
		res.meanActivity, res.peakActivity = series[0], series[0]
	}
	return res
}

// sweep runs every scenario on a pool of workers and returns the results
// ordered by mean activity, busiest first.
func sweep(sets []scenario, steps, workers int) []scenarioResult {
	workers = max(workers, 1)
	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	all := make([]scenarioResult, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].meanActivity != all[j].meanActivity {
			return all[i].meanActivity > all[j].meanActivity
		}
		return all[i].scenario.String() < all[j].scenario.String()
	})
	return all
}
