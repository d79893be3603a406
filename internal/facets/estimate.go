package facets

import (
	"math/rand"
	"sync"
)

// estimateCoverage marches trials random pixels and returns the fraction
// that hit a face. Each worker draws from its own seeded source so the
// result only depends on seed and the worker count.
func estimateCoverage(f FaceFinder, c RenderConfig, trials int, seed int64) Real {
	if trials <= 0 || c.Validate() != nil {
		return 0
	}
	workers := c.workers()
	if workers > trials {
		workers = trials
	}

	var wg sync.WaitGroup
	hitsCh := make(chan int, workers)
	for wid := 0; wid < workers; wid++ {
		// trials spread round-robin: worker wid probes ceil((trials-wid)/workers)
		probes := (trials - wid + workers - 1) / workers
		wseed := seed ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(wseed))
			hits := 0
			for ; probes > 0; probes-- {
				x, y := c.PixelToScene(rng.Intn(c.Width), rng.Intn(c.Height))
				if _, _, _, ok := March(f, x, y); ok {
					hits++
				}
			}
			hitsCh <- hits
		}()
	}
	wg.Wait()
	close(hitsCh)

	total := 0
	for h := range hitsCh {
		total += h
	}
	return Real(total) / Real(trials)
}

// estimateWork is the worst-case number of point-in-face tests for a render.
func estimateWork(s *Surface, c RenderConfig) int64 {
	depth := int64(CoordMax - CoordMin + 1)
	return int64(s.FaceCount()) * int64(c.Width) * int64(c.Height) * depth
}
