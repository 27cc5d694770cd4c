// Package sweep: explicit memoization of transforms and base circuits.
// Keys compare coupling values with exact float equality: grid values
// come verbatim from the configuration slices, so two grid points either
// share the identical bit pattern or are genuinely different points.

package sweep

import (
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/qsweep/circuit"
	"github.com/katalvlaran/qsweep/kitaev"
)

// transformKey identifies a Bogoliubov transform by its coupling triple.
type transformKey struct {
	t, d, mu float64
}

// baseKey identifies a preparation circuit by couplings plus occupations.
type baseKey struct {
	t, d, mu float64
	occ      string
}

// occString renders an occupation list canonically for cache keying.
func occString(occupied []int) string {
	if len(occupied) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, idx := range occupied {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(idx))
	}

	return sb.String()
}

// circuitCache memoizes the two expensive artifacts of the pipeline.
// All methods are safe for concurrent use.
type circuitCache struct {
	mu         sync.Mutex
	transforms map[transformKey]*kitaev.Transform
	bases      map[baseKey]*circuit.Circuit
	stats      CacheStats
}

func newCircuitCache() *circuitCache {
	return &circuitCache{
		transforms: make(map[transformKey]*kitaev.Transform),
		bases:      make(map[baseKey]*circuit.Circuit),
	}
}

// transform returns the memoized Bogoliubov transform for a coupling
// triple, building it via build on a miss. Errors are not cached: a
// failing grid point is re-attempted if asked again.
func (c *circuitCache) transform(key transformKey, build func() (*kitaev.Transform, error)) (*kitaev.Transform, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tr, ok := c.transforms[key]; ok {
		return tr, nil
	}
	tr, err := build()
	if err != nil {
		return nil, err
	}
	c.transforms[key] = tr
	c.stats.TransformBuilds++

	return tr, nil
}

// base returns the memoized preparation circuit for (couplings,
// occupations), building it on a miss.
func (c *circuitCache) base(key baseKey, build func() (*circuit.Circuit, error)) (*circuit.Circuit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qc, ok := c.bases[key]; ok {
		return qc, nil
	}
	qc, err := build()
	if err != nil {
		return nil, err
	}
	c.bases[key] = qc
	c.stats.BaseBuilds++

	return qc, nil
}

// snapshot returns the current build counters.
func (c *circuitCache) snapshot() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}
