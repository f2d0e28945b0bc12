// Package pricing derives display prices for catalog items.
package pricing

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Multiplicative band the generated price is drawn from.
const (
	factorMin = 0.90
	factorMax = 1.15
)

// Generator produces randomized display prices around an item's base
// price. Prices vary across requests; tests assert the band, not exact
// values. A Generator is safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	mu  sync.Mutex
}

// NewGenerator creates a Generator seeded from the current time.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource creates a Generator backed by the given source.
// Tests use this with a fixed seed for reproducible draws.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate draws a factor uniformly from [0.90, 1.15], applies it to
// basePrice, and rounds to the nearest multiple of 10.
func (g *Generator) Generate(basePrice float64) float64 {
	g.mu.Lock()
	factor := factorMin + g.rng.Float64()*(factorMax-factorMin)
	g.mu.Unlock()

	return math.Round(basePrice*factor/10.0) * 10.0
}
