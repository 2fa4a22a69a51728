// Package rng provides the random number service shared by dungeon
// generation and encounters.
package rng

import (
	"fmt"
	"math/rand"
	"time"
)

// Source produces uniform floats in [0,1]. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Rand derives every draw from a single Source, so a fixed seed (or a
// scripted source) reproduces a whole session.
type Rand struct {
	src Source
}

// New wraps an existing source.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// NewSeeded creates a generator backed by math/rand with the given seed.
// A seed of 0 means a seed is derived from the wall clock; use Seed to
// resolve it first when the effective value must be recorded.
func NewSeeded(seed int64) *Rand {
	return New(rand.New(rand.NewSource(Seed(seed))))
}

// Seed returns seed unchanged, or a wall-clock seed when seed is 0.
func Seed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Float returns a uniform float in [0,1].
func (r *Rand) Float() float64 {
	return clamp(r.src.Float64(), 0, 1)
}

// FloatRange returns a uniform float in [min,max].
func (r *Rand) FloatRange(min, max float64) float64 {
	return clamp(r.Float()*(max-min)+min, min, max)
}

// Int returns a uniform int in [minInclusive, maxExclusive-1].
// It panics if maxExclusive <= minInclusive.
func (r *Rand) Int(minInclusive, maxExclusive int) int {
	if maxExclusive <= minInclusive {
		panic(fmt.Sprintf("rng: empty range [%d,%d)", minInclusive, maxExclusive))
	}
	n := int(r.Float()*float64(maxExclusive-minInclusive)) + minInclusive
	if n < minInclusive {
		return minInclusive
	}
	if n > maxExclusive-1 {
		return maxExclusive - 1
	}
	return n
}

// WeightedIndex picks an index into weights with probability proportional
// to its weight. If totalWeight <= 0 it is recomputed from weights.
// Zero weights are never selected. An all-zero table is a caller error.
func (r *Rand) WeightedIndex(weights []int, totalWeight int) int {
	if totalWeight <= 0 {
		totalWeight = 0
		for _, w := range weights {
			totalWeight += w
		}
	}

	roll := r.Int(0, totalWeight)
	index := 0
	for ; roll >= 0 && index < len(weights); index++ {
		roll -= weights[index]
	}
	return index - 1
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
