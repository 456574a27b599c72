// Package workload synthesizes reproducible quasi-random Person values for
// distribution measurements.
package workload

import (
	"iter"
	"math/rand/v2"

	"github.com/Blackdeer1524/compositehash/src/person"
)

const (
	MinHeight = 150
	MaxHeight = 200

	// weight is drawn in half-kilogram steps: [100, 240] * 0.5 = [50.0, 120.0]
	minHalfKilos = 100
	maxHalfKilos = 240

	MinBuilding = 1
	MaxBuilding = 300
)

// Generator draws Person values from a seeded PCG source.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator whose output depends only on seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewPCG(seed, seed)),
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

func (g *Generator) word() string {
	return Words[g.rnd.IntN(len(Words))]
}

// Next draws name, height, weight, city, street and building, in that order.
func (g *Generator) Next() person.Person {
	var p person.Person

	p.Name = g.word()
	p.Height = g.between(MinHeight, MaxHeight)
	p.Weight = float64(g.between(minHalfKilos, maxHalfKilos)) * 0.5
	p.Address.City = g.word()
	p.Address.Street = g.word()
	p.Address.Building = g.between(MinBuilding, MaxBuilding)

	return p
}

// People yields n generated values.
func (g *Generator) People(n int) iter.Seq[person.Person] {
	return func(yield func(person.Person) bool) {
		for range n {
			if !yield(g.Next()) {
				return
			}
		}
	}
}
