package verify

import (
	"context"
	"fmt"
	"math"

	"github.com/Blackdeer1524/compositehash/src/distribution"
	"github.com/Blackdeer1524/compositehash/src/hashset"
	"github.com/Blackdeer1524/compositehash/src/person"
	"github.com/Blackdeer1524/compositehash/src/workload"
)

const (
	CheckSmoke        = "smoke"
	CheckPurity       = "purity"
	CheckDistribution = "distribution"
	CheckSensitivity  = "sensitivity"
	CheckConsistency  = "consistency"

	MetricPearson = "pearson"
	MetricPeople  = "people"
)

var (
	John = person.Person{
		Name:    "John",
		Height:  180,
		Weight:  82.5,
		Address: person.Address{City: "London", Street: "Baker St", Building: 221},
	}
	Sherlock = person.Person{
		Name:    "Sherlock",
		Height:  190,
		Weight:  75.3,
		Address: person.Address{City: "London", Street: "Baker St", Building: 221},
	}
)

type Suite struct {
	hasher person.PersonHasher
	opts   Options
}

// NewSuite checks hasher; address checks use the address hasher nested in it.
func NewSuite(hasher person.PersonHasher, opts Options) *Suite {
	return &Suite{
		hasher: hasher,
		opts:   opts,
	}
}

// Register adds every check of the suite to r in a fixed order.
func (s *Suite) Register(r *Runner) {
	r.Register(CheckSmoke, s.Smoke)
	r.Register(CheckPurity, s.Purity)
	r.Register(CheckDistribution, s.Distribution)
	r.Register(CheckSensitivity, s.Sensitivity)
	r.Register(CheckConsistency, s.Consistency)
}

// Smoke inserts two people sharing an address and expects both to be kept.
func (s *Suite) Smoke(_ context.Context) (Metrics, error) {
	people := []person.Person{John, Sherlock}

	set := hashset.New[person.Person](s.hasher)
	for _, p := range people {
		set.Insert(p)
	}

	if err := AssertEqual(len(people), set.Len(), "set size"); err != nil {
		return nil, err
	}

	for _, p := range people {
		if err := AssertEqual(1, set.Count(p), "count of "+p.String()); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

func (s *Suite) Purity(_ context.Context) (Metrics, error) {
	want := s.hasher.Hash(John)
	for i := range s.opts.PurityIterations {
		err := AssertEqual(want, s.hasher.Hash(John), fmt.Sprintf("hash of %s at iteration %d", John, i))
		if err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// Distribution hashes Buckets*BucketSize generated people and compares the
// Pearson statistic of the bucket counts against CriticalValue.
func (s *Suite) Distribution(ctx context.Context) (Metrics, error) {
	if err := s.opts.Validate(); err != nil {
		return nil, err
	}

	n := s.opts.People()
	gen := workload.NewGenerator(s.opts.Seed)

	var interrupted error
	hashes := func(yield func(uint64) bool) {
		var i uint64
		for p := range gen.People(n) {
			if i%4096 == 0 {
				if interrupted = ctx.Err(); interrupted != nil {
					return
				}
			}
			i++

			if !yield(s.hasher.Hash(p)) {
				return
			}
		}
	}

	buckets, err := distribution.Tally(hashes, s.opts.Buckets)
	if err != nil {
		return nil, fmt.Errorf("failed to tally hashes: %w", err)
	}
	if interrupted != nil {
		return nil, fmt.Errorf("distribution interrupted: %w", interrupted)
	}

	stat, err := distribution.Pearson(buckets, float64(s.opts.BucketSize))
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistic: %w", err)
	}

	metrics := Metrics{
		MetricPearson: stat,
		MetricPeople:  float64(n),
	}

	hint := fmt.Sprintf("pearson statistic %v must be below %v", stat, s.opts.CriticalValue)
	return metrics, Assert(stat < s.opts.CriticalValue, hint)
}

// Sensitivity swaps field values between otherwise identical values and
// expects the hash to change.
func (s *Suite) Sensitivity(_ context.Context) (Metrics, error) {
	swappedAddr := John.Address
	swappedAddr.City, swappedAddr.Street = John.Address.Street, John.Address.City

	addr := s.hasher.Address()
	err := Assert(
		addr.Hash(John.Address) != addr.Hash(swappedAddr),
		fmt.Sprintf("%s and %s hash equally", John.Address, swappedAddr),
	)
	if err != nil {
		return nil, err
	}

	swapped := John
	swapped.Name, swapped.Address.City = John.Address.City, John.Name

	return nil, Assert(
		s.hasher.Hash(John) != s.hasher.Hash(swapped),
		fmt.Sprintf("%s and %s hash equally", John, swapped),
	)
}

// Consistency builds values equal to known ones from scratch and expects
// identical hashes.
func (s *Suite) Consistency(_ context.Context) (Metrics, error) {
	pairs := [][2]person.Person{
		{John, {
			Name:    string([]byte{'J', 'o', 'h', 'n'}),
			Height:  180,
			Weight:  165.0 / 2,
			Address: person.Address{City: "Lon" + "don", Street: "Baker" + " St", Building: 221},
		}},
		{
			{Name: "Zero", Weight: 0},
			{Name: "Zero", Weight: math.Copysign(0, -1)},
		},
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		if err := Assert(a.Equal(b), fmt.Sprintf("%s must equal %s", a, b)); err != nil {
			return nil, err
		}

		if err := AssertEqual(s.hasher.Hash(a), s.hasher.Hash(b), "hash of equal values "+a.String()); err != nil {
			return nil, err
		}
	}

	return nil, nil
}
