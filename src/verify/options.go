package verify

import (
	"errors"
	"fmt"

	"github.com/Blackdeer1524/compositehash/src/distribution"
)

const (
	// MaxBuckets caps the tally slice at 128 MiB.
	MaxBuckets = 1 << 24
	// MaxPeople caps Buckets*BucketSize so the workload size fits an int on
	// every platform.
	MaxPeople = 1<<31 - 1
)

var ErrInvalidOptions = errors.New("invalid options")

// Options parameterize the suite.
type Options struct {
	Seed             uint64
	Buckets          uint64
	BucketSize       uint64
	CriticalValue    float64
	PurityIterations int
}

// DefaultOptions reproduces the reference run: seed 42, 2053 buckets of 50.
func DefaultOptions() Options {
	return Options{
		Seed:             42,
		Buckets:          2053,
		BucketSize:       50,
		CriticalValue:    distribution.CriticalValue,
		PurityIterations: 100,
	}
}

// People returns Buckets*BucketSize. It is only meaningful for options that
// passed Validate.
func (o Options) People() int {
	return int(o.Buckets * o.BucketSize)
}

// Validate bounds the workload so the tally fits in memory and
// Buckets*BucketSize neither wraps nor truncates.
func (o Options) Validate() error {
	switch {
	case o.Buckets == 0:
		return fmt.Errorf("%w: bucket count must be positive", ErrInvalidOptions)
	case o.Buckets > MaxBuckets:
		return fmt.Errorf("%w: bucket count %d exceeds %d", ErrInvalidOptions, o.Buckets, MaxBuckets)
	case o.BucketSize == 0:
		return fmt.Errorf("%w: bucket size must be positive", ErrInvalidOptions)
	case o.BucketSize > MaxPeople/o.Buckets:
		return fmt.Errorf(
			"%w: %d buckets of %d values exceed %d values",
			ErrInvalidOptions, o.Buckets, o.BucketSize, MaxPeople,
		)
	case o.PurityIterations <= 0:
		return fmt.Errorf("%w: purity iterations must be positive", ErrInvalidOptions)
	case !(o.CriticalValue > 0):
		return fmt.Errorf("%w: critical value must be positive", ErrInvalidOptions)
	}
	return nil
}
