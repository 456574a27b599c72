// Package hashing provides the primitive hashes composite hashers are built
// from. Equal primitive values always hash equally.
package hashing

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

var ErrUnknownBackend = errors.New("unknown primitive hash backend")

const (
	BackendXXHash = "xxhash"
	BackendFNV    = "fnv"
)

type Primitives interface {
	String(s string) uint64
	Int(v int) uint64
	Float64(v float64) uint64
}

var (
	_ Primitives = XXHash{}
	_ Primitives = FNV{}
)

// ByName returns the backend registered under name.
func ByName(name string) (Primitives, error) {
	switch name {
	case BackendXXHash, "":
		return XXHash{}, nil
	case BackendFNV:
		return NewFNV(DefaultHashSeed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// floatBits maps -0 to +0 so values equal under == share their bits.
func floatBits(v float64) uint64 {
	if v == 0 {
		return 0
	}
	return math.Float64bits(v)
}

type XXHash struct{}

func (XXHash) String(s string) uint64 {
	return xxhash.Sum64String(s)
}

func (XXHash) Int(v int) uint64 {
	return sum64Uint64(uint64(v))
}

func (XXHash) Float64(v float64) uint64 {
	return sum64Uint64(floatBits(v))
}

func sum64Uint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

type FNV struct {
	seed uint64
}

func NewFNV(seed uint64) FNV {
	return FNV{seed: seed}
}

func (f FNV) String(s string) uint64 {
	h := NewDeterministicHasher64(f.seed)
	h.Write([]byte(s))
	return h.Sum64()
}

func (f FNV) Int(v int) uint64 {
	h := NewDeterministicHasher64(f.seed)
	h.WriteUint64(uint64(v))
	return h.Sum64()
}

func (f FNV) Float64(v float64) uint64 {
	h := NewDeterministicHasher64(f.seed)
	h.WriteUint64(floatBits(v))
	return h.Sum64()
}
