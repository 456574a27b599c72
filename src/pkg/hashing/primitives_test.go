package hashing

import (
	"hash/fnv"
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	p, err := ByName(BackendXXHash)
	require.NoError(t, err)
	require.IsType(t, XXHash{}, p)

	p, err = ByName("")
	require.NoError(t, err)
	require.IsType(t, XXHash{}, p)

	p, err = ByName(BackendFNV)
	require.NoError(t, err)
	require.IsType(t, FNV{}, p)

	_, err = ByName("crc32")
	require.ErrorIs(t, err, ErrUnknownBackend)
	require.Contains(t, err.Error(), "crc32")
}

func TestXXHash_String(t *testing.T) {
	var p XXHash
	assert.Equal(t, xxhash.Sum64String("London"), p.String("London"))
	assert.NotEqual(t, p.String("London"), p.String("Baker St"))
}

func TestDeterministicHasher64_ZeroSeedIsFNV1a(t *testing.T) {
	for _, s := range []string{"", "Baker St", "Sundaresan"} {
		h := NewDeterministicHasher64(0)
		n := h.Write([]byte(s))
		require.Equal(t, len(s), n)

		ref := fnv.New64a()
		_, _ = ref.Write([]byte(s))

		require.Equal(t, ref.Sum64(), h.Sum64(), "fnv-1a of %q", s)
	}

	// offset basis 0xcbf29ce484222325 with nothing written
	empty := NewDeterministicHasher64(0)
	require.Equal(t, uint64(0xcbf29ce484222325), empty.Sum64())
}

func TestFNV_StringMatchesSeededHasher(t *testing.T) {
	h := NewDeterministicHasher64(DefaultHashSeed)
	h.Write([]byte("London"))

	require.Equal(t, h.Sum64(), NewFNV(DefaultHashSeed).String("London"))

	ref := fnv.New64a()
	_, _ = ref.Write([]byte("London"))
	require.Equal(t, ref.Sum64(), NewFNV(0).String("London"))
}

func TestDeterministicHasher64_Reset(t *testing.T) {
	h := NewDeterministicHasher64(DefaultHashSeed)
	empty := h.Sum64()

	h.WriteUint64(221)
	require.NotEqual(t, empty, h.Sum64())

	h.Reset()
	require.Equal(t, empty, h.Sum64())
}

func TestPrimitives_EqualValuesHashEqually(t *testing.T) {
	backends := map[string]Primitives{
		BackendXXHash: XXHash{},
		BackendFNV:    NewFNV(DefaultHashSeed),
	}

	for name, p := range backends {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, p.String("John"), p.String("Jo"+"hn"))
			assert.Equal(t, p.Int(180), p.Int(180))
			assert.Equal(t, p.Float64(82.5), p.Float64(82.5))
			assert.Equal(t, p.Float64(0), p.Float64(math.Copysign(0, -1)))

			assert.NotEqual(t, p.Int(180), p.Int(190))
			assert.NotEqual(t, p.Float64(82.5), p.Float64(75.3))
			assert.NotEqual(t, p.Int(-1), p.Int(1))
		})
	}
}

func TestFNV_SeedMatters(t *testing.T) {
	a := NewFNV(1)
	b := NewFNV(2)
	require.NotEqual(t, a.String("Sherlock"), b.String("Sherlock"))
	require.Equal(t, a.String("Sherlock"), NewFNV(1).String("Sherlock"))
}
