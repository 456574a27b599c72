package person

import "github.com/Blackdeer1524/compositehash/src/pkg/hashing"

// Coef weights the field hashes. Distinct powers of it keep swapped field
// values from cancelling out.
const Coef uint64 = 997

// AddressHasher computes Coef²·H(city) + Coef·H(street) + H(building)
// with uint64 wraparound.
type AddressHasher struct {
	prims hashing.Primitives
}

// NewAddressHasher returns an AddressHasher over the given primitive hashes.
func NewAddressHasher(prims hashing.Primitives) AddressHasher {
	return AddressHasher{prims: prims}
}

// Hash returns the composite hash of a.
func (h AddressHasher) Hash(a Address) uint64 {
	city := h.prims.String(a.City)
	street := h.prims.String(a.Street)
	building := h.prims.Int(a.Building)

	return Coef*Coef*city + Coef*street + building
}

// Equal reports whether a and b are field-wise equal.
func (AddressHasher) Equal(a, b Address) bool {
	return a.Equal(b)
}

// PersonHasher computes
// Coef³·H(name) + Coef²·H(height) + Coef·H(weight) + AddressHasher(address)
// with uint64 wraparound. Together with Equal it can key hash containers.
type PersonHasher struct {
	prims   hashing.Primitives
	address AddressHasher
}

// NewPersonHasher returns a PersonHasher whose nested address hasher shares
// the same primitive hashes.
func NewPersonHasher(prims hashing.Primitives) PersonHasher {
	return PersonHasher{
		prims:   prims,
		address: NewAddressHasher(prims),
	}
}

// DefaultPersonHasher uses the xxhash primitives.
func DefaultPersonHasher() PersonHasher {
	return NewPersonHasher(hashing.XXHash{})
}

// Address returns the hasher applied to the nested address.
func (h PersonHasher) Address() AddressHasher {
	return h.address
}

// Hash returns the composite hash of p.
func (h PersonHasher) Hash(p Person) uint64 {
	name := h.prims.String(p.Name)
	height := h.prims.Int(p.Height)
	weight := h.prims.Float64(p.Weight)
	addr := h.address.Hash(p.Address)

	return Coef*Coef*Coef*name +
		Coef*Coef*height +
		Coef*weight +
		addr
}

// Equal reports whether a and b are field-wise equal.
func (PersonHasher) Equal(a, b Person) bool {
	return a.Equal(b)
}

// Equal adapts Person.Equal to the func(a, b) bool shape containers expect.
func Equal(a, b Person) bool {
	return a.Equal(b)
}
