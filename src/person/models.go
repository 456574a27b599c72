// Package person holds the Address and Person value types and the composite
// hashers that make them usable as hash-set keys.
//
// A value must not be mutated while it is stored in a hash-based container:
// its hash would change and the container would lose track of it.
package person

import "fmt"

type Address struct {
	City     string
	Street   string
	Building int
}

func (a Address) Equal(other Address) bool {
	return a.City == other.City &&
		a.Street == other.Street &&
		a.Building == other.Building
}

func (a Address) String() string {
	return fmt.Sprintf("{%q, %q, %d}", a.City, a.Street, a.Building)
}

type Person struct {
	Name    string
	Height  int
	Weight  float64
	Address Address
}

func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Height == other.Height &&
		p.Weight == other.Weight &&
		p.Address.Equal(other.Address)
}

func (p Person) String() string {
	return fmt.Sprintf("{%q, %d, %g, %s}", p.Name, p.Height, p.Weight, p.Address)
}
