// Package hashset is a set keyed by a caller-supplied hasher, so values whose
// hash is a hand-written composite can be stored by value. It is backed by a
// pmmap tree; colliding hashes are told apart by the hasher's Equal.
//
// The set is not safe for concurrent use.
package hashset

import (
	"github.com/BarrensZeppelin/pmmap"

	"github.com/Blackdeer1524/compositehash/src/pkg/assert"
)

// Hasher hashes values and compares them for equality. Equal values must
// hash equally.
type Hasher[T any] interface {
	pmmap.Hasher[T]
}

// FuncHasher adapts a pair of functions to Hasher.
type FuncHasher[T any] struct {
	HashFn  func(T) uint64
	EqualFn func(a, b T) bool
}

// Hash calls HashFn.
func (h FuncHasher[T]) Hash(v T) uint64 {
	return h.HashFn(v)
}

// Equal calls EqualFn.
func (h FuncHasher[T]) Equal(a, b T) bool {
	return h.EqualFn(a, b)
}

// Set holds at most one value per equivalence class of its hasher.
type Set[T any] struct {
	tree pmmap.Tree[T, struct{}]
}

// New returns an empty set keyed by hasher.
func New[T any](hasher Hasher[T]) *Set[T] {
	assert.Assert(hasher != nil, "hasher must not be nil")

	return &Set[T]{
		tree: pmmap.New[struct{}](hasher),
	}
}

// Insert adds v and reports whether it was absent.
func (s *Set[T]) Insert(v T) bool {
	if s.Contains(v) {
		return false
	}

	s.tree = s.tree.Insert(v, struct{}{})
	return true
}

// Count returns the number of stored values equal to v: 0 or 1.
func (s *Set[T]) Count(v T) int {
	if s.Contains(v) {
		return 1
	}
	return 0
}

// Contains reports whether a value equal to v is stored.
func (s *Set[T]) Contains(v T) bool {
	_, found := s.tree.Lookup(v)
	return found
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	if !s.Contains(v) {
		return false
	}

	s.tree = s.tree.Remove(v)
	return true
}

// Len returns the number of stored values.
func (s *Set[T]) Len() int {
	return s.tree.Size()
}
