package verify

import (
	"errors"
	"fmt"
)

var ErrAssertion = errors.New("assertion failed")

type AssertionError struct {
	Hint string

	// set for equality assertions only
	Expected any
	Actual   any
	equality bool
}

func (e *AssertionError) Error() string {
	if e.equality {
		return fmt.Sprintf("%v: %v != %v hint: %s", ErrAssertion, e.Expected, e.Actual, e.Hint)
	}
	return fmt.Sprintf("%v: %s", ErrAssertion, e.Hint)
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertion
}

// Assert returns an *AssertionError unless cond holds.
func Assert(cond bool, hint string) error {
	if cond {
		return nil
	}
	return &AssertionError{Hint: hint}
}

// AssertEqual returns an *AssertionError carrying both values unless they are
// equal.
func AssertEqual[T comparable](expected, actual T, hint string) error {
	if expected == actual {
		return nil
	}
	return &AssertionError{
		Hint:     hint,
		Expected: expected,
		Actual:   actual,
		equality: true,
	}
}
