// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized

import (
	"fmt"
	"slices"
)

// IndexError reports a runtime index outside [0, Length[N]).
// It is returned by [Array.At] and [Array.SetAt], and is the panic
// value of [Array.Get] and [Array.Set].
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("sized: index %d out of range [0, %d)", e.Index, e.Len)
}

// LengthError reports an element count that does not match the value
// of the target numeral. It is returned by [FromSlice] and [Collect].
type LengthError struct {
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("sized: %d elements do not fit numeral of value %d", e.Got, e.Want)
}

// Array is a fixed-length array of exactly Length[N] elements of type T.
// The length is a property of the type: Array[N8, int] and Array[N4, int]
// are distinct types, and operations that require matching or related
// lengths encode that requirement in their signatures instead of
// checking it at run time.
//
// The backing storage is allocated once, sized exactly to Length[N], and
// never grows or shrinks. Copying an Array value shares that storage the
// way copying a slice does; use [Array.Clone] for an independent copy.
// Constructors and operations always return freshly allocated storage.
//
// The zero Array value has no storage and is not usable; construct
// values with [Filled], [Generate], [FromSlice], the FromK literal
// constructors, or by combining existing arrays.
type Array[N Nat, T any] struct {
	data []T
}

// Filled returns an array with every slot set to v.
func Filled[N Nat, T any](v T) Array[N, T] {
	data := make([]T, Length[N]())
	for i := range data {
		data[i] = v
	}
	return Array[N, T]{data: data}
}

// Generate returns an array with slot i set to f(i).
// f is called once per index, in ascending order.
func Generate[N Nat, T any](f func(int) T) Array[N, T] {
	data := make([]T, Length[N]())
	for i := range data {
		data[i] = f(i)
	}
	return Array[N, T]{data: data}
}

// FromSlice copies xs into a new array. The element count must equal
// Length[N] exactly; otherwise a *LengthError is returned. The input
// slice is not retained.
func FromSlice[N Nat, T any](xs []T) (Array[N, T], error) {
	if want := Length[N](); len(xs) != want {
		return Array[N, T]{}, &LengthError{Got: len(xs), Want: want}
	}
	return Array[N, T]{data: slices.Clone(xs)}, nil
}

// Len returns Length[N]. It consults the numeral, not the storage, so
// it is constant for every value of the same Array type.
func (a Array[N, T]) Len() int {
	return Length[N]()
}

// At returns the element at index i, or a *IndexError when i is
// outside [0, Length[N]).
func (a Array[N, T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, &IndexError{Index: i, Len: len(a.data)}
	}
	return a.data[i], nil
}

// SetAt stores v at index i, or returns a *IndexError when i is
// outside [0, Length[N]).
func (a Array[N, T]) SetAt(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return &IndexError{Index: i, Len: len(a.data)}
	}
	a.data[i] = v
	return nil
}

// Get returns the element at index i.
// Panics with *IndexError if i is out of range.
func (a Array[N, T]) Get(i int) T {
	if i < 0 || i >= len(a.data) {
		panic(&IndexError{Index: i, Len: len(a.data)})
	}
	return a.data[i]
}

// Set stores v at index i.
// Panics with *IndexError if i is out of range.
func (a Array[N, T]) Set(i int, v T) {
	if i < 0 || i >= len(a.data) {
		panic(&IndexError{Index: i, Len: len(a.data)})
	}
	a.data[i] = v
}

// Front returns the first element.
// Panics with *IndexError when N is zero.
func (a Array[N, T]) Front() T {
	return a.Get(0)
}

// Back returns the last element.
// Panics with *IndexError when N is zero.
func (a Array[N, T]) Back() T {
	return a.Get(len(a.data) - 1)
}

// Slice returns the backing storage as a plain slice of length
// Length[N], for interop with code that works on variable-length
// data. The slice is a view: it borrows the array's storage, and
// writes through it are visible in the array.
func (a Array[N, T]) Slice() []T {
	return a.data
}

// Clone returns an array with its own copy of the storage.
func (a Array[N, T]) Clone() Array[N, T] {
	return Array[N, T]{data: slices.Clone(a.data)}
}

// String formats the array like a Go slice.
func (a Array[N, T]) String() string {
	return fmt.Sprint(a.data)
}

// Equal reports whether a and b hold equal elements at every index.
// Length equality is already guaranteed by the shared numeral N.
func Equal[N Nat, T comparable](a, b Array[N, T]) bool {
	return slices.Equal(a.data, b.data)
}
