// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized

import "iter"

// All returns an iterator over index/element pairs in ascending order.
func (a Array[N, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in ascending index order.
func (a Array[N, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs in descending
// index order.
func (a Array[N, T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Collect gathers exactly Length[N] elements from seq into a new
// array. Sequence lengths are not visible in types, so the count is
// verified while collecting: a *LengthError is returned when seq
// yields too few elements, or on the first element past Length[N]
// (iteration stops there, so unbounded sequences are safe to pass).
func Collect[N Nat, T any](seq iter.Seq[T]) (Array[N, T], error) {
	want := Length[N]()
	data := make([]T, 0, want)
	for v := range seq {
		if len(data) == want {
			return Array[N, T]{}, &LengthError{Got: want + 1, Want: want}
		}
		data = append(data, v)
	}
	if len(data) != want {
		return Array[N, T]{}, &LengthError{Got: len(data), Want: want}
	}
	return Array[N, T]{data: data}, nil
}
