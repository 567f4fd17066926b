// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Number constrains element types that support arithmetic reductions.
type Number interface {
	constraints.Integer | constraints.Float
}

// Total returns the sum of all elements. Zero for an empty array.
func Total[N Nat, T Number](a Array[N, T]) T {
	var acc T
	for _, v := range a.data {
		acc += v
	}
	return acc
}

// Product returns the product of all elements. One for an empty array.
func Product[N Nat, T Number](a Array[N, T]) T {
	acc := T(1)
	for _, v := range a.data {
		acc *= v
	}
	return acc
}

// Dot returns the dot product of two arrays. The shared numeral N
// makes unequal operand lengths a compile error.
func Dot[N Nat, T Number](a, b Array[N, T]) T {
	var acc T
	for i := range Length[N]() {
		acc += a.data[i] * b.data[i]
	}
	return acc
}

// Min returns the smallest element.
// Panics when N is zero, like slices.Min on an empty slice.
func Min[N Nat, T constraints.Ordered](a Array[N, T]) T {
	if len(a.data) == 0 {
		panic("sized: Min of empty array")
	}
	return slices.Min(a.data)
}

// Max returns the largest element.
// Panics when N is zero, like slices.Max on an empty slice.
func Max[N Nat, T constraints.Ordered](a Array[N, T]) T {
	if len(a.data) == 0 {
		panic("sized: Max of empty array")
	}
	return slices.Max(a.data)
}
