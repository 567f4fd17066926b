// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized

import "slices"

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Map applies f to every slot in index order. The result carries the
// same numeral N as the input: mapping never changes length.
func Map[N Nat, T, U any](a Array[N, T], f func(T) U) Array[N, U] {
	data := make([]U, Length[N]())
	for i := range data {
		data[i] = f(a.data[i])
	}
	return Array[N, U]{data: data}
}

// Zip pairs the elements of two arrays by index. Both arguments share
// the numeral N, so zipping arrays of different lengths does not
// compile.
func Zip[N Nat, T, U any](a Array[N, T], b Array[N, U]) Array[N, Pair[T, U]] {
	data := make([]Pair[T, U], Length[N]())
	for i := range data {
		data[i] = Pair[T, U]{Fst: a.data[i], Snd: b.data[i]}
	}
	return Array[N, Pair[T, U]]{data: data}
}

// ZipWith combines two equal-length arrays element-wise with f.
// Zip is ZipWith with a Pair constructor.
func ZipWith[N Nat, T, U, V any](a Array[N, T], b Array[N, U], f func(T, U) V) Array[N, V] {
	data := make([]V, Length[N]())
	for i := range data {
		data[i] = f(a.data[i], b.data[i])
	}
	return Array[N, V]{data: data}
}

// Unzip splits an array of pairs into an array of first components and
// an array of second components, inverting [Zip].
func Unzip[N Nat, T, U any](p Array[N, Pair[T, U]]) (Array[N, T], Array[N, U]) {
	fst := make([]T, Length[N]())
	snd := make([]U, Length[N]())
	for i := range fst {
		fst[i] = p.data[i].Fst
		snd[i] = p.data[i].Snd
	}
	return Array[N, T]{data: fst}, Array[N, U]{data: snd}
}

// Fold reduces the array left to right: f(f(f(init, a[0]), a[1]), ...).
func Fold[N Nat, T, U any](a Array[N, T], init U, f func(U, T) U) U {
	acc := init
	for _, v := range a.data {
		acc = f(acc, v)
	}
	return acc
}

// Concat joins a length-A array and a length-B array into a length-C
// array under the witness that A+B=C. The first Length[A] slots hold
// x's elements in order, the remaining Length[B] slots hold y's.
func Concat[A, B, C Nat, T any](w Sum[A, B, C], x Array[A, T], y Array[B, T]) Array[C, T] {
	w.use()
	data := make([]T, Length[C]())
	copy(data, x.data)
	copy(data[Length[A]():], y.data)
	return Array[C, T]{data: data}
}

// SplitAt divides a length-C array into a length-B prefix and a
// length-M suffix under the witness that B+M=C. Order is preserved and
// no element is duplicated or dropped; both halves own fresh storage.
func SplitAt[B, M, C Nat, T any](w Split[B, M, C], a Array[C, T]) (Array[B, T], Array[M, T]) {
	w.use()
	b := Length[B]()
	prefix := Array[B, T]{data: slices.Clone(a.data[:b:b])}
	suffix := Array[M, T]{data: slices.Clone(a.data[b:])}
	return prefix, suffix
}

// SplitFirst splits a nonempty array into its first element and the
// remaining elements. The witness Split[N1, M, C] pins M to C-1.
func SplitFirst[M, C Nat, T any](w Split[N1, M, C], a Array[C, T]) (T, Array[M, T]) {
	head, tail := SplitAt(w, a)
	return head.Get(0), tail
}

// SplitLast splits a nonempty array into its preceding elements and
// its last element.
func SplitLast[M, C Nat, T any](w Split[M, N1, C], a Array[C, T]) (Array[M, T], T) {
	init, last := SplitAt(w, a)
	return init, last.Get(0)
}

// Reverse returns an array holding the same elements in reverse order.
func Reverse[N Nat, T any](a Array[N, T]) Array[N, T] {
	n := Length[N]()
	data := make([]T, n)
	for i := range data {
		data[i] = a.data[n-1-i]
	}
	return Array[N, T]{data: data}
}
