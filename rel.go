// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized

import "fmt"

// Sum is a witness that Length[A] + Length[B] == Length[C].
//
// A witness can only be obtained from [SumOf] (or derived from another
// valid witness), which checks the arithmetic against the numerals'
// own values — a Sum whose lengths don't actually add up cannot be
// constructed. The zero value is not a witness: operations that take a
// Sum panic when handed one.
type Sum[A, B, C Nat] struct{ ok bool }

// SumOf derives the sum relation for A, B and C from their values.
// Panics if Length[A] + Length[B] != Length[C]; the check runs once,
// at the call site that introduces the relation, and every use of the
// returned witness is statically typed thereafter.
func SumOf[A, B, C Nat]() Sum[A, B, C] {
	a, b, c := Length[A](), Length[B](), Length[C]()
	if a+b != c {
		panic(fmt.Sprintf("sized: no sum relation %d+%d = %d", a, b, c))
	}
	return Sum[A, B, C]{ok: true}
}

// Swap derives the commuted relation: A+B=C implies B+A=C.
func (w Sum[A, B, C]) Swap() Sum[B, A, C] {
	w.use()
	return Sum[B, A, C]{ok: true}
}

// Split reinterprets the sum as a decomposition: if A+B=C then C
// splits into a length-A prefix and length-B suffix.
func (w Sum[A, B, C]) Split() Split[A, B, C] {
	w.use()
	return Split[A, B, C]{ok: true}
}

func (w Sum[A, B, C]) use() {
	if !w.ok {
		panic("sized: use of zero-value Sum relation")
	}
}

// Split is a witness that a length-C array decomposes into a length-B
// prefix and a length-M suffix, i.e. Length[B] + Length[M] == Length[C].
// Construction rules are the same as for [Sum]: only [SplitOf] and
// derivations from valid witnesses produce one, and the zero value is
// rejected wherever a Split is consumed.
type Split[B, M, C Nat] struct{ ok bool }

// SplitOf derives the split relation for B, M and C from their values.
// Panics if Length[B] + Length[M] != Length[C].
func SplitOf[B, M, C Nat]() Split[B, M, C] {
	b, m, c := Length[B](), Length[M](), Length[C]()
	if b+m != c {
		panic(fmt.Sprintf("sized: no split relation %d+%d = %d", b, m, c))
	}
	return Split[B, M, C]{ok: true}
}

// Sum reinterprets the decomposition as a sum: prefix plus suffix
// lengths add up to the whole.
func (w Split[B, M, C]) Sum() Sum[B, M, C] {
	w.use()
	return Sum[B, M, C]{ok: true}
}

func (w Split[B, M, C]) use() {
	if !w.ok {
		panic("sized: use of zero-value Split relation")
	}
}
