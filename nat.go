// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized

// Nat is the constraint satisfied by type-level natural numbers.
// A Nat is a zero-sized marker type whose numeric value is recovered
// through [Length]; it is only ever used as a type argument, never as
// a runtime value.
//
// The method is unexported, so the family is closed: every Nat is built
// from [Term], [D0] and [D1], and each such type reifies to exactly one
// integer. New numerals are formed by composing digits, not by
// implementing the interface.
type Nat interface {
	natValue() int
}

// Term terminates a numeral. It is the empty digit string and reifies
// to zero; [N0] is an alias for it.
type Term struct{}

func (Term) natValue() int { return 0 }

// D0 appends a binary 0 digit: Length[D0[N]] = 2·Length[N].
//
// The outermost digit is the least significant one. Canonical numerals
// never wrap Term directly in D0 — D0[Term] reifies to zero but is a
// distinct type from Term. The [N0] through [N256] aliases only produce
// canonical forms.
type D0[N Nat] struct{}

func (D0[N]) natValue() int {
	var n N
	return 2 * n.natValue()
}

// D1 appends a binary 1 digit: Length[D1[N]] = 2·Length[N]+1.
type D1[N Nat] struct{}

func (D1[N]) natValue() int {
	var n N
	return 2*n.natValue() + 1
}

// Length returns the natural-number value of the numeral N.
// This is the only bridge between a type-level length and a runtime
// quantity; it allocates nothing and costs one call per binary digit.
func Length[N Nat]() int {
	var n N
	return n.natValue()
}

// Canonical numeral vocabulary. These are aliases, not distinct types:
// N8 and D0[N4] are the same type, so arrays named through different
// spellings of the same number unify.
type (
	N0  = Term
	N1  = D1[Term]
	N2  = D0[N1]
	N3  = D1[N1]
	N4  = D0[N2]
	N5  = D1[N2]
	N6  = D0[N3]
	N7  = D1[N3]
	N8  = D0[N4]
	N9  = D1[N4]
	N10 = D0[N5]
	N11 = D1[N5]
	N12 = D0[N6]
	N13 = D1[N6]
	N14 = D0[N7]
	N15 = D1[N7]
	N16 = D0[N8]

	N20  = D0[N10]
	N24  = D0[N12]
	N32  = D0[N16]
	N48  = D0[N24]
	N64  = D0[N32]
	N128 = D0[N64]
	N256 = D0[N128]
)
