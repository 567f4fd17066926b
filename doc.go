// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sized provides fixed-length arrays whose length is part of
// the type.
//
// The core type [Array] is generic over a type-level natural number
// and an element type: Array[N8, int] holds exactly eight ints, and is
// a different type from Array[N4, int]. Length mismatches — zipping
// arrays of different lengths, concatenating without the matching
// arithmetic, constructing from a literal of the wrong arity — are
// rejected by the compiler instead of surfacing as runtime bounds
// failures.
//
// # Type-Level Numerals
//
// Lengths are named by zero-sized marker types implementing the
// [Nat] constraint. Numerals are positional, binary, built from three
// digit types:
//
//   - [Term]: empty digit string, value 0
//   - [D0]: appends a 0 bit — Length[D0[N]] = 2·Length[N]
//   - [D1]: appends a 1 bit — Length[D1[N]] = 2·Length[N]+1
//
// so a numeral of value n needs about log₂(n) nested type
// applications. The common values have aliases: [N0] through [N16],
// then [N20], [N24], [N32], [N48], [N64], [N128], [N256]. Aliases are
// transparent — N8 and D0[N4] are the same type. The Nat method set is
// unexported, which closes the family: a numeral's value can never be
// redefined.
//
// [Length] reifies a numeral to its runtime integer. It is the sole
// bridge from the type level to loop bounds and allocation sizes.
//
// # Arithmetic Relations
//
// Operations that combine or divide arrays take a relation witness:
//
//   - [Sum]: Length[A] + Length[B] == Length[C], built by [SumOf]
//   - [Split]: a length-C array decomposes into a length-B prefix and
//     length-M suffix, built by [SplitOf]
//
// Witnesses are derived from the numerals' own values; a constructor
// whose arithmetic does not hold panics at the single call site that
// introduces the relation, and every downstream use is statically
// typed against the witness. Valid witnesses convert between views via
// [Sum.Split] and [Split.Sum], and commute via [Sum.Swap]. The zero
// value of a witness type is rejected by every consuming operation.
//
// # Arrays
//
// Construction:
//
//   - [Filled]: every slot set to one value
//   - [Generate]: slot i set to f(i)
//   - [FromSlice]: checked, copying conversion from a slice
//   - [From1] … [From8], [From16], [From32]: from native Go arrays,
//     with the literal arity checked by the compiler
//   - [Collect]: checked collection from an iter.Seq
//
// Access and conversion:
//
//   - [Array.At], [Array.SetAt]: runtime-index access returning
//     *[IndexError] out of range
//   - [Array.Get], [Array.Set]: panicking variants
//   - [Array.Front], [Array.Back], [Array.Len]
//   - [Array.Slice]: the storage as a borrowed, fixed-length view
//   - [Array.Clone], [Equal], [Array.String]
//   - [To4], [To8], [To16]: copies into native Go arrays
//
// # Operations
//
//   - [Map], [Zip], [ZipWith], [Unzip], [Fold], [Reverse]:
//     length-preserving transformations; Zip and ZipWith require both
//     operands to share one numeral
//   - [Concat]: joins length-A and length-B into length-C under a
//     [Sum] witness
//   - [SplitAt], [SplitFirst], [SplitLast]: divide an array under a
//     [Split] witness
//   - [Total], [Product], [Dot], [Min], [Max]: numeric reductions
//   - [Array.All], [Array.Values], [Array.Backward]: iterators
//
// # Error Model
//
// Structural mistakes — wrong literal arity, mismatched zip operands,
// concat or split without a derivable relation — do not compile, or in
// the relation case panic once when the witness is constructed. The
// only runtime-observable failure on well-typed code is the bounds
// check on runtime indices, reported as *[IndexError]; checked
// conversions from length-erased data ([FromSlice], [Collect]) report
// *[LengthError]. Nothing is retried or recovered internally.
//
// # Concurrency
//
// The package contains no locks, atomics or goroutines. Every
// operation is a pure transformation returning fresh storage; distinct
// Array values obtained from constructors and operations share
// nothing, and the usual Go discipline for plain values applies when
// one value is shared across goroutines.
//
// # Example
//
//	xs := sized.From4([4]int{1, 2, 3, 4})
//	ys := sized.From4([4]int{5, 6, 7, 8})
//
//	w := sized.SumOf[sized.N4, sized.N4, sized.N8]()
//	all := sized.Concat(w, xs, ys) // Array[N8, int]
//
//	total := sized.Fold(all, 0, func(acc, x int) int { return acc + x })
//	// total == 36
//
//	lo, hi := sized.SplitAt(w.Split(), all)
//	// lo == xs, hi == ys
package sized
